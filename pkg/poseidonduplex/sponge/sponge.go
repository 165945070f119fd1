// Package sponge implements the Poseidon duplex sponge state machine:
// absorb/squeeze over field elements, with a mode-switch discipline that
// forces a permutation whenever the sponge crosses from absorbing to
// squeezing or back.
package sponge

import (
	"github.com/arkspec/poseidon-duplex/pkg/poseidonduplex/absorb"
	"github.com/arkspec/poseidon-duplex/pkg/poseidonduplex/field"
	"github.com/arkspec/poseidon-duplex/pkg/poseidonduplex/params"
	"github.com/arkspec/poseidon-duplex/pkg/poseidonduplex/perr"
	"github.com/arkspec/poseidon-duplex/pkg/poseidonduplex/permutation"
)

// Sponge is a duplex sponge built on the Poseidon permutation. It is not
// safe for concurrent use by multiple goroutines; distinct Sponge values
// are fully independent.
type Sponge struct {
	parameters *params.Parameters
	state      []field.Element
	mode       Mode
}

// New allocates a sponge with state = 0^w and mode = Absorbing(0).
func New(p *params.Parameters) *Sponge {
	width := p.Width()
	state := make([]field.Element, width)
	zero := zeroOf(p)
	for i := range state {
		state[i] = zero
	}
	return &Sponge{parameters: p, state: state, mode: Absorbing(0)}
}

func zeroOf(p *params.Parameters) field.Element {
	// Every parameter set carries at least one ark element to borrow the
	// field's Zero() from; ark is guaranteed non-empty by params.New
	// whenever full_rounds+partial_rounds > 0, which is always true for
	// a meaningful Poseidon instance.
	return p.Ark[0][0].Zero()
}

// Width returns rate + capacity, the fixed width of the sponge's state.
func (s *Sponge) Width() int { return s.parameters.Width() }

// Mode returns the sponge's current mode.
func (s *Sponge) Mode() Mode { return s.mode }

// Absorb mixes input's field-element encoding into the sponge. An empty
// encoding is a no-op.
func (s *Sponge) Absorb(input absorb.Absorb) {
	elems := input.ToSpongeFieldElements()
	if len(elems) == 0 {
		return
	}

	if s.mode.IsSqueezing() {
		s.permute()
		s.mode = Absorbing(0)
	}

	absorbIndex := s.mode.Index
	if absorbIndex == s.parameters.Rate {
		s.permute()
		absorbIndex = 0
	}
	s.absorbInternal(absorbIndex, elems)
}

// absorbInternal runs the rate-boundary loop, starting at rateStart,
// permuting each time a full rate block is filled.
func (s *Sponge) absorbInternal(rateStart int, elements []field.Element) {
	remaining := elements
	capacity := s.parameters.Capacity
	rate := s.parameters.Rate

	for {
		if rateStart+len(remaining) <= rate {
			for i, e := range remaining {
				idx := capacity + rateStart + i
				s.state[idx] = s.state[idx].Add(e)
			}
			s.mode = Absorbing(rateStart + len(remaining))
			return
		}

		numAbsorbed := rate - rateStart
		for i := 0; i < numAbsorbed; i++ {
			idx := capacity + rateStart + i
			s.state[idx] = s.state[idx].Add(remaining[i])
		}
		s.permute()
		remaining = remaining[numAbsorbed:]
		rateStart = 0
	}
}

// SqueezeNativeFieldElements produces n elements of the sponge's native
// field.
func (s *Sponge) SqueezeNativeFieldElements(n int) []field.Element {
	out := make([]field.Element, n)

	if s.mode.IsAbsorbing() {
		s.permute()
		s.squeezeInternal(0, out)
		return out
	}

	squeezeIndex := s.mode.Index
	if squeezeIndex == s.parameters.Rate {
		s.permute()
		squeezeIndex = 0
	}
	s.squeezeInternal(squeezeIndex, out)
	return out
}

// squeezeInternal runs the rate-boundary loop, writing into out and
// advancing rateStart. The permute-skip rule at a boundary is
// load-bearing: do not "optimize" it away. When a block is copied out and
// the number of elements still to be written, counted before that copy,
// equals rate, no permutation follows; this only happens when rateStart
// is non-zero, and the next block is then read from the same state.
func (s *Sponge) squeezeInternal(rateStart int, out []field.Element) {
	remaining := out
	capacity := s.parameters.Capacity
	rate := s.parameters.Rate

	for {
		if rateStart+len(remaining) <= rate {
			copy(remaining, s.state[capacity+rateStart:capacity+rateStart+len(remaining)])
			s.mode = Squeezing(rateStart + len(remaining))
			return
		}

		numSqueezed := rate - rateStart
		copy(remaining[:numSqueezed], s.state[capacity+rateStart:capacity+rateStart+numSqueezed])

		if len(remaining) != rate {
			s.permute()
		}
		remaining = remaining[numSqueezed:]
		rateStart = 0
	}
}

// SqueezeBytes produces n bytes: it squeezes enough native field
// elements to cover n bytes at CapacityBits()/8 usable bytes per
// element, then truncates.
func (s *Sponge) SqueezeBytes(n int) []byte {
	usableBytes := s.capacityBytes()
	numElements := ceilDiv(n, usableBytes)
	elems := s.SqueezeNativeFieldElements(numElements)

	out := make([]byte, 0, usableBytes*numElements)
	for _, e := range elems {
		out = append(out, e.Bytes()[:usableBytes]...)
	}
	return out[:n]
}

// SqueezeBits produces n bits, the Bits()-based analog of SqueezeBytes.
func (s *Sponge) SqueezeBits(n int) []bool {
	usableBits := s.capacityBits()
	numElements := ceilDiv(n, usableBits)
	elems := s.SqueezeNativeFieldElements(numElements)

	out := make([]bool, 0, usableBits*numElements)
	for _, e := range elems {
		out = append(out, e.Bits()[:usableBits]...)
	}
	return out[:n]
}

func (s *Sponge) capacityBits() int  { return zeroOf(s.parameters).CapacityBits() }
func (s *Sponge) capacityBytes() int { return s.capacityBits() / 8 }

func ceilDiv(a, b int) int { return (a + b - 1) / b }

func (s *Sponge) permute() {
	permutation.Apply(s.parameters, s.state)
}

// State is a value type capturing just the state vector and mode, for
// serialization/resumption. It carries no parameters.
type State struct {
	Elements []field.Element
	Mode     Mode
}

// IntoState extracts the sponge's state by value.
func (s *Sponge) IntoState() State {
	elements := make([]field.Element, len(s.state))
	copy(elements, s.state)
	return State{Elements: elements, Mode: s.mode}
}

// FromState rebuilds a sponge against parameters, then overwrites its
// state and mode from snapshot. It fails if the snapshot's width does not
// match rate+capacity for parameters.
func FromState(snapshot State, p *params.Parameters) (*Sponge, error) {
	if len(snapshot.Elements) != p.Width() {
		return nil, perr.New(perr.CodeSnapshotWidthMismatch,
			"snapshot has %d elements, want rate+capacity=%d", len(snapshot.Elements), p.Width())
	}
	s := New(p)
	copy(s.state, snapshot.Elements)
	s.mode = snapshot.Mode
	return s, nil
}
