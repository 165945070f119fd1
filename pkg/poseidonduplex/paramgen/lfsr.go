// Package paramgen generates self-consistent Poseidon parameter sets for
// an arbitrary field.Element, for use by tests and the demo CLI that have
// no external constants table to load from.
//
// It is not an authoritative source of default parameters: nothing here
// claims to reproduce any published table bit-for-bit, and callers who
// need interoperability with an existing Poseidon deployment must supply
// its actual round constants and MDS matrix instead of this package's
// output.
package paramgen

import (
	"math/big"

	"github.com/arkspec/poseidon-duplex/pkg/poseidonduplex/field"
	"github.com/arkspec/poseidon-duplex/pkg/poseidonduplex/params"
)

// invertible is satisfied by field.Element implementations that also
// expose a field-typed inverse (both goldilocks.Elt and blsfr.Elt do).
// Cauchy MDS construction needs it; the core field.Element interface
// does not carry it, since the permutation and sponge never invert.
type invertible interface {
	InverseField() field.Element
}

// Generate builds a Parameters value for native's field with the given
// rate, capacity, S-box exponent and round counts. Round constants come
// from a Grain-LFSR-derived bitstream (seeded from the field's bit
// length and the round/width parameters, the same way the Poseidon paper
// describes); the MDS matrix is a Cauchy matrix, which is always MDS.
//
// native is only used as a zero value to reach FromBigInt/Modulus/Zero;
// its own value is otherwise irrelevant.
func Generate(native field.Element, fullRounds, partialRounds int, alpha uint64, rate, capacity int) (*params.Parameters, error) {
	width := rate + capacity

	lfsr := newGrainLFSR(native.Modulus(), width, fullRounds, partialRounds, alpha)

	totalRounds := fullRounds + partialRounds
	ark := make([][]field.Element, totalRounds)
	for round := 0; round < totalRounds; round++ {
		ark[round] = make([]field.Element, width)
		for i := 0; i < width; i++ {
			ark[round][i] = native.FromBigInt(lfsr.nextFieldElement())
		}
	}

	mds, err := cauchyMDS(native, width)
	if err != nil {
		return nil, err
	}

	return params.New(fullRounds, partialRounds, alpha, mds, ark, rate, capacity)
}

// cauchyMDS builds M[i][j] = 1/(x_i + y_j) for distinct x_i, y_j, which
// is always a maximum-distance-separable matrix.
func cauchyMDS(native field.Element, width int) ([][]field.Element, error) {
	matrix := make([][]field.Element, width)
	for i := 0; i < width; i++ {
		matrix[i] = make([]field.Element, width)
		for j := 0; j < width; j++ {
			x := native.FromBigInt(big.NewInt(int64(i + 1)))
			y := native.FromBigInt(big.NewInt(int64(j + width + 1)))
			sum := x.Add(y)

			inv, ok := sum.(invertible)
			if !ok {
				return nil, errNotInvertible{typeName: native.String()}
			}
			matrix[i][j] = inv.InverseField()
		}
	}
	return matrix, nil
}

type errNotInvertible struct{ typeName string }

func (e errNotInvertible) Error() string {
	return "paramgen: field element does not implement InverseField, cannot build a Cauchy MDS matrix"
}

// grainLFSR implements the Grain-type LFSR the Poseidon paper's reference
// implementation uses to derive round constants from a small parameter
// tag, generalized here to an arbitrary field bit length rather than a
// fixed 64 bits.
type grainLFSR struct {
	state     [80]bool
	fieldBits int
	modulus   *big.Int
}

func newGrainLFSR(modulus *big.Int, width, fullRounds, partialRounds int, alpha uint64) *grainLFSR {
	g := &grainLFSR{
		fieldBits: modulus.BitLen(),
		modulus:   new(big.Int).Set(modulus),
	}
	g.initialize(width, fullRounds, partialRounds, alpha)
	return g
}

func (g *grainLFSR) initialize(width, fullRounds, partialRounds int, alpha uint64) {
	// b0, b1: field type (1, 1 for prime field)
	g.state[0] = true
	g.state[1] = true

	// b2-b5: S-box type, low 4 bits of alpha
	for i := 0; i < 4; i++ {
		g.state[2+i] = (alpha>>uint(i))&1 == 1
	}

	// b6-b17: field size in bits
	for i := 0; i < 12; i++ {
		g.state[6+i] = (g.fieldBits>>uint(i))&1 == 1
	}

	// b18-b29: width t
	for i := 0; i < 12; i++ {
		g.state[18+i] = (width>>uint(i))&1 == 1
	}

	// b30-b39: RF (full rounds)
	for i := 0; i < 10; i++ {
		g.state[30+i] = (fullRounds>>uint(i))&1 == 1
	}

	// b40-b49: RP (partial rounds)
	for i := 0; i < 10; i++ {
		g.state[40+i] = (partialRounds>>uint(i))&1 == 1
	}

	// b50-b79: set to 1
	for i := 50; i < 80; i++ {
		g.state[i] = true
	}

	// discard first 160 bits (warm-up)
	for i := 0; i < 160; i++ {
		g.update()
	}
}

func (g *grainLFSR) update() {
	newBit := g.state[62] != g.state[51] != g.state[38] != g.state[23] != g.state[13] != g.state[0]
	for i := 0; i < 79; i++ {
		g.state[i] = g.state[i+1]
	}
	g.state[79] = newBit
}

// nextFieldElement samples fieldBits bits (with the paper's pairwise
// rejection sampling for uniformity) and reduces modulo the field's
// characteristic.
func (g *grainLFSR) nextFieldElement() *big.Int {
	value := new(big.Int)
	for i := 0; i < g.fieldBits; i++ {
		if g.sampleBit() {
			value.SetBit(value, i, 1)
		}
	}
	return value.Mod(value, g.modulus)
}

func (g *grainLFSR) sampleBit() bool {
	for {
		bit1 := g.state[0]
		g.update()
		bit2 := g.state[0]
		g.update()

		if bit1 {
			return bit2
		}
		// first bit 0: discard second bit and resample
	}
}
