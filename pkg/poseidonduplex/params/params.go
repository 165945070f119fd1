// Package params holds the immutable Poseidon parameter container:
// round counts, S-box exponent, rate/capacity, and the ark/mds matrices.
//
// Generation of ark and mds is out of scope here — this package only
// validates the shape of externally supplied matrices.
package params

import (
	"github.com/arkspec/poseidon-duplex/pkg/poseidonduplex/field"
	"github.com/arkspec/poseidon-duplex/pkg/poseidonduplex/perr"
)

// Parameters is an immutable Poseidon parameter set for a fixed field,
// round schedule, and rate/capacity split.
type Parameters struct {
	FullRounds    int
	PartialRounds int
	Alpha         uint64
	Rate          int
	Capacity      int

	// Ark has shape (FullRounds+PartialRounds) x Width.
	Ark [][]field.Element
	// Mds has shape Width x Width.
	Mds [][]field.Element
}

// Width returns rate + capacity, the state vector's fixed length.
func (p *Parameters) Width() int { return p.Rate + p.Capacity }

// New validates and constructs a Parameters value. It fails (returns a
// *perr.Error) if the ark or mds shapes do not match the declared round
// counts and rate+capacity, as an explicit error rather than a panic.
func New(fullRounds, partialRounds int, alpha uint64, mds, ark [][]field.Element, rate, capacity int) (*Parameters, error) {
	if fullRounds < 0 || fullRounds%2 != 0 {
		return nil, perr.New(perr.CodeInvalidParameters, "full_rounds must be a non-negative even integer, got %d", fullRounds)
	}
	if partialRounds < 0 {
		return nil, perr.New(perr.CodeInvalidParameters, "partial_rounds must be non-negative, got %d", partialRounds)
	}
	if rate < 1 || capacity < 1 {
		return nil, perr.New(perr.CodeInvalidParameters, "rate and capacity must both be >= 1, got rate=%d capacity=%d", rate, capacity)
	}

	width := rate + capacity
	totalRounds := fullRounds + partialRounds

	if len(ark) != totalRounds {
		return nil, perr.New(perr.CodeInvalidParameters, "ark has %d rows, want full_rounds+partial_rounds=%d", len(ark), totalRounds)
	}
	for i, row := range ark {
		if len(row) != width {
			return nil, perr.New(perr.CodeInvalidParameters, "ark row %d has %d columns, want rate+capacity=%d", i, len(row), width)
		}
	}

	if len(mds) != width {
		return nil, perr.New(perr.CodeInvalidParameters, "mds has %d rows, want rate+capacity=%d", len(mds), width)
	}
	for i, row := range mds {
		if len(row) != width {
			return nil, perr.New(perr.CodeInvalidParameters, "mds row %d has %d columns, want rate+capacity=%d", i, len(row), width)
		}
	}

	return &Parameters{
		FullRounds:    fullRounds,
		PartialRounds: partialRounds,
		Alpha:         alpha,
		Rate:          rate,
		Capacity:      capacity,
		Ark:           ark,
		Mds:           mds,
	}, nil
}
