// Package permutation implements the Poseidon permutation: the pure,
// fixed-width add-round-key / S-box / MDS round schedule, run as
// full rounds, then partial rounds, then full rounds again.
package permutation

import (
	"github.com/arkspec/poseidon-duplex/pkg/poseidonduplex/field"
	"github.com/arkspec/poseidon-duplex/pkg/poseidonduplex/params"
)

// Apply runs the full/partial/full round schedule over state in place.
// state must have length params.Width(); the caller (package sponge) owns
// that invariant.
func Apply(p *params.Parameters, state []field.Element) {
	half := p.FullRounds / 2

	round := 0
	for ; round < half; round++ {
		ark(p, state, round)
		fullSBox(p, state)
		mds(p, state)
	}
	for ; round < half+p.PartialRounds; round++ {
		ark(p, state, round)
		partialSBox(p, state)
		mds(p, state)
	}
	for ; round < p.FullRounds+p.PartialRounds; round++ {
		ark(p, state, round)
		fullSBox(p, state)
		mds(p, state)
	}
}

// ark adds the round's additive round-key row into state.
func ark(p *params.Parameters, state []field.Element, round int) {
	row := p.Ark[round]
	for i := range state {
		state[i] = state[i].Add(row[i])
	}
}

// fullSBox raises every state element to the alpha power.
func fullSBox(p *params.Parameters, state []field.Element) {
	for i := range state {
		state[i] = state[i].Pow(p.Alpha)
	}
}

// partialSBox raises only state[0] to the alpha power.
func partialSBox(p *params.Parameters, state []field.Element) {
	state[0] = state[0].Pow(p.Alpha)
}

// mds applies state <- Mds * state. It always writes into a freshly
// allocated scratch vector and copies back: an in-place update would read
// already-overwritten entries of state, since every output coordinate
// depends on every input coordinate.
func mds(p *params.Parameters, state []field.Element) {
	width := len(state)
	scratch := make([]field.Element, width)
	for i := 0; i < width; i++ {
		acc := state[0].Mul(p.Mds[i][0])
		for j := 1; j < width; j++ {
			acc = acc.Add(state[j].Mul(p.Mds[i][j]))
		}
		scratch[i] = acc
	}
	copy(state, scratch)
}
