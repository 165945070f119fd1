// Package castfield implements the cross-field casting helpers used by
// squeeze operations that target a field other than the sponge's own:
// a native fast path when the sponge's field and the requested output
// field share a modulus, and a bits-then-reduce fallback otherwise.
package castfield

import (
	"math/big"

	"github.com/arkspec/poseidon-duplex/pkg/poseidonduplex/absorb"
	"github.com/arkspec/poseidon-duplex/pkg/poseidonduplex/field"
	"github.com/arkspec/poseidon-duplex/pkg/poseidonduplex/perr"
)

// SameField reports whether native and target have equal characteristic.
// Since Element is an interface rather than a generic type parameter,
// modulus equality is the only reliable signal here.
func SameField(native, target field.Element) bool {
	return native.Modulus().Cmp(target.Modulus()) == 0
}

// Native reinterprets squeezed native elements as target-field elements
// along the fast path: same modulus means the same canonical
// representative is valid in both fields.
func Native(targetZero field.Element, nativeElems []field.Element) []field.Element {
	out := make([]field.Element, len(nativeElems))
	for i, e := range nativeElems {
		out[i] = targetZero.FromBigInt(bigIntOf(e))
	}
	return out
}

// Reduce implements the heterogeneous fallback: interpret squeezedBits
// (little-endian, grouped per requested size) as unsigned integers and
// reduce each modulo target's characteristic.
//
// bitGroups must have the same length as sizes; each group's bit count
// must be <= sizes[i].Bits(targetZero.CapacityBits()) or the caller made
// a bookkeeping error upstream (package sponge guarantees this).
func Reduce(targetZero field.Element, sizes []absorb.FieldElementSize, bitGroups [][]bool) ([]field.Element, error) {
	out := make([]field.Element, len(sizes))
	for i, size := range sizes {
		requested := size.Bits(targetZero.CapacityBits())
		if requested > targetZero.CapacityBits() {
			return nil, perr.New(perr.CodeTruncatedSizeTooLarge,
				"requested %d bits exceeds target field capacity of %d bits", requested, targetZero.CapacityBits())
		}
		out[i] = targetZero.FromBigInt(bigIntFromLEBits(bitGroups[i]))
	}
	return out, nil
}

// bigIntOf interprets an element's canonical little-endian bytes as an
// unsigned integer.
func bigIntOf(e field.Element) *big.Int {
	return bigIntFromLEBytes(e.Bytes())
}

func bigIntFromLEBytes(b []byte) *big.Int {
	be := make([]byte, len(b))
	for i, v := range b {
		be[len(b)-1-i] = v
	}
	return new(big.Int).SetBytes(be)
}

func bigIntFromLEBits(bits []bool) *big.Int {
	v := new(big.Int)
	for i := len(bits) - 1; i >= 0; i-- {
		v.Lsh(v, 1)
		if bits[i] {
			v.Or(v, big.NewInt(1))
		}
	}
	return v
}
