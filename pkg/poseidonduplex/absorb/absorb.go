// Package absorb defines the external Absorb contract: any value
// convertible to an ordered sequence of field elements that the sponge
// can mix in. The sponge only ever consumes the resulting slice; it
// never interprets raw bytes itself. Domain separation tags, length
// prefixes, and structural encodings are the implementor's job.
package absorb

import (
	"math/big"

	"github.com/arkspec/poseidon-duplex/pkg/poseidonduplex/field"
)

// Absorb is anything that can be serialized into an ordered sequence of
// field elements for the sponge to absorb.
type Absorb interface {
	ToSpongeFieldElements() []field.Element
}

// Elements wraps a slice of field elements that are already in the
// sponge's native field — the identity case.
type Elements []field.Element

func (e Elements) ToSpongeFieldElements() []field.Element { return []field.Element(e) }

// FieldElementSize requests either the full capacity of a squeezed
// element (Full) or a caller-chosen number of low bits (Truncated),
// consumed only by the sponge's size-driven squeeze.
type FieldElementSize struct {
	truncatedBits int // 0 means Full
}

// Full requests the field's full capacity worth of bits.
func Full() FieldElementSize { return FieldElementSize{} }

// Truncated requests exactly k bits, k <= the target field's CapacityBits.
func Truncated(k int) FieldElementSize { return FieldElementSize{truncatedBits: k} }

// IsFull reports whether this size requests the full capacity.
func (s FieldElementSize) IsFull() bool { return s.truncatedBits == 0 }

// Bits returns the requested bit count given a field's full capacity.
func (s FieldElementSize) Bits(fullCapacityBits int) int {
	if s.IsFull() {
		return fullCapacityBits
	}
	return s.truncatedBits
}

// Bytes chunks raw bytes into elements of native's field, each element
// carrying CapacityBits()/8 usable bytes. The final chunk is zero-padded
// on its high end.
func Bytes(native field.Element, data []byte) Elements {
	chunkSize := native.CapacityBits() / 8
	if chunkSize == 0 {
		chunkSize = 1
	}
	var out Elements
	for i := 0; i < len(data); i += chunkSize {
		end := i + chunkSize
		if end > len(data) {
			end = len(data)
		}
		chunk := data[i:end]
		// little-endian chunk -> big.Int
		v := new(big.Int)
		for j := len(chunk) - 1; j >= 0; j-- {
			v.Lsh(v, 8)
			v.Or(v, big.NewInt(int64(chunk[j])))
		}
		out = append(out, native.FromBigInt(v))
	}
	return out
}

// Digest wraps a fixed-width hash digest (the output of some other hash
// function) as a single absorb unit: the whole digest is chunked the
// same way Bytes does, since a digest is rarely smaller than one field
// element's capacity.
func Digest(native field.Element, digest []byte) Elements {
	return Bytes(native, digest)
}
