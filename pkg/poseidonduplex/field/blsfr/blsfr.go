// Package blsfr adapts the BLS12-381 scalar field from
// github.com/consensys/gnark-crypto to the poseidonduplex/field.Element
// interface.
//
// It serves as the "heterogeneous" partner field used to exercise
// cross-field casting in package castfield: a sponge running natively
// over goldilocks.Elt can be asked to squeeze elements of this field,
// which forces the bits-then-reduce fallback path rather than the
// native fast path.
package blsfr

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/arkspec/poseidon-duplex/pkg/poseidonduplex/field"
)

// Elt is a BLS12-381 scalar field element.
type Elt struct {
	v fr.Element
}

// modulus is r = 52435875175126190479447740508185965837690552500527637822603658699938581184513,
// bit length 255, so CapacityBits is 254 (the MODULUS_BITS - 1 convention
// used throughout arkworks for safe truncation).
var modulus = fr.Modulus()

const capacityBits = 254

// New builds an element from a uint64.
func New(value uint64) Elt {
	var e Elt
	e.v.SetUint64(value)
	return e
}

// NewFromBigInt builds an element from an arbitrary integer, reducing
// modulo the field's characteristic.
func NewFromBigInt(v *big.Int) Elt {
	var e Elt
	e.v.SetBigInt(v)
	return e
}

func (e Elt) Add(other field.Element) field.Element {
	o := other.(Elt)
	var out Elt
	out.v.Add(&e.v, &o.v)
	return out
}

func (e Elt) Mul(other field.Element) field.Element {
	o := other.(Elt)
	var out Elt
	out.v.Mul(&e.v, &o.v)
	return out
}

func (e Elt) Neg() field.Element {
	var out Elt
	out.v.Neg(&e.v)
	return out
}

func (e Elt) Pow(exp uint64) field.Element {
	var out Elt
	out.v.Exp(e.v, new(big.Int).SetUint64(exp))
	return out
}

func (e Elt) IsZero() bool { return e.v.IsZero() }

func (e Elt) Equal(other field.Element) bool {
	o, ok := other.(Elt)
	return ok && e.v.Equal(&o.v)
}

func (e Elt) Zero() field.Element { return Elt{} }

func (e Elt) One() field.Element {
	var out Elt
	out.v.SetOne()
	return out
}

func (e Elt) FromBigInt(v *big.Int) field.Element {
	return NewFromBigInt(v)
}

func (e Elt) Modulus() *big.Int { return new(big.Int).Set(modulus) }

func (e Elt) CapacityBits() int { return capacityBits }

// Bytes returns the canonical little-endian byte encoding. big.Int's
// Bytes() is big-endian, so the result is reversed.
func (e Elt) Bytes() []byte {
	var tmp big.Int
	e.v.BigInt(&tmp)
	raw := tmp.Bytes() // big-endian, no fixed width
	const width = 32
	padded := make([]byte, width)
	copy(padded[width-len(raw):], raw)
	// reverse to little-endian
	for i, j := 0, width-1; i < j; i, j = i+1, j-1 {
		padded[i], padded[j] = padded[j], padded[i]
	}
	return padded
}

func (e Elt) Bits() []bool {
	b := e.Bytes()
	bitsOut := make([]bool, len(b)*8)
	for i, byteVal := range b {
		for bitIdx := 0; bitIdx < 8; bitIdx++ {
			bitsOut[i*8+bitIdx] = (byteVal>>uint(bitIdx))&1 == 1
		}
	}
	return bitsOut[:modulus.BitLen()]
}

func (e Elt) String() string {
	var tmp big.Int
	e.v.BigInt(&tmp)
	return tmp.String()
}

// InverseField returns the multiplicative inverse. Inverting zero returns
// zero, as gnark-crypto's own fr.Element.Inverse does.
func (e Elt) InverseField() field.Element {
	var out Elt
	out.v.Inverse(&e.v)
	return out
}

var _ field.Element = Elt{}
