// Package goldilocks implements the Goldilocks prime field
// F_p, p = 2^64 - 2^32 + 1, in Montgomery form.
//
// It satisfies the poseidonduplex/field.Element interface so it can
// serve as the permutation's native field.
package goldilocks

import (
	"encoding/binary"
	"math/big"
	"math/bits"

	"github.com/arkspec/poseidon-duplex/pkg/poseidonduplex/field"
)

// P is the prime modulus: 2^64 - 2^32 + 1.
const P uint64 = 0xFFFFFFFF00000001

// r2 is 2^128 mod P, used to convert a value into Montgomery representation.
const r2 uint64 = 0xFFFFFFFE00000001

// capacityBits is floor(log2(P)): P has bit length 64 but is not itself a
// power of two minus one, so only the low 63 bits of a canonical
// representative are unconditionally below P.
const capacityBits = 63

// Elt is a Goldilocks field element stored in Montgomery form
// (value * 2^64 mod P).
type Elt struct {
	value uint64
}

var (
	zeroElt = Elt{0}
	oneElt  = New(1)
)

// New builds an element from a uint64, converting it into Montgomery form.
func New(value uint64) Elt {
	return Elt{value: montyred(mul128(value, r2))}
}

// NewFromRaw builds an element directly from its Montgomery-form limb,
// skipping conversion. Used for deserialization paths that already hold a
// Montgomery value.
func NewFromRaw(raw uint64) Elt {
	return Elt{value: raw}
}

// Value returns the canonical uint64 representative (non-Montgomery form).
func (e Elt) Value() uint64 {
	return montyred(uint128{lo: e.value, hi: 0})
}

func (e Elt) Add(other field.Element) field.Element {
	o := other.(Elt)
	x1, c1 := bits.Sub64(e.value, P-o.value, 0)
	if c1 != 0 {
		return Elt{value: x1 + P}
	}
	return Elt{value: x1}
}

func (e Elt) Sub(other Elt) Elt {
	x1, c1 := bits.Sub64(e.value, other.value, 0)
	return Elt{value: x1 - ((1 + ^P) * c1)}
}

func (e Elt) Mul(other field.Element) field.Element {
	o := other.(Elt)
	return Elt{value: montyred(mul128(e.value, o.value))}
}

func (e Elt) Neg() field.Element {
	if e.IsZero() {
		return e
	}
	return Elt{value: P - e.value}
}

// Pow computes e^exp via binary exponentiation. Used for the Poseidon
// S-box, where exp is always a small odd integer (3, 5, 17, 257, ...).
func (e Elt) Pow(exp uint64) field.Element {
	if exp == 0 {
		return oneElt
	}
	acc := oneElt
	base := e
	bitLen := bits.Len64(exp)
	for i := 0; i < bitLen; i++ {
		acc = acc.Mul(acc).(Elt)
		if exp&(1<<(bitLen-1-i)) != 0 {
			acc = acc.Mul(base).(Elt)
		}
	}
	return acc
}

func (e Elt) IsZero() bool { return e.value == 0 }

func (e Elt) Equal(other field.Element) bool {
	o, ok := other.(Elt)
	return ok && e.value == o.value
}

func (e Elt) Zero() field.Element { return zeroElt }
func (e Elt) One() field.Element  { return oneElt }

func (e Elt) FromBigInt(v *big.Int) field.Element {
	mod := new(big.Int).SetUint64(P)
	reduced := new(big.Int).Mod(v, mod)
	return New(reduced.Uint64())
}

func (e Elt) Modulus() *big.Int { return new(big.Int).SetUint64(P) }

func (e Elt) CapacityBits() int { return capacityBits }

func (e Elt) Bytes() []byte {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], e.Value())
	return buf[:]
}

func (e Elt) Bits() []bool {
	v := e.Value()
	bitsOut := make([]bool, 64)
	for i := 0; i < 64; i++ {
		bitsOut[i] = (v>>uint(i))&1 == 1
	}
	return bitsOut
}

func (e Elt) String() string {
	v := e.Value()
	return bigIntFromUint64(v).String()
}

func bigIntFromUint64(v uint64) *big.Int {
	return new(big.Int).SetUint64(v)
}

// Inverse computes the multiplicative inverse via a fixed addition
// chain for the exponent P-2.
func (e Elt) Inverse() Elt {
	if e.IsZero() {
		panic("goldilocks: attempted to invert zero")
	}
	exp := func(base Elt, exponent uint64) Elt {
		result := base
		for i := uint64(0); i < exponent; i++ {
			result = result.Mul(result).(Elt)
		}
		return result
	}
	x := e
	bin2Ones := x.Mul(x).(Elt).Mul(x).(Elt)
	bin3Ones := bin2Ones.Mul(bin2Ones).(Elt).Mul(x).(Elt)
	bin6Ones := exp(bin3Ones, 3).Mul(bin3Ones).(Elt)
	bin12Ones := exp(bin6Ones, 6).Mul(bin6Ones).(Elt)
	bin24Ones := exp(bin12Ones, 12).Mul(bin12Ones).(Elt)
	bin30Ones := exp(bin24Ones, 6).Mul(bin6Ones).(Elt)
	bin31Ones := bin30Ones.Mul(bin30Ones).(Elt).Mul(x).(Elt)
	bin31Ones1Zero := bin31Ones.Mul(bin31Ones).(Elt)
	bin32Ones := bin31Ones.Mul(bin31Ones).(Elt).Mul(x).(Elt)
	return exp(bin31Ones1Zero, 32).Mul(bin32Ones).(Elt)
}

// InverseField is Inverse with a field.Element return type, so generic
// callers (package paramgen) can reach it through a small local
// interface without depending on the concrete Elt type.
func (e Elt) InverseField() field.Element { return e.Inverse() }

type uint128 struct {
	lo, hi uint64
}

func mul128(a, b uint64) uint128 {
	hi, lo := bits.Mul64(a, b)
	return uint128{lo: lo, hi: hi}
}

func montyred(x uint128) uint64 {
	xl := x.lo
	xh := x.hi
	a, e := bits.Add64(xl, xl<<32, 0)
	b := a - (a >> 32) - e
	r, c := bits.Sub64(xh, b, 0)
	return r - ((1 + ^P) * c)
}

var _ field.Element = Elt{}
