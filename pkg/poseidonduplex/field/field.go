// Package field describes the prime-field abstraction the Poseidon
// permutation and duplex sponge are generic over.
//
// There is no type parameter here on purpose: the sponge's cross-field
// casting (see package castfield) needs to detect at runtime whether two
// field.Element values belong to the same field, which is meaningless to
// ask of a compile-time generic instantiation. Elements instead carry
// enough runtime information (Modulus, CapacityBits) to make that call
// themselves.
package field

import "math/big"

// Element is a single element of some prime field F_p. All arithmetic
// methods return a new Element rather than mutating the receiver.
type Element interface {
	Add(other Element) Element
	Mul(other Element) Element
	Neg() Element

	// Pow raises the element to a small exponent, as used by the
	// Poseidon S-box (alpha is typically 3, 5, 17 or 257).
	Pow(exp uint64) Element

	IsZero() bool
	Equal(other Element) bool

	// Zero and One return the additive and multiplicative identities of
	// this element's field. They exist as instance methods (rather than
	// package-level constructors) because Element is an interface: given
	// only an Element value there is no other way to reach "the zero of
	// whatever concrete field this happens to be".
	Zero() Element
	One() Element

	// FromBigInt builds a new element of this same field from an
	// arbitrary integer, reducing modulo the field's characteristic.
	FromBigInt(v *big.Int) Element

	// Modulus returns the field's characteristic p.
	Modulus() *big.Int

	// CapacityBits is floor(log2(p)): the number of low bits of a
	// canonical representative that are guaranteed to be below p,
	// usable for unambiguous byte/bit truncation.
	CapacityBits() int

	// Bytes returns the canonical little-endian byte encoding of the
	// element's integer representative, zero-padded to the number of
	// bytes needed to hold the modulus.
	Bytes() []byte

	// Bits returns the canonical little-endian bit encoding (bit i is
	// the coefficient of 2^i), padded to the modulus's bit length.
	Bits() []bool

	String() string
}
