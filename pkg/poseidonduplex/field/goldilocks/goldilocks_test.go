package goldilocks

import (
	"math/big"
	"testing"

	"github.com/arkspec/poseidon-duplex/pkg/poseidonduplex/field"
)

func TestFieldIdentities(t *testing.T) {
	a := New(12345)
	zero := a.Zero().(Elt)
	one := a.One().(Elt)

	if !a.Add(zero).Equal(a) {
		t.Fatalf("a + 0 != a")
	}
	if !a.Mul(one).Equal(a) {
		t.Fatalf("a * 1 != a")
	}
	if !a.Add(a.Neg()).Equal(zero) {
		t.Fatalf("a + (-a) != 0")
	}
}

func TestMulInverse(t *testing.T) {
	a := New(999331)
	inv := a.Inverse()
	if !a.Mul(inv).Equal(oneElt) {
		t.Fatalf("a * a^-1 != 1")
	}
}

func TestPowMatchesRepeatedMul(t *testing.T) {
	a := New(7)
	got := a.Pow(5)
	want := a.Mul(a).(Elt).Mul(a).(Elt).Mul(a).(Elt).Mul(a).(Elt)
	if !got.Equal(want) {
		t.Fatalf("Pow(5) = %v, want %v", got, want)
	}
}

func TestBytesRoundTrip(t *testing.T) {
	a := New(0xdeadbeef)
	b := a.Bytes()
	if len(b) != 8 {
		t.Fatalf("expected 8 bytes, got %d", len(b))
	}
	got := NewFromRaw(0).FromBigInt(new(big.Int).SetBytes(reverse(b)))
	if !got.Equal(a) {
		t.Fatalf("byte round trip mismatch")
	}
}

func TestCapacityBits(t *testing.T) {
	a := New(1)
	if a.CapacityBits() != 63 {
		t.Fatalf("expected capacity 63, got %d", a.CapacityBits())
	}
	if a.Modulus().BitLen() != 64 {
		t.Fatalf("expected modulus bit length 64, got %d", a.Modulus().BitLen())
	}
}

func reverse(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[len(b)-1-i] = v
	}
	return out
}

var _ field.Element = Elt{}
