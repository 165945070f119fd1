package params

import (
	"errors"
	"testing"

	"github.com/arkspec/poseidon-duplex/pkg/poseidonduplex/field"
	"github.com/arkspec/poseidon-duplex/pkg/poseidonduplex/field/goldilocks"
	"github.com/arkspec/poseidon-duplex/pkg/poseidonduplex/perr"
)

func elt(v uint64) field.Element { return goldilocks.New(v) }

func matrix(rows, cols int) [][]field.Element {
	m := make([][]field.Element, rows)
	for i := range m {
		m[i] = make([]field.Element, cols)
		for j := range m[i] {
			m[i][j] = elt(uint64(i*cols + j + 1))
		}
	}
	return m
}

func TestNewValidShape(t *testing.T) {
	const rate, capacity = 2, 1
	const full, partial = 2, 3
	width := rate + capacity

	p, err := New(full, partial, 5, matrix(width, width), matrix(full+partial, width), rate, capacity)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Width() != width {
		t.Fatalf("Width() = %d, want %d", p.Width(), width)
	}
}

func TestNewRejectsBadArkShape(t *testing.T) {
	const rate, capacity = 2, 1
	const full, partial = 2, 3
	width := rate + capacity

	_, err := New(full, partial, 5, matrix(width, width), matrix(full+partial-1, width), rate, capacity)
	if err == nil {
		t.Fatal("expected error for short ark matrix")
	}
	if !errors.Is(err, perr.New(perr.CodeInvalidParameters, "")) {
		t.Fatalf("expected CodeInvalidParameters, got %v", err)
	}
}

func TestNewRejectsBadMdsShape(t *testing.T) {
	const rate, capacity = 2, 1
	const full, partial = 2, 3
	width := rate + capacity

	_, err := New(full, partial, 5, matrix(width+1, width+1), matrix(full+partial, width), rate, capacity)
	if err == nil {
		t.Fatal("expected error for mismatched mds matrix")
	}
}

func TestNewRejectsOddFullRounds(t *testing.T) {
	_, err := New(3, 2, 5, matrix(3, 3), matrix(5, 3), 2, 1)
	if err == nil {
		t.Fatal("expected error for odd full_rounds")
	}
}
