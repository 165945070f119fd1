package sponge

import (
	"github.com/arkspec/poseidon-duplex/pkg/poseidonduplex/absorb"
	"github.com/arkspec/poseidon-duplex/pkg/poseidonduplex/castfield"
	"github.com/arkspec/poseidon-duplex/pkg/poseidonduplex/field"
)

// SqueezeFieldElementsWithSizes produces len(sizes) elements of
// targetZero's field, each sized per sizes[i]. If the target shares the
// sponge's native field's characteristic and every size is Full, it
// takes the native fast path (squeeze + pointwise cast); otherwise it
// falls back to the generic bits-then-reduce routine, which is the only
// one of the two that honors a Truncated(k) size.
func (s *Sponge) SqueezeFieldElementsWithSizes(targetZero field.Element, sizes []absorb.FieldElementSize) ([]field.Element, error) {
	native := zeroOf(s.parameters)
	if castfield.SameField(native, targetZero) && allFull(sizes) {
		nativeElems := s.SqueezeNativeFieldElements(len(sizes))
		return castfield.Native(targetZero, nativeElems), nil
	}

	bitGroups := make([][]bool, len(sizes))
	for i, size := range sizes {
		n := size.Bits(targetZero.CapacityBits())
		bitGroups[i] = s.SqueezeBits(n)
	}
	return castfield.Reduce(targetZero, sizes, bitGroups)
}

func allFull(sizes []absorb.FieldElementSize) bool {
	for _, size := range sizes {
		if !size.IsFull() {
			return false
		}
	}
	return true
}

// SqueezeFieldElements is SqueezeFieldElementsWithSizes with every size
// set to Full.
func (s *Sponge) SqueezeFieldElements(targetZero field.Element, n int) ([]field.Element, error) {
	sizes := make([]absorb.FieldElementSize, n)
	for i := range sizes {
		sizes[i] = absorb.Full()
	}
	return s.SqueezeFieldElementsWithSizes(targetZero, sizes)
}
