package ucode

import (
	"math/bits"

	"github.com/voxelsplace/bitcode/bitio"
)

// encodeDelta gamma-encodes L, value's highest set bit position, then
// emits L-1 suffix bits exactly as Gamma would for value itself.
func encodeDelta(dst bitio.BitBuffer, value uint64) {
	l := bits.Len64(value)
	encodeGamma(dst, uint64(l))
	if l > 1 {
		dst.AppendBits(value, uint8(l-1))
	}
}

// decodeDelta gamma-decodes L using a generous internal width, since L is
// itself small; the target width only bounds the final reconstructed
// value.
func decodeDelta(src bitio.BitSource, off uint64, width int) (uint64, uint64, bool) {
	l64, consumed, ok := decodeGamma(src, off, 64)
	if !ok {
		return 0, 0, false
	}
	l := int(l64)
	if l > width {
		return 0, 0, false
	}
	if l == 1 {
		return 1, consumed, true
	}
	suffix, ok := src.GetBits(uint8(l-1), off+consumed)
	if !ok {
		return 0, 0, false
	}
	value := suffix | (uint64(1) << uint(l-1))
	return value, consumed + uint64(l-1), true
}
