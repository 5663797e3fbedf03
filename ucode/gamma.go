package ucode

import (
	"math/bits"

	"github.com/voxelsplace/bitcode/bitio"
)

// encodeGamma emits unary(L) followed by the low L-1 bits of value, where
// L is value's 1-based highest set bit position.
func encodeGamma(dst bitio.BitBuffer, value uint64) {
	l := bits.Len64(value)
	dst.AppendZeros(uint64(l - 1))
	dst.AppendOnes(1)
	if l > 1 {
		dst.AppendBits(value, uint8(l-1))
	}
}

// decodeGamma reads unary(h) then h-1 suffix bits, failing if h would
// require more bits than width to represent.
func decodeGamma(src bitio.BitSource, off uint64, width int) (uint64, uint64, bool) {
	clz := src.CountLeadingZeros(off)
	if clz < 0 {
		return 0, 0, false
	}
	h := int(clz) + 1
	if h > width {
		return 0, 0, false
	}
	if h == 1 {
		return 1, 1, true
	}
	suffix, ok := src.GetBits(uint8(h-1), off+uint64(h))
	if !ok {
		return 0, 0, false
	}
	value := suffix | (uint64(1) << uint(h-1))
	return value, uint64(2*h - 1), true
}
