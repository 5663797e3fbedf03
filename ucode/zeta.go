package ucode

import (
	"math/bits"

	"github.com/voxelsplace/bitcode/bitio"
)

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// encodeZeta emits unary(h) followed by n-1 bits that place value within
// its length class, plus one extra bit when value is at least y = 2^m
// (twice the class's smallest value). Zeta{K: 1} has y = 2^L, so it always
// takes the lower branch and reduces exactly to Gamma. y itself can exceed
// uint64 when L is 64, and n-1 can exceed the 64 bits AppendBits takes;
// the bits beyond 64 are then leading zeros.
func encodeZeta(dst bitio.BitBuffer, value uint64, k int) {
	l := bits.Len64(value)
	h := ceilDiv(l, k)
	n := h * k
	m := n - (k - 1)
	upper := m < 64 && value >= uint64(1)<<uint(m)
	suffix := value - uint64(1)<<uint(m-1)
	if upper {
		suffix = value >> 1
	}
	dst.AppendZeros(uint64(h - 1))
	dst.AppendOnes(1)
	if n-1 > 64 {
		dst.AppendZeros(uint64(n - 1 - 64))
		dst.AppendBits(suffix, 64)
	} else {
		dst.AppendBits(suffix, uint8(n-1))
	}
	if upper {
		dst.AppendBits(value&1, 1)
	}
}

// decodeZeta mirrors encodeZeta's two branches: a plain n-1-bit suffix
// when it comes in under the class's lower threshold, or that suffix
// doubled plus one spill bit otherwise.
func decodeZeta(src bitio.BitSource, off uint64, k, width int) (uint64, uint64, bool) {
	clz := src.CountLeadingZeros(off)
	if clz < 0 {
		return 0, 0, false
	}
	h := int(clz) + 1
	sufBits := h*k - 1
	if sufBits == 0 {
		return 1, uint64(h), true
	}
	if (h-1)*k >= width {
		return 0, 0, false
	}
	pos := off + uint64(h)
	readN, readPos := sufBits, pos
	if sufBits > 64 {
		// Leading padding beyond 64 bits must be zero to fit uint64.
		pad, ok := src.GetBits(uint8(sufBits-64), pos)
		if !ok || pad != 0 {
			return 0, 0, false
		}
		readN, readPos = 64, pos+uint64(sufBits-64)
	}
	x, ok := src.GetBits(uint8(readN), readPos)
	if !ok {
		return 0, 0, false
	}
	y := uint64(1) << uint((h-1)*k)
	if x < y {
		return x | y, uint64(h + sufBits), true
	}
	// The spill doubles x; that overflows only if x already fills width.
	if bits.Len64(x) >= width {
		return 0, 0, false
	}
	extra, ok := src.GetBits(1, pos+uint64(sufBits))
	if !ok {
		return 0, 0, false
	}
	value := (x << 1) | extra
	return value, uint64(h + sufBits + 1), true
}
