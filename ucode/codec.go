package ucode

import (
	"math/bits"

	"github.com/voxelsplace/bitcode/bitio"
)

// widthOf returns the bit width of T by inspecting its all-ones value,
// avoiding reflection or unsafe.
func widthOf[T Unsigned]() int {
	return bits.Len64(uint64(^T(0)))
}

// Encode appends the codeword for value under c to dst. It fails (and
// leaves dst's contents unspecified) if value is zero or if dst ran out
// of capacity mid-append.
func Encode[T Unsigned](dst bitio.BitBuffer, c Code, v T) bool {
	if v == 0 {
		return false
	}
	value := uint64(v)
	switch code := c.(type) {
	case Gamma:
		encodeGamma(dst, value)
	case Delta:
		encodeDelta(dst, value)
	case Omega:
		encodeOmega(dst, value)
	case Fibonacci:
		encodeFibonacci(dst, value)
	case Zeta:
		encodeZeta(dst, value, code.K)
	case BL:
		encodeBL(dst, value, code.S)
	default:
		return false
	}
	return dst.Valid()
}

// Decode reads a codeword for c starting at off in src, returning the
// decoded value and the number of bits consumed, or (0, 0) on any
// failure: no terminating marker before end-of-stream, a decoded
// magnitude that does not fit T, or (BL only) internal arithmetic
// overflow.
func Decode[T Unsigned](src bitio.BitSource, c Code, off uint64) (T, uint64) {
	width := widthOf[T]()
	var raw, consumed uint64
	var ok bool
	switch code := c.(type) {
	case Gamma:
		raw, consumed, ok = decodeGamma(src, off, width)
	case Delta:
		raw, consumed, ok = decodeDelta(src, off, width)
	case Omega:
		raw, consumed, ok = decodeOmega(src, off, width)
	case Fibonacci:
		raw, consumed, ok = decodeFibonacci(src, off)
	case Zeta:
		raw, consumed, ok = decodeZeta(src, off, code.K, width)
	case BL:
		raw, consumed, ok = decodeBL(src, off, code.S, width)
	default:
		ok = false
	}
	if !ok {
		return 0, 0
	}
	t := T(raw)
	if uint64(t) != raw {
		return 0, 0
	}
	return t, consumed
}
