package api

import (
	"github.com/voxelsplace/bitcode/bitio"
	"github.com/voxelsplace/bitcode/ucode"
)

// Endian selects bit-packing direction for an allocated buffer.
type Endian int

const (
	MSB Endian = iota
	LSB
)

// StorageKind selects the backing representation for an allocated buffer.
type StorageKind int

const (
	Word StorageKind = iota
	BigInt
	Array
)

// StorageSpec describes the buffer Encode should allocate. Width is the
// word width for Word storage or the element width for Array storage; it
// is ignored for BigInt.
type StorageSpec struct {
	Kind   StorageKind
	Endian Endian
	Width  uint8
}

// EncodeInto appends the codeword for v under code directly to an
// existing buffer, matching the library's lowest-level entry point.
func EncodeInto[T ucode.Unsigned](dst bitio.BitBuffer, code ucode.Code, v T) bool {
	return ucode.Encode(dst, code, v)
}

// Encode allocates a buffer per spec and encodes v into it, returning the
// buffer and its bit length. A zero bit length signals failure; the
// returned buffer is nil in that case.
func Encode[T ucode.Unsigned](spec StorageSpec, code ucode.Code, v T) (bitio.BitBuffer, uint64) {
	switch spec.Endian {
	case MSB:
		return encodeWithEndian[T, bitio.MSB](spec, code, v)
	case LSB:
		return encodeWithEndian[T, bitio.LSB](spec, code, v)
	default:
		return nil, 0
	}
}

func encodeWithEndian[T ucode.Unsigned, E bitio.Endian](spec StorageSpec, code ucode.Code, v T) (bitio.BitBuffer, uint64) {
	var dst bitio.BitBuffer
	switch spec.Kind {
	case Word:
		dst = bitio.NewWordBuffer[E](spec.Width)
	case BigInt:
		dst = bitio.NewBigBuffer[E]()
	case Array:
		dst = bitio.NewArrayBuffer[E](spec.Width)
	default:
		return nil, 0
	}
	if !ucode.Encode(dst, code, v) {
		return nil, 0
	}
	return dst, dst.NumBits()
}

// Decode reads a codeword for code starting at off in src.
func Decode[T ucode.Unsigned](code ucode.Code, src bitio.BitSource, off uint64) (T, uint64) {
	return ucode.Decode[T](src, code, off)
}
