package api

import (
	"github.com/voxelsplace/bitcode/bitio"
	"github.com/voxelsplace/bitcode/ucode"
)

// EncodeNonNegative applies the +1 mapping before encoding, so that zero
// itself is representable.
func EncodeNonNegative[T ucode.Unsigned](spec StorageSpec, code ucode.Code, v T) (bitio.BitBuffer, uint64) {
	positive, ok := ucode.NonNegativeToPositive(v)
	if !ok {
		return nil, 0
	}
	return Encode(spec, code, positive)
}

// DecodeNonNegative inverts EncodeNonNegative.
func DecodeNonNegative[T ucode.Unsigned](code ucode.Code, src bitio.BitSource, off uint64) (T, uint64) {
	v, bits := Decode[T](code, src, off)
	if bits == 0 {
		return 0, 0
	}
	return ucode.PositiveToNonNegative(v), bits
}

// EncodeSigned applies the zigzag mapping before encoding.
func EncodeSigned[S ucode.Signed, U ucode.Unsigned](spec StorageSpec, code ucode.Code, v S) (bitio.BitBuffer, uint64) {
	positive, ok := ucode.SignedToPositive[S, U](v)
	if !ok {
		return nil, 0
	}
	return Encode(spec, code, positive)
}

// DecodeSigned inverts EncodeSigned.
func DecodeSigned[U ucode.Unsigned, S ucode.Signed](code ucode.Code, src bitio.BitSource, off uint64) (S, uint64) {
	v, bits := Decode[U](code, src, off)
	if bits == 0 {
		return 0, 0
	}
	return ucode.PositiveToSigned[U, S](v), bits
}
