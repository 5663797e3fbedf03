package api

import (
	"testing"

	"github.com/voxelsplace/bitcode/bitio"
	"github.com/voxelsplace/bitcode/ucode"
)

func TestEncodeDecodeWordRoundTrip(t *testing.T) {
	spec := StorageSpec{Kind: Word, Endian: MSB, Width: 64}
	buf, bits := Encode[uint64](spec, ucode.Gamma{}, 29)
	if bits == 0 {
		t.Fatalf("Encode failed")
	}
	v, consumed := Decode[uint64](ucode.Gamma{}, buf, 0)
	if v != 29 || consumed != bits {
		t.Fatalf("Decode = (%d,%d), want (29,%d)", v, consumed, bits)
	}
}

func TestEncodeFailureReturnsNilBuffer(t *testing.T) {
	spec := StorageSpec{Kind: Word, Endian: MSB, Width: 64}
	buf, bits := Encode[uint64](spec, ucode.Gamma{}, 0)
	if bits != 0 || buf != nil {
		t.Fatalf("expected (nil,0) for Encode(0), got (%v,%d)", buf, bits)
	}
}

func TestNonNegativeRoundTrip(t *testing.T) {
	spec := StorageSpec{Kind: Word, Endian: LSB, Width: 64}
	for _, v := range []uint64{0, 1, 999} {
		buf, bits := EncodeNonNegative[uint64](spec, ucode.Delta{}, v)
		if bits == 0 {
			t.Fatalf("EncodeNonNegative(%d) failed", v)
		}
		got, consumed := DecodeNonNegative[uint64](ucode.Delta{}, buf, 0)
		if got != v || consumed != bits {
			t.Fatalf("DecodeNonNegative = (%d,%d), want (%d,%d)", got, consumed, v, bits)
		}
	}

	if _, bits := EncodeNonNegative[uint64](spec, ucode.Delta{}, ^uint64(0)); bits != 0 {
		t.Fatalf("expected failure encoding the type maximum")
	}
}

func TestSignedZigzagRoundTrip(t *testing.T) {
	spec := StorageSpec{Kind: Array, Endian: MSB, Width: 8}
	for _, v := range []int64{0, -1, 1, -1000, 1000} {
		buf, bits := EncodeSigned[int64, uint64](spec, ucode.Omega{}, v)
		if bits == 0 {
			t.Fatalf("EncodeSigned(%d) failed", v)
		}
		got, consumed := DecodeSigned[uint64, int64](ucode.Omega{}, buf, 0)
		if got != v || consumed != bits {
			t.Fatalf("DecodeSigned = (%d,%d), want (%d,%d)", got, consumed, v, bits)
		}
	}

	if _, bits := EncodeSigned[int64, uint64](spec, ucode.Omega{}, int64(-9223372036854775808)); bits != 0 {
		t.Fatalf("expected failure encoding the signed minimum")
	}
}

func TestRenderAndParseBitsRoundTrip(t *testing.T) {
	buf := bitio.NewWordBuffer[bitio.MSB](8)
	buf.AppendBits(0b0110, 4)
	want := "0110"
	if got := Render(buf); got != want {
		t.Fatalf("Render() = %q, want %q", got, want)
	}
	parsed := ParseBits[bitio.MSB](want)
	if Render(parsed) != want {
		t.Fatalf("ParseBits round trip failed")
	}
}

func TestEncodeUnknownEndianFails(t *testing.T) {
	spec := StorageSpec{Kind: Word, Endian: Endian(99), Width: 64}
	if _, bits := Encode[uint64](spec, ucode.Gamma{}, 1); bits != 0 {
		t.Fatalf("expected failure for unknown endian selector")
	}
}
