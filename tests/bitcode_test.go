package test

import (
	"testing"

	"github.com/voxelsplace/bitcode/api"
	"github.com/voxelsplace/bitcode/bitio"
	"github.com/voxelsplace/bitcode/internal/testutil"
	"github.com/voxelsplace/bitcode/ucode"
	"github.com/voxelsplace/bitcode/utils"
)

func TestConcreteScenarios(t *testing.T) {
	cases := []struct {
		code ucode.Code
		v    uint64
		want string
	}{
		{ucode.Gamma{}, 1, "1"},
		{ucode.Gamma{}, 29, "000011101"},
		{ucode.Gamma{}, 1000, "0000000001111101000"},
		{ucode.Zeta{K: 3}, 29, "01011101"},
		{ucode.Delta{}, 1, "1"},
		{ucode.Fibonacci{}, 1, "11"},
		{ucode.Fibonacci{}, 7, "01011"},
		{ucode.Omega{}, 1, "0"},
	}
	for _, c := range cases {
		spec := api.StorageSpec{Kind: api.Word, Endian: api.MSB, Width: 64}
		buf, bits := api.Encode[uint64](spec, c.code, c.v)
		if bits == 0 {
			t.Fatalf("encode(%v, %d) failed", c.code, c.v)
		}
		if got := api.Render(buf); got != c.want {
			t.Fatalf("encode(%v, %d) = %q, want %q", c.code, c.v, got, c.want)
		}
	}
}

func TestZetaOneEqualsGamma(t *testing.T) {
	spec := api.StorageSpec{Kind: api.Word, Endian: api.MSB, Width: 64}
	for _, v := range testutil.Values() {
		g, gb := api.Encode[uint64](spec, ucode.Gamma{}, v)
		z, zb := api.Encode[uint64](spec, ucode.Zeta{K: 1}, v)
		if gb != zb || (gb != 0 && api.Render(g) != api.Render(z)) {
			t.Fatalf("Zeta(1)(%d) != Gamma(%d)", v, v)
		}
	}
}

func TestCorpusRoundTripEveryStorage(t *testing.T) {
	specs := []api.StorageSpec{
		{Kind: api.Word, Endian: api.MSB, Width: 64},
		{Kind: api.Word, Endian: api.LSB, Width: 64},
		{Kind: api.BigInt, Endian: api.MSB},
		{Kind: api.BigInt, Endian: api.LSB},
		{Kind: api.Array, Endian: api.MSB, Width: 8},
		{Kind: api.Array, Endian: api.LSB, Width: 16},
	}
	for _, vec := range testutil.Corpus() {
		for _, spec := range specs {
			buf, bits := api.Encode[uint64](spec, vec.Code, vec.Value)
			if bits == 0 {
				continue
			}
			got, consumed := api.Decode[uint64](vec.Code, buf, 0)
			if got != vec.Value || consumed != bits {
				t.Fatalf("%s(%d) round trip under storage %+v: got (%d,%d), want (%d,%d)",
					vec.CodeName, vec.Value, spec, got, consumed, vec.Value, bits)
			}
		}
	}
}

func TestConcatenationIsStreamIndependent(t *testing.T) {
	for _, vec := range testutil.Corpus() {
		buf := bitio.NewBigBuffer[bitio.MSB]()
		if !ucode.Encode[uint64](buf, ucode.Gamma{}, 1) {
			t.Fatalf("prefix encode failed")
		}
		off := buf.NumBits()
		if !ucode.Encode[uint64](buf, vec.Code, vec.Value) {
			continue
		}
		mid := buf.NumBits()
		if !ucode.Encode[uint64](buf, ucode.Gamma{}, 2) {
			t.Fatalf("suffix encode failed")
		}

		standalone := bitio.NewBigBuffer[bitio.MSB]()
		ucode.Encode[uint64](standalone, vec.Code, vec.Value)

		got, consumed := ucode.Decode[uint64](buf, vec.Code, off)
		if got != vec.Value || consumed != mid-off {
			t.Fatalf("%s(%d) embedded decode = (%d,%d), want (%d,%d)",
				vec.CodeName, vec.Value, got, consumed, vec.Value, mid-off)
		}
		if consumed != standalone.NumBits() {
			t.Fatalf("%s(%d) embedded length %d != standalone length %d",
				vec.CodeName, vec.Value, consumed, standalone.NumBits())
		}
	}
}

func TestWidthRejection(t *testing.T) {
	spec := api.StorageSpec{Kind: api.Word, Endian: api.MSB, Width: 64}
	buf, bits := api.Encode[uint64](spec, ucode.Gamma{}, 1000)
	if bits == 0 {
		t.Fatalf("setup encode failed")
	}
	if _, consumed := api.Decode[uint8](ucode.Gamma{}, buf, 0); consumed != 0 {
		t.Fatalf("expected width rejection decoding 1000 into uint8")
	}
}

func TestCapacityRejection(t *testing.T) {
	buf := bitio.NewWordBuffer[bitio.MSB](4)
	if ucode.Encode[uint64](buf, ucode.Gamma{}, 1000) {
		t.Fatalf("expected capacity rejection encoding Gamma(1000) into a 4-bit buffer")
	}
}

func TestZigzagInvolution(t *testing.T) {
	spec := api.StorageSpec{Kind: api.Word, Endian: api.LSB, Width: 64}
	for _, v := range []int64{0, 1, -1, 1000, -1000, 1<<62 - 1, -(1<<62 - 1)} {
		buf, bits := api.EncodeSigned[int64, uint64](spec, ucode.Delta{}, v)
		if bits == 0 {
			t.Fatalf("EncodeSigned(%d) failed", v)
		}
		got, consumed := api.DecodeSigned[uint64, int64](ucode.Delta{}, buf, 0)
		if got != v || consumed != bits {
			t.Fatalf("zigzag round trip for %d: got (%d,%d)", v, got, consumed)
		}
	}
}

func TestNonPositiveRejection(t *testing.T) {
	spec := api.StorageSpec{Kind: api.Word, Endian: api.MSB, Width: 64}
	for _, c := range []ucode.Code{ucode.Gamma{}, ucode.Delta{}, ucode.Omega{}, ucode.Fibonacci{}, ucode.Zeta{K: 2}, ucode.BL{S: 3}} {
		if _, bits := api.Encode[uint64](spec, c, 0); bits != 0 {
			t.Fatalf("expected rejection encoding a raw zero under %v", c)
		}
	}
}

func TestTruncatedInputs(t *testing.T) {
	oneZero := api.ParseBits[bitio.MSB]("0")
	if _, consumed := api.Decode[uint64](ucode.Gamma{}, oneZero, 0); consumed != 0 {
		t.Fatalf("expected failure decoding a single 0 bit")
	}

	msbZero := api.ParseBits[bitio.MSB]("00000001")
	if _, consumed := api.Decode[uint64](ucode.Gamma{}, msbZero, 0); consumed != 0 {
		t.Fatalf("expected failure decoding 0000_0001 as MSB-first Gamma")
	}

	lsbZero := api.ParseBits[bitio.LSB]("00000001")
	if _, consumed := api.Decode[uint64](ucode.Gamma{}, lsbZero, 0); consumed != 0 {
		t.Fatalf("expected failure decoding 1000_0000 as LSB-first Gamma")
	}
}

func TestCLIEncodeDecodeRoundTrip(t *testing.T) {
	if err := utils.RunEncode("zeta3", "29", "word", "msb", 64); err != nil {
		t.Fatalf("RunEncode failed: %v", err)
	}
	if err := utils.RunDecode("zeta3", "01011101", "msb"); err != nil {
		t.Fatalf("RunDecode failed: %v", err)
	}
}

func TestCLISweep(t *testing.T) {
	dir := t.TempDir()
	if err := utils.RunSweep(dir); err != nil {
		t.Fatalf("RunSweep failed: %v", err)
	}
}
