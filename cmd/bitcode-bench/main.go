// Command bitcode-bench compares each universal code's bit length against
// a naive fixed-width encoding and against zstd-compressed fixed-width
// encoding, over the shared sweep corpus, and reports how many times each
// representation is the smallest.
package main

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/klauspost/compress/zstd"

	"github.com/voxelsplace/bitcode/api"
	"github.com/voxelsplace/bitcode/internal/testutil"
)

type candidate struct {
	name string
	bits uint64
}

func bestCandidate(cands []candidate) candidate {
	best := cands[0]
	for _, c := range cands[1:] {
		if c.bits < best.bits {
			best = c
		}
	}
	return best
}

func fixedWidthBits(v uint64) uint64 {
	var raw [8]byte
	binary.LittleEndian.PutUint64(raw[:], v)
	n := 8
	for n > 1 && raw[n-1] == 0 {
		n--
	}
	return uint64(n) * 8
}

func zstdBits(enc *zstd.Encoder, v uint64) uint64 {
	var raw [8]byte
	binary.LittleEndian.PutUint64(raw[:], v)
	compressed := enc.EncodeAll(raw[:], nil)
	return uint64(len(compressed)) * 8
}

func main() {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
	defer enc.Close()

	spec := api.StorageSpec{Kind: api.Word, Endian: api.MSB, Width: 64}
	corpus := testutil.Corpus()

	wins := map[string]int{}
	for _, vec := range corpus {
		buf, codeBits := api.Encode[uint64](spec, vec.Code, vec.Value)
		if buf == nil {
			continue
		}
		cands := []candidate{
			{name: vec.CodeName, bits: codeBits},
			{name: "fixed-width", bits: fixedWidthBits(vec.Value)},
			{name: "zstd", bits: zstdBits(enc, vec.Value)},
		}
		best := bestCandidate(cands)
		wins[best.name]++
	}

	fmt.Printf("%d values compared across %d codes\n", len(corpus), len(testutil.Codes()))
	for name, count := range wins {
		fmt.Printf("  %-16s won %d times\n", name, count)
	}
}
