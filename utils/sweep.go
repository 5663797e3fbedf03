package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/voxelsplace/bitcode/api"
	"github.com/voxelsplace/bitcode/internal/testutil"
)

// RunSweep encodes the shared corpus under every storage/endian
// combination and writes one report line per (code, value) pair to
// outDir/sweep_report.txt: the codeword length in bits, or "FAIL" if the
// value is not encodable under that code.
func RunSweep(outDir string) error {
	if outDir == "" {
		outDir = "."
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	reportPath := filepath.Join(outDir, "sweep_report.txt")
	f, err := os.Create(reportPath)
	if err != nil {
		return fmt.Errorf("creating report file: %w", err)
	}
	defer f.Close()

	specs := []api.StorageSpec{
		{Kind: api.Word, Endian: api.MSB, Width: 64},
		{Kind: api.Word, Endian: api.LSB, Width: 64},
		{Kind: api.BigInt, Endian: api.MSB},
		{Kind: api.BigInt, Endian: api.LSB},
		{Kind: api.Array, Endian: api.MSB, Width: 8},
		{Kind: api.Array, Endian: api.LSB, Width: 8},
	}
	names := []string{"word-msb", "word-lsb", "big-msb", "big-lsb", "array-msb", "array-lsb"}

	corpus := testutil.Corpus()
	total, failures := 0, 0
	for _, vec := range corpus {
		for i, spec := range specs {
			total++
			buf, bits := api.Encode[uint64](spec, vec.Code, vec.Value)
			if bits == 0 {
				failures++
				fmt.Fprintf(f, "%s\t%d\t%s\tFAIL\n", vec.CodeName, vec.Value, names[i])
				continue
			}
			got, consumed := api.Decode[uint64](vec.Code, buf, 0)
			if got != vec.Value || consumed != bits {
				return fmt.Errorf("round-trip mismatch for %s(%d) under %s: got (%d,%d), want (%d,%d)",
					vec.CodeName, vec.Value, names[i], got, consumed, vec.Value, bits)
			}
			fmt.Fprintf(f, "%s\t%d\t%s\t%d\n", vec.CodeName, vec.Value, names[i], bits)
		}
	}
	fmt.Printf("swept %d (code,value,storage) combinations, %d not encodable, report at %s\n", total, failures, reportPath)
	return nil
}
