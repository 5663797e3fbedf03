package utils

import (
	"fmt"
	"strconv"

	"github.com/voxelsplace/bitcode/api"
)

// RunEncode parses a code name, a decimal value and a storage/endian/width
// triple, encodes the value and prints the resulting bit string.
func RunEncode(codeArg, valueArg, storageArg, endianArg string, width int) error {
	code, err := ParseCode(codeArg)
	if err != nil {
		return fmt.Errorf("parsing code: %w", err)
	}
	value, err := strconv.ParseUint(valueArg, 10, 64)
	if err != nil {
		return fmt.Errorf("parsing value %q: %w", valueArg, err)
	}
	storage, err := ParseStorage(storageArg)
	if err != nil {
		return fmt.Errorf("parsing storage: %w", err)
	}
	endian, err := ParseEndian(endianArg)
	if err != nil {
		return fmt.Errorf("parsing endian: %w", err)
	}
	if width <= 0 || width > 64 {
		return fmt.Errorf("width %d out of range [1,64]", width)
	}
	spec := api.StorageSpec{Kind: storage, Endian: endian, Width: uint8(width)}
	buf, bits := api.Encode[uint64](spec, code, value)
	if bits == 0 {
		return fmt.Errorf("value %d is not encodable under %s (zero or exceeds capacity/width)", value, codeArg)
	}
	fmt.Printf("%s (%d bits)\n", api.Render(buf), bits)
	return nil
}
