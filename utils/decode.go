package utils

import (
	"fmt"

	"github.com/voxelsplace/bitcode/api"
	"github.com/voxelsplace/bitcode/bitio"
)

// RunDecode parses a code name and a literal '0'/'1' bit string, decodes a
// single value from the front of it and prints the value and bits consumed.
func RunDecode(codeArg, bitsArg, endianArg string) error {
	code, err := ParseCode(codeArg)
	if err != nil {
		return fmt.Errorf("parsing code: %w", err)
	}
	endian, err := ParseEndian(endianArg)
	if err != nil {
		return fmt.Errorf("parsing endian: %w", err)
	}
	for _, c := range bitsArg {
		if c != '0' && c != '1' {
			return fmt.Errorf("bit string %q contains non-binary character %q", bitsArg, c)
		}
	}

	var value uint64
	var consumed uint64
	if endian == api.LSB {
		src := api.ParseBits[bitio.LSB](bitsArg)
		value, consumed = api.Decode[uint64](code, src, 0)
	} else {
		src := api.ParseBits[bitio.MSB](bitsArg)
		value, consumed = api.Decode[uint64](code, src, 0)
	}
	if consumed == 0 {
		return fmt.Errorf("could not decode a %s codeword from %q", codeArg, bitsArg)
	}
	fmt.Printf("%d (%d bits consumed)\n", value, consumed)
	return nil
}
