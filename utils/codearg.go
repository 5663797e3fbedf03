package utils

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/voxelsplace/bitcode/api"
	"github.com/voxelsplace/bitcode/ucode"
)

// ParseCode turns a command-line code name into a ucode.Code. Zeta and BL
// carry their parameter in the name itself, e.g. "zeta3" or "bl4".
func ParseCode(name string) (ucode.Code, error) {
	lower := strings.ToLower(strings.TrimSpace(name))
	switch {
	case lower == "gamma":
		return ucode.Gamma{}, nil
	case lower == "delta":
		return ucode.Delta{}, nil
	case lower == "omega":
		return ucode.Omega{}, nil
	case lower == "fibonacci", lower == "fib":
		return ucode.Fibonacci{}, nil
	case strings.HasPrefix(lower, "zeta"):
		k, err := strconv.Atoi(lower[len("zeta"):])
		if err != nil || k < 1 {
			return nil, fmt.Errorf("invalid zeta parameter in %q: %w", name, err)
		}
		return ucode.Zeta{K: k}, nil
	case strings.HasPrefix(lower, "bl"):
		s, err := strconv.Atoi(lower[len("bl"):])
		if err != nil || s < 0 {
			return nil, fmt.Errorf("invalid BL parameter in %q: %w", name, err)
		}
		return ucode.BL{S: s}, nil
	default:
		return nil, fmt.Errorf("unknown code %q", name)
	}
}

// ParseEndian turns a command-line endian name into an api.Endian.
func ParseEndian(name string) (api.Endian, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "msb":
		return api.MSB, nil
	case "lsb":
		return api.LSB, nil
	default:
		return 0, fmt.Errorf("unknown endian %q (want msb or lsb)", name)
	}
}

// ParseStorage turns a command-line storage name into an api.StorageKind.
func ParseStorage(name string) (api.StorageKind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "word":
		return api.Word, nil
	case "big", "bigint":
		return api.BigInt, nil
	case "array":
		return api.Array, nil
	default:
		return 0, fmt.Errorf("unknown storage %q (want word, big or array)", name)
	}
}
