// Package testutil builds the shared value/parameter corpus used by the
// black-box test suite and the benchmark command, so both exercise the
// same coverage.
package testutil

import (
	"fmt"

	xxhash "github.com/cespare/xxhash/v2"

	"github.com/voxelsplace/bitcode/ucode"
)

// Vector names one (code, value) pair to exercise.
type Vector struct {
	CodeName string
	Code     ucode.Code
	Value    uint64
}

// Codes returns one instance of every code, including several Zeta and BL
// parameterizations.
func Codes() []Vector {
	var out []Vector
	add := func(name string, c ucode.Code) { out = append(out, Vector{CodeName: name, Code: c}) }
	add("gamma", ucode.Gamma{})
	add("delta", ucode.Delta{})
	add("omega", ucode.Omega{})
	add("fibonacci", ucode.Fibonacci{})
	for k := 1; k <= 7; k++ {
		add(fmt.Sprintf("zeta%d", k), ucode.Zeta{K: k})
	}
	for s := 0; s <= 6; s++ {
		add(fmt.Sprintf("bl%d", s), ucode.BL{S: s})
	}
	return out
}

// Values returns a fixed sweep of representative magnitudes: small values,
// powers of three, powers of ten, powers of two, and the uint64 boundary.
func Values() []uint64 {
	var vs []uint64
	for v := uint64(1); v <= 1000; v *= 3 {
		vs = append(vs, v)
	}
	for p := uint64(1); p <= 1e18; p *= 10 {
		vs = append(vs, p)
	}
	for shift := uint(0); shift < 63; shift += 7 {
		vs = append(vs, uint64(1)<<shift)
	}
	vs = append(vs, 1, 2, 3, ^uint64(0))
	return vs
}

// Corpus is the full (code, value) cross product, deduplicated by an
// xxhash digest of each pair's identity so a value repeated across two
// sweep buckets (e.g. 1 appearing both as a small value and a power of
// three) is only exercised once.
func Corpus() []Vector {
	codes := Codes()
	values := Values()
	seen := make(map[uint64]Vector, len(codes)*len(values))
	out := make([]Vector, 0, len(codes)*len(values))
	for _, c := range codes {
		for _, v := range values {
			key := []byte(fmt.Sprintf("%s:%d", c.CodeName, v))
			h := xxhash.Sum64(key)
			if prior, ok := seen[h]; ok && prior.CodeName == c.CodeName && prior.Value == v {
				continue
			}
			vec := Vector{CodeName: c.CodeName, Code: c.Code, Value: v}
			seen[h] = vec
			out = append(out, vec)
		}
	}
	return out
}
