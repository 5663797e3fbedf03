package ucode

// Unsigned is the set of built-in unsigned integer types a code can decode
// into. Kept local rather than pulled from golang.org/x/exp/constraints:
// the set this package needs is small and fixed, and Go 1.23 has no
// built-in equivalent.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// Signed is the set of built-in signed integer types the zigzag mapping
// accepts.
type Signed interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int
}
