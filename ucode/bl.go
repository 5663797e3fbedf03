package ucode

import (
	"fmt"
	"math"
	"math/big"

	"github.com/voxelsplace/bitcode/bitio"
)

// solveK finds the smallest K with K(K-1)/2 < m <= K(K+1)/2, per the
// closed-form estimate corrected for floating-point rounding.
func solveK(m int) int {
	if m <= 1 {
		return 1
	}
	k := int(math.Ceil((math.Sqrt(1+8*float64(m)) - 1) / 2))
	if k < 1 {
		k = 1
	}
	for k*(k+1)/2 < m {
		k++
	}
	for k > 1 && (k-1)*k/2 >= m {
		k--
	}
	return k
}

// encodeBL computes M, the length class of value under the 2^S-wide
// bucketing, then a unary-like (X-1 ones, K-X+1 zeros, one 1) triangular
// prefix identifying X within that class, followed by the M+S-1 bit
// suffix. value+n-1 is computed in big.Int, since a uint64 value near its
// max combined with a large S would otherwise overflow before the shift.
func encodeBL(dst bitio.BitBuffer, value uint64, s int) {
	n := uint64(1) << uint(s)
	var t big.Int
	t.SetUint64(value)
	t.Add(&t, new(big.Int).SetUint64(n))
	t.Sub(&t, big.NewInt(1))
	t.Rsh(&t, uint(s))
	m := t.BitLen()

	k := solveK(m)
	x := m - k*(k-1)/2
	if x < 1 || x > k {
		panic(fmt.Sprintf("ucode: BL triangular decomposition invariant violated: m=%d k=%d x=%d", m, k, x))
	}

	dst.AppendOnes(uint64(x - 1))
	dst.AppendZeros(uint64(k - x + 1))
	dst.AppendOnes(1)

	var pow big.Int
	pow.Lsh(big.NewInt(1), uint(m-1))
	pow.Sub(&pow, big.NewInt(1))
	pow.Mul(&pow, new(big.Int).SetUint64(n))

	var suffix big.Int
	suffix.SetUint64(value)
	suffix.Sub(&suffix, &pow)
	suffix.Sub(&suffix, big.NewInt(1))
	dst.AppendBits(suffix.Uint64(), uint8(m+s-1))
}

// decodeBL reconstructs M from the run of leading ones (T) followed by
// leading zeros (K), then reads the M+S-1 bit suffix and inverts the
// encode arithmetic. kTotal is capped at 64 before the quadratic
// reconstruction of M, so that arithmetic never risks overflow on corrupt
// input.
func decodeBL(src bitio.BitSource, off uint64, s, width int) (uint64, uint64, bool) {
	t := src.CountLeadingOnes(off)
	kzClz := src.CountLeadingZeros(off + t)
	if kzClz < 0 {
		return 0, 0, false
	}
	kz := uint64(kzClz)
	kTotal := t + kz
	if kTotal > 64 {
		return 0, 0, false
	}
	m := int(kTotal*(kTotal-1)/2 + t + 1)
	if m+s-1 > width {
		return 0, 0, false
	}
	pos := off + t + kz + 1
	suffix, ok := src.GetBits(uint8(m+s-1), pos)
	if !ok {
		return 0, 0, false
	}

	var pow big.Int
	pow.Lsh(big.NewInt(1), uint(m-1))
	pow.Sub(&pow, big.NewInt(1))
	pow.Mul(&pow, new(big.Int).SetUint64(uint64(1)<<uint(s)))

	var value big.Int
	value.SetUint64(suffix)
	value.Add(&value, &pow)
	value.Add(&value, big.NewInt(1))
	if !value.IsUint64() {
		return 0, 0, false
	}
	return value.Uint64(), kTotal + uint64(m) + uint64(s), true
}
