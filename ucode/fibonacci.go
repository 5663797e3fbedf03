package ucode

import "github.com/voxelsplace/bitcode/bitio"

// fibsUpTo returns F1, F2, ... up to and including the largest Fibonacci
// number (F1=1, F2=2, Fi=Fi-1+Fi-2) not exceeding value.
func fibsUpTo(value uint64) []uint64 {
	fibs := []uint64{1}
	a, b := uint64(1), uint64(2)
	for b <= value {
		fibs = append(fibs, b)
		next := a + b
		if next < b {
			break // the next Fibonacci number does not fit in uint64
		}
		a, b = b, next
	}
	return fibs
}

// encodeFibonacci greedily subtracts Fibonacci numbers from the largest
// down, then writes the resulting bits in ascending (F1-first) order
// followed by the terminator.
func encodeFibonacci(dst bitio.BitBuffer, value uint64) {
	fibs := fibsUpTo(value)
	k := len(fibs)
	used := make([]bool, k+1)
	remaining := value
	for i := k; i >= 1; i-- {
		f := fibs[i-1]
		if f <= remaining {
			used[i] = true
			remaining -= f
		}
	}
	for i := 1; i <= k; i++ {
		if used[i] {
			dst.AppendOnes(1)
		} else {
			dst.AppendZeros(1)
		}
	}
	dst.AppendOnes(1)
}

// decodeFibonacci walks the Fibonacci sequence forward, accumulating a
// weight each time it sees a 1, until two consecutive 1s mark the
// terminator. The terminator carries no weight, so the walk ends on it
// before the next weight is computed, per the encode order (F1 first); a
// codeword whose last weight is the largest Fibonacci number that fits in
// uint64 therefore still decodes. newB < b catches uint64 wraparound of a
// weight that would be needed; representability in the caller's target
// type is checked by the generic Decode wrapper.
func decodeFibonacci(src bitio.BitSource, off uint64) (uint64, uint64, bool) {
	a, b := uint64(0), uint64(1)
	var sum uint64
	prevOne := false
	pos := off
	for {
		bit, ok := src.GetBits(1, pos)
		if !ok {
			return 0, 0, false
		}
		pos++
		if bit == 1 && prevOne {
			return sum, pos - off, true
		}
		newB := a + b
		if newB < b {
			return 0, 0, false
		}
		a, b = b, newB
		if bit == 1 {
			sum += b
			prevOne = true
		} else {
			prevOne = false
		}
	}
}
