package ucode

import (
	"math/bits"

	"github.com/voxelsplace/bitcode/bitio"
)

// encodeOmega builds the codeword outside-in: the sequence starts as a
// lone terminating 0, and each step prepends the binary representation of
// the current value (which always starts with a 1) before replacing the
// value with its own bit length minus one. Emitting requires reversing
// that prepend order: the last-computed chunk is written first.
func encodeOmega(dst bitio.BitBuffer, value uint64) {
	type chunk struct {
		val uint64
		l   int
	}
	var chunks []chunk
	v := value
	for v > 1 {
		l := bits.Len64(v)
		chunks = append(chunks, chunk{val: v, l: l})
		v = uint64(l - 1)
	}
	for i := len(chunks) - 1; i >= 0; i-- {
		dst.AppendBits(chunks[i].val, uint8(chunks[i].l))
	}
	dst.AppendZeros(1)
}

// decodeOmega reads a control bit at a time; a 0 terminates with the
// current x as the value, a 1 means x more bits follow that fold into x
// via x = read_bits | 2^x.
func decodeOmega(src bitio.BitSource, off uint64, width int) (uint64, uint64, bool) {
	x := uint64(1)
	pos := off
	for {
		bit, ok := src.GetBits(1, pos)
		if !ok {
			return 0, 0, false
		}
		pos++
		if bit == 0 {
			return x, pos - off, true
		}
		// folding read_bits (x bits) into 2^x needs x+1 bits to hold;
		// reject before that would exceed the target width.
		if x >= uint64(width) {
			return 0, 0, false
		}
		read, ok := src.GetBits(uint8(x), pos)
		if !ok {
			return 0, 0, false
		}
		pos += x
		x = read | (uint64(1) << x)
	}
}
