package api

import "github.com/voxelsplace/bitcode/bitio"

// Render prints the logical bit sequence of src as a '0'/'1' string, in
// write order.
func Render(src bitio.BitSource) string {
	n := src.NumBits()
	out := make([]byte, n)
	for i := uint64(0); i < n; i++ {
		v, _ := src.GetBits(1, i)
		if v == 1 {
			out[i] = '1'
		} else {
			out[i] = '0'
		}
	}
	return string(out)
}

// ParseBits is the inverse of Render: it builds a fixed-width word buffer
// by appending each character's bit in order. A WordBuffer holds at most
// 64 bits, so s must be at most 64 characters.
func ParseBits[E bitio.Endian](s string) *bitio.WordBuffer[E] {
	buf := bitio.NewWordBuffer[E](uint8(len(s)))
	for _, c := range s {
		if c == '1' {
			buf.AppendOnes(1)
		} else {
			buf.AppendZeros(1)
		}
	}
	return buf
}
