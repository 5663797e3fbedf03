// Package bitio provides the bit-buffer and bit-source primitives that the
// universal codes in package ucode are built on: append n zeros/ones/given
// bits, count leading zeros/ones from an offset, and read n bits from an
// offset, uniformly across three storage kinds (fixed-width word, unbounded
// integer, growable array of words) and two bit-packing conventions
// (most-significant-bit first, least-significant-bit first).
//
// Bit order is selected at compile time through a phantom type parameter
// (MSB or LSB) rather than a runtime flag stored in each buffer, so a
// buffer's packing direction is fixed by its type.
package bitio
