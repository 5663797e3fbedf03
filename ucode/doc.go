// Package ucode implements six variable-length universal codes for positive
// integers — Elias gamma, delta and omega, Fibonacci, Zeta(k) and BL(S) —
// against the bit-buffer and bit-source contracts of package bitio. Each
// code is a small descriptor value; Encode and Decode dispatch on it
// generically over the target integer type.
package ucode
