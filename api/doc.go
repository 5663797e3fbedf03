// Package api is the surface convenience layer over bitio and ucode: an
// allocating encode/decode pair parameterised by storage kind and endian,
// the non-negative/signed mapping overloads, and pretty-printing helpers
// for tests and the command-line tool.
package api
