package nn

import "math/rand"

// uniformWeight draws an initial weight from U(-1, 1).
//
// Scalar networks here are tiny, so the plain micro-framework uniform
// init is used instead of fan-in scaled schemes.
//
//nolint:gosec // math/rand for weight initialization (not security-critical)
func uniformWeight() float64 {
	return rand.Float64()*2 - 1
}
