// Package vecmath implements the small amount of dense-vector arithmetic the
// retriever needs. Brute-force cosine over a few thousand vectors does not
// warrant an external linear algebra dependency.
package vecmath

import "math"

// Dot returns the dot product of a and b. Slices of unequal length are
// compared over the shorter prefix.
func Dot(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += a[i] * b[i]
	}
	return sum
}

// Norm returns the L2 norm of v.
func Norm(v []float64) float64 {
	return math.Sqrt(Dot(v, v))
}

// Cosine returns the cosine similarity of a and b. The measure is undefined
// when either vector is zero; that case is defined as 0 here so callers never
// see a division by zero.
func Cosine(a, b []float64) float64 {
	na, nb := Norm(a), Norm(b)
	if na == 0 || nb == 0 {
		return 0
	}
	return Dot(a, b) / (na * nb)
}
