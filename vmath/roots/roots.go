// Package roots solves the small polynomial systems that come up in ray
// intersection tests.
package roots

import "math"

// Quadratic returns the two real roots of ax² + bx + c = 0.  The single
// solution case tends to be degenerate (a ray exactly grazing a sphere), so
// we only report the two solution case.
func Quadratic(a, b, c float64) (x1, x2 float64, ok bool) {
	discriminant := b*b - 4*a*c
	if discriminant <= 0 {
		return 0, 0, false
	}

	scale := 1 / (2 * a)
	x := -b * scale
	delta := math.Sqrt(discriminant) * scale

	return x + delta, x - delta, true
}
