package texture

import (
	"math"

	"glimmer/vmath/rgb"
)

const (
	escapeIterations = 100

	// The mathematical minimum escape radius is 2, but a much larger radius
	// avoids visible banding in the smooth coloring formula.
	escapeRadius = 50.0
)

// EscapeTime iterates z ← z² + c from z = 0 and returns the smoothed
// iteration count at which the orbit leaves the escape radius.  ok == false
// means the orbit never escaped within the iteration cap, i.e. c is taken to
// be a member of the set.
func EscapeTime(c complex128) (escape float64, ok bool) {
	z := complex(0, 0)
	for i := 0; i < escapeIterations; i++ {
		z = z*z + c

		magSquared := real(z)*real(z) + imag(z)*imag(z)
		if magSquared > escapeRadius*escapeRadius {
			// Fractional iteration count, so neighboring pixels shade
			// continuously instead of in integer bands.
			return float64(i) - math.Log(0.5*math.Log(magSquared)/math.Log(escapeRadius))/math.Ln2, true
		}
	}
	return 0, false
}

// Mandelbrot colors coordinates by Mandelbrot escape time: (u, v) is treated
// as a point on the complex plane, escaped points interpolate circularly
// into Ramp, and points inside the set are black.
type Mandelbrot struct {
	Ramp []rgb.T
}

func (m *Mandelbrot) Color(caster Caster, depth int, u, v float64) rgb.T {
	escape, ok := EscapeTime(complex(u, v))
	if !ok {
		return rgb.T{0, 0, 0}
	}
	return rgb.CircularLerp(m.Ramp, escape*0.25)
}
