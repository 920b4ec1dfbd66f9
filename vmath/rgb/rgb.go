// Package rgb holds colors in linear light space.  Components are unclamped
// while rendering; clamping happens only at the final 8-bit quantization.
package rgb

import "math"

type T [3]float64

func AddCC(a, b T) T {
	return T{
		a[0] + b[0],
		a[1] + b[1],
		a[2] + b[2],
	}
}

func MulCS(a T, b float64) T {
	return T{
		a[0] * b,
		a[1] * b,
		a[2] * b,
	}
}

// Lerp linearly interpolates between a and b.  t is not clamped.
func Lerp(a, b T, t float64) T {
	return AddCC(MulCS(a, 1-t), MulCS(b, t))
}

// CircularLerp interpolates into ramp at position x, wrapping around so the
// last entry blends back into the first.  The integer part of x selects the
// entry and the fractional part blends toward the next one.
func CircularLerp(ramp []T, x float64) T {
	i := int(math.Floor(x))
	frac := x - math.Floor(x)

	lo := i % len(ramp)
	if lo < 0 {
		lo += len(ramp)
	}
	hi := (lo + 1) % len(ramp)

	return Lerp(ramp[lo], ramp[hi], frac)
}

func gammaEncodeComponent(linear float64) uint8 {
	// Clamp to [0, 1] and apply the display transfer function.  Not quite a
	// correct sRGB transfer, but close enough for our output.
	return uint8(math.Pow(math.Min(math.Max(linear, 0), 1), 1/2.2) * 255)
}

// GammaEncode clamps c to [0, 1] and quantizes it to gamma-encoded 8-bit
// display components.
func (c T) GammaEncode() (r, g, b uint8) {
	return gammaEncodeComponent(c[0]),
		gammaEncodeComponent(c[1]),
		gammaEncodeComponent(c[2])
}

// GammaDecode converts gamma-encoded 8-bit display components back into a
// linear color.
func GammaDecode(r, g, b uint8) T {
	return T{
		math.Pow(float64(r)/255, 2.2),
		math.Pow(float64(g)/255, 2.2),
		math.Pow(float64(b)/255, 2.2),
	}
}
