package render

import "math"

// GaussianKernel returns a normalized, symmetric 1-D Gaussian filter kernel
// for the given standard deviation.  The kernel covers three standard
// deviations to each side, so its length is always odd.
func GaussianKernel(sigma float64) []float64 {
	radius := int(math.Ceil(3 * sigma))

	kernel := make([]float64, 2*radius+1)
	sum := 0.0
	for i := range kernel {
		x := float64(i - radius)
		kernel[i] = math.Exp(-x * x / (2 * sigma * sigma))
		sum += kernel[i]
	}

	for i := range kernel {
		kernel[i] /= sum
	}

	return kernel
}
