// Package ppm writes images in the binary PPM (P6) format.
package ppm

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"glimmer/rgbimage"
)

// Encode writes img to w as a binary PPM: a text header followed by
// gamma-encoded 8-bit RGB triplets in row-major order.
func Encode(w io.Writer, img *rgbimage.Image) error {
	bw := bufio.NewWriter(w)

	// The trailing space is important: exactly one whitespace byte separates
	// the header from the binary pixel data.
	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n%d ", img.Width, img.Height, 255); err != nil {
		return fmt.Errorf("while writing header: %w", err)
	}

	for y := 0; y < img.Height; y++ {
		for _, c := range img.Row(y) {
			r, g, b := c.GammaEncode()
			if _, err := bw.Write([]byte{r, g, b}); err != nil {
				return fmt.Errorf("while writing pixel data: %w", err)
			}
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("while flushing output: %w", err)
	}
	return nil
}

// EncodeToFile writes img to the named file, creating or truncating it.
func EncodeToFile(name string, img *rgbimage.Image) error {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("while creating output file: %w", err)
	}
	defer f.Close()

	return Encode(f, img)
}
