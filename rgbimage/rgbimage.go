// Package rgbimage provides a fixed-size row-major grid of linear colors.
//
// Rows and columns are exposed as independent views so that row-parallel or
// column-parallel workers can each own a disjoint region of the backing
// storage without synchronization.
package rgbimage

import (
	"glimmer/vmath/rgb"
)

type Image struct {
	Width, Height int
	Pix           []rgb.T
}

func New(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pix:    make([]rgb.T, width*height),
	}
}

func (im *Image) At(x, y int) rgb.T {
	return im.Pix[y*im.Width+x]
}

func (im *Image) Set(x, y int, c rgb.T) {
	im.Pix[y*im.Width+x] = c
}

// Row returns the pixels of row y as a slice aliasing the image's backing
// storage.  Distinct rows never overlap.
func (im *Image) Row(y int) []rgb.T {
	return im.Pix[y*im.Width : (y+1)*im.Width]
}

// Col is a strided view of a single column.  Distinct columns never overlap.
type Col struct {
	pix    []rgb.T
	stride int
}

func (im *Image) Col(x int) Col {
	return Col{
		pix:    im.Pix[x:],
		stride: im.Width,
	}
}

func (c Col) Len() int {
	return (len(c.pix) + c.stride - 1) / c.stride
}

func (c Col) At(y int) rgb.T {
	return c.pix[y*c.stride]
}

func (c Col) Set(y int, v rgb.T) {
	c.pix[y*c.stride] = v
}
