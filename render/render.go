// Package render drives the image generation pipeline: a data-parallel ray
// casting pass over an oversampled pixel grid, followed by a separable
// Gaussian convolution that filters and decimates back down to the requested
// resolution.
package render

import (
	"runtime"
	"sync"
	"time"

	"github.com/golang/glog"
	"golang.org/x/sync/errgroup"

	"glimmer/camera"
	"glimmer/rgbimage"
	"glimmer/scene"
	"glimmer/vmath/rgb"
)

// DefaultMaxDepth is the recursion bound used when Options.MaxDepth is not
// set.
const DefaultMaxDepth = 10

type Options struct {
	Width  int
	Height int

	// Oversample is the supersampling factor.  Values <= 1 render directly
	// at the target resolution with no filtering.
	Oversample int

	// MaxDepth bounds the recursive cast.  Values <= 0 mean DefaultMaxDepth.
	MaxDepth int
}

// Render produces the final image for a scene and camera.  The scene and
// camera are only read, so a single pair can serve many concurrent renders.
func Render(sc *scene.Scene, cam *camera.Camera, opts Options) *rgbimage.Image {
	maxDepth := opts.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	if opts.Oversample <= 1 {
		return traceImage(sc, cam, opts.Width, opts.Height, maxDepth)
	}

	sigma := 0.4 * float64(opts.Oversample)
	kernel := GaussianKernel(sigma)

	// The convolution consumes len(kernel)-1 points in each dimension, so
	// the trace pass renders that much extra margin.
	extra := len(kernel) - 1
	oversampledWidth := opts.Width*opts.Oversample + extra
	oversampledHeight := opts.Height*opts.Oversample + extra

	glog.V(1).Infof("Oversampling %dx: tracing %dx%d with a %d-tap kernel", opts.Oversample, oversampledWidth, oversampledHeight, len(kernel))

	oversampled := traceImage(sc, cam, oversampledWidth, oversampledHeight, maxDepth)
	return downsample(oversampled, kernel, opts.Oversample, opts.Width, opts.Height)
}

// chunkWorker traces a contiguous band of image rows.  Each worker owns its
// band exclusively, so no locking is needed.
type chunkWorker struct {
	img              *rgbimage.Image
	sc               *scene.Scene
	cam              *camera.Camera
	maxDepth         int
	progressFunction func(rows int)

	rowSrc, rowLim int
}

func (w *chunkWorker) trace() {
	// Normalized device coordinates are scaled by the larger image
	// dimension, so the full [-1, 1] range always maps onto it.
	scale := w.img.Width
	if w.img.Height > scale {
		scale = w.img.Height
	}

	origin := w.cam.RayOrigin()
	for y := w.rowSrc; y < w.rowLim; y++ {
		row := w.img.Row(y)
		ny := (2*float64(y) - float64(w.img.Height)) / float64(scale)
		for x := range row {
			nx := (2*float64(x) - float64(w.img.Width)) / float64(scale)
			row[x] = w.sc.Cast(origin, w.cam.RayDirection(nx, ny), w.maxDepth)
		}
	}

	w.progressFunction(w.rowLim - w.rowSrc)
}

func traceImage(sc *scene.Scene, cam *camera.Camera, width, height, maxDepth int) *rgbimage.Image {
	start := time.Now()
	img := rgbimage.New(width, height)

	// progressMutex locks curProgress.
	curProgress := 0
	progressMutex := sync.Mutex{}

	var eg errgroup.Group
	forEachChunk(height, func(src, lim int) {
		w := &chunkWorker{
			img:      img,
			sc:       sc,
			cam:      cam,
			maxDepth: maxDepth,
			progressFunction: func(rows int) {
				progressMutex.Lock()
				defer progressMutex.Unlock()
				curProgress += rows
				glog.V(1).Infof("Traced %d/%d rows", curProgress, height)
			},
			rowSrc: src,
			rowLim: lim,
		}
		eg.Go(func() error {
			w.trace()
			return nil
		})
	})
	if err := eg.Wait(); err != nil {
		glog.Errorf("While waiting for trace workers: %v", err)
	}

	glog.V(1).Infof("Traced %dx%d image in %v", width, height, time.Since(start))
	return img
}

// downsample applies the separable convolution kernel along rows and then
// columns, decimating by factor, to produce a width x height image.
func downsample(over *rgbimage.Image, kernel []float64, factor, width, height int) *rgbimage.Image {
	start := time.Now()

	// Horizontal pass: each worker owns a band of rows of the intermediate
	// image.
	mid := rgbimage.New(width, over.Height)
	var rows errgroup.Group
	forEachChunk(over.Height, func(src, lim int) {
		rows.Go(func() error {
			for y := src; y < lim; y++ {
				in := over.Row(y)
				out := mid.Row(y)
				for x := range out {
					out[x] = convolveRow(in[x*factor:], kernel)
				}
			}
			return nil
		})
	})
	if err := rows.Wait(); err != nil {
		glog.Errorf("While waiting for row filter workers: %v", err)
	}

	// Vertical pass: each worker owns a band of columns of the output.
	final := rgbimage.New(width, height)
	var cols errgroup.Group
	forEachChunk(width, func(src, lim int) {
		cols.Go(func() error {
			for x := src; x < lim; x++ {
				in := mid.Col(x)
				out := final.Col(x)
				for y := 0; y < height; y++ {
					out.Set(y, convolveCol(in, y*factor, kernel))
				}
			}
			return nil
		})
	})
	if err := cols.Wait(); err != nil {
		glog.Errorf("While waiting for column filter workers: %v", err)
	}

	glog.V(1).Infof("Filtered down to %dx%d in %v", width, height, time.Since(start))
	return final
}

func convolveRow(in []rgb.T, kernel []float64) rgb.T {
	var acc rgb.T
	for k, weight := range kernel {
		acc = rgb.AddCC(acc, rgb.MulCS(in[k], weight))
	}
	return acc
}

func convolveCol(in rgbimage.Col, src int, kernel []float64) rgb.T {
	var acc rgb.T
	for k, weight := range kernel {
		acc = rgb.AddCC(acc, rgb.MulCS(in.At(src+k), weight))
	}
	return acc
}

// forEachChunk partitions [0, n) into one contiguous chunk per CPU and
// invokes f for each non-empty chunk.
func forEachChunk(n int, f func(src, lim int)) {
	workers := runtime.NumCPU()
	chunk := (n + workers - 1) / workers

	for src := 0; src < n; src += chunk {
		lim := src + chunk
		if lim > n {
			lim = n
		}
		f(src, lim)
	}
}
