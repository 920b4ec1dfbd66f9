// Renderer traces a scene to a PPM image file.
package main

import (
	goflag "flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"glimmer/camera"
	"glimmer/ppm"
	"glimmer/render"
	"glimmer/scene"
	"glimmer/surface"
	"glimmer/texture"
	"glimmer/vmath/rgb"
	"glimmer/vmath/vec3"
)

var cmdRoot = &cobra.Command{
	Use:          "renderer",
	Short:        "Trace a scene to a PPM image",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

var (
	output     string
	width      int
	height     int
	oversample int
	maxDepth   int

	cameraPosition  string
	cameraDirection string
	fovDegrees      float64

	sceneName string
	seed      int64

	cpuProfile string
	memProfile string
)

func init() {
	cmdRoot.Flags().StringVar(&output, "output", "render.ppm", "Output PPM file.")
	cmdRoot.Flags().IntVar(&width, "width", 640, "Output image width.")
	cmdRoot.Flags().IntVar(&height, "height", 480, "Output image height.")
	cmdRoot.Flags().IntVar(&oversample, "oversample", 2, "Supersampling factor; 1 disables anti-aliasing.")
	cmdRoot.Flags().IntVar(&maxDepth, "max-depth", render.DefaultMaxDepth, "Maximum number of recursive bounces to consider.")
	cmdRoot.Flags().StringVar(&cameraPosition, "camera-position", "-9,0,3", "Camera position as x,y,z.")
	cmdRoot.Flags().StringVar(&cameraDirection, "camera-direction", "1,0,-0.25", "Camera facing direction as x,y,z.")
	cmdRoot.Flags().Float64Var(&fovDegrees, "fov", 60, "Horizontal field of view in degrees.")
	cmdRoot.Flags().StringVar(&sceneName, "scene", "demo", "Scene to render: demo or spherefield.")
	cmdRoot.Flags().Int64Var(&seed, "seed", 1, "Seed for randomized scene construction.")
	cmdRoot.Flags().StringVar(&cpuProfile, "cpu-profile", "", "Write a CPU profile to this file.")
	cmdRoot.Flags().StringVar(&memProfile, "mem-profile", "", "Write a memory profile to this file.")

	cmdRoot.PersistentFlags().AddGoFlagSet(goflag.CommandLine)
}

func main() {
	glog.CopyStandardLogTo("INFO")
	defer glog.Flush()

	if err := cmdRoot.Execute(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	if cpuProfile != "" {
		f, err := os.Create(cpuProfile)
		if err != nil {
			return fmt.Errorf("while creating CPU profile: %w", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("while starting CPU profile: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	position, err := parseVec3(cameraPosition)
	if err != nil {
		return fmt.Errorf("while parsing --camera-position: %w", err)
	}
	direction, err := parseVec3(cameraDirection)
	if err != nil {
		return fmt.Errorf("while parsing --camera-direction: %w", err)
	}

	var sc *scene.Scene
	switch sceneName {
	case "demo":
		sc = demoScene()
	case "spherefield":
		sc = sphereFieldScene(rand.New(rand.NewSource(seed)))
	default:
		return fmt.Errorf("unknown scene %q", sceneName)
	}

	cam := camera.New(position, direction, fovDegrees*math.Pi/180)

	start := time.Now()
	img := render.Render(sc, cam, render.Options{
		Width:      width,
		Height:     height,
		Oversample: oversample,
		MaxDepth:   maxDepth,
	})
	glog.Infof("Rendered %dx%d image (oversample %d) in %v", width, height, oversample, time.Since(start))

	if err := ppm.EncodeToFile(output, img); err != nil {
		return fmt.Errorf("while writing %s: %w", output, err)
	}

	if memProfile != "" {
		f, err := os.Create(memProfile)
		if err != nil {
			return fmt.Errorf("while creating memory profile: %w", err)
		}
		defer f.Close()
		runtime.GC()
		if err := pprof.WriteHeapProfile(f); err != nil {
			return fmt.Errorf("while writing memory profile: %w", err)
		}
	}

	return nil
}

func parseVec3(s string) (vec3.T, error) {
	var v vec3.T
	if _, err := fmt.Sscanf(s, "%g,%g,%g", &v[0], &v[1], &v[2]); err != nil {
		return vec3.T{}, fmt.Errorf("want x,y,z: %w", err)
	}
	return v, nil
}

// demoScene builds a fixed scene that exercises every surface and texture
// variant: a reflective checkerboard floor, a mirror sphere, a diffuse
// sphere, a Mandelbrot billboard, and a portal looking back at the scene
// from above.
func demoScene() *scene.Scene {
	sc := &scene.Scene{
		Background: rgb.T{0, 0.05, 0.15},
		Ambient:    0.6,
		Lights: []scene.LightSource{
			{DirToLight: vec3.T{-2, -1, 10}, Intensity: 2.5},
		},
	}

	floor := &texture.Checkerboard{
		A:          texture.Solid(rgb.T{0.75, 0.75, 0.75}),
		B:          texture.Solid(rgb.T{0.08, 0.08, 0.08}),
		SquareSize: 1,
	}
	sc.Objects = append(sc.Objects, &scene.Object{
		Surface:      surface.NewPlane(vec3.T{0, 0, 0}, vec3.T{1, 0, 0}, vec3.T{0, 1, 0}),
		Texture:      floor,
		Reflectivity: 0.15,
	})

	sc.Objects = append(sc.Objects, &scene.Object{
		Surface:      &surface.Sphere{Center: vec3.T{1, 1.8, 1.2}, Radius: 1.2},
		Texture:      texture.Solid(rgb.T{0.04, 0.04, 0.04}),
		Reflectivity: 0.85,
	})

	sc.Objects = append(sc.Objects, &scene.Object{
		Surface: &surface.Sphere{Center: vec3.T{0.5, -1.8, 0.8}, Radius: 0.8},
		Texture: texture.Solid(rgb.T{0.55, 0.08, 0.08}),
	})

	// A billboard showing the Mandelbrot set, remapped so the quad's
	// parameterization covers the interesting part of the complex plane.
	mandelbrot := &texture.Transform{
		Inner:   &texture.Mandelbrot{Ramp: mandelbrotRamp()},
		OffsetU: -2.6,
		OffsetV: -1.5,
		ScaleU:  0.9,
		ScaleV:  0.9,
	}
	sc.Objects = append(sc.Objects, &scene.Object{
		Surface: surface.NewQuad(vec3.T{4, 0.5, 0}, vec3.T{0, -1, 0}, vec3.T{0, 0, 1}, 4, 3),
		Texture: mandelbrot,
	})

	// A portal that looks down on the scene from above.  The quad's (u, v)
	// runs over [0, 2] x [0, 2], so remap it onto the portal camera's
	// [-1, 1] image plane.
	portalCam := camera.New(vec3.T{-6, 4, 7}, vec3.T{1, -0.5, -1}, 70*math.Pi/180)
	portal := &texture.Transform{
		Inner:   &texture.Portal{Camera: portalCam},
		OffsetU: -1,
		OffsetV: -1,
		ScaleU:  1,
		ScaleV:  1,
	}
	sc.Objects = append(sc.Objects, &scene.Object{
		Surface: surface.NewQuad(vec3.T{4, 4.5, 0.5}, vec3.T{0, -1, 0}, vec3.T{0, 0, 1}, 2, 2),
		Texture: portal,
	})

	return sc
}

// sphereFieldScene scatters reflective spheres over a checkerboard floor
// using the passed generator, so a fixed seed reproduces the same scene.
func sphereFieldScene(rng *rand.Rand) *scene.Scene {
	sc := &scene.Scene{
		Background: rgb.T{0.02, 0.02, 0.1},
		Ambient:    0.5,
		Lights: []scene.LightSource{
			{DirToLight: vec3.T{-1, 2, 8}, Intensity: 2},
			{DirToLight: vec3.T{3, -2, 5}, Intensity: 0.8},
		},
	}

	floor := &texture.Checkerboard{
		A:          texture.Solid(rgb.T{0.7, 0.7, 0.6}),
		B:          texture.Solid(rgb.T{0.15, 0.1, 0.1}),
		SquareSize: 2,
	}
	sc.Objects = append(sc.Objects, &scene.Object{
		Surface:      surface.NewPlane(vec3.T{0, 0, 0}, vec3.T{1, 0, 0}, vec3.T{0, 1, 0}),
		Texture:      floor,
		Reflectivity: 0.1,
	})

	for i := 0; i < 40; i++ {
		radius := 0.3 + 0.7*rng.Float64()
		center := vec3.T{
			12*rng.Float64() - 2,
			12*rng.Float64() - 6,
			radius,
		}
		color := rgb.T{
			0.7 * rng.Float64(),
			0.7 * rng.Float64(),
			0.7 * rng.Float64(),
		}

		reflectivity := 0.0
		if rng.Float64() < 0.3 {
			reflectivity = 0.4 + 0.4*rng.Float64()
		}

		sc.Objects = append(sc.Objects, &scene.Object{
			Surface:      &surface.Sphere{Center: center, Radius: radius},
			Texture:      texture.Solid(color),
			Reflectivity: reflectivity,
		})
	}

	return sc
}

func mandelbrotRamp() []rgb.T {
	return []rgb.T{
		rgb.GammaDecode(0, 7, 100),
		rgb.GammaDecode(32, 107, 203),
		rgb.GammaDecode(237, 255, 255),
		rgb.GammaDecode(255, 170, 0),
		rgb.GammaDecode(0, 2, 0),
	}
}
