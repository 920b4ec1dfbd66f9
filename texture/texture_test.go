package texture

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"glimmer/camera"
	"glimmer/vmath/rgb"
	"glimmer/vmath/vec3"
)

// fakeCaster records the cast it receives and returns a fixed color.
type fakeCaster struct {
	origin    vec3.T
	direction vec3.T
	depth     int
	result    rgb.T
}

func (f *fakeCaster) Cast(origin, direction vec3.T, depth int) rgb.T {
	f.origin = origin
	f.direction = direction
	f.depth = depth
	return f.result
}

func TestSolidIgnoresCoordinates(t *testing.T) {
	s := Solid(rgb.T{0.25, 0.5, 0.75})

	if diff := cmp.Diff(s.Color(nil, 5, 0, 0), s.Color(nil, 5, 100, -3)); diff != "" {
		t.Errorf("Solid color varied with coordinates; diff\n%s", diff)
	}
}

func TestCheckerboardAlternates(t *testing.T) {
	red := rgb.T{1, 0, 0}
	blue := rgb.T{0, 0, 1}
	c := &Checkerboard{A: Solid(red), B: Solid(blue), SquareSize: 1}

	first := c.Color(nil, 1, 0.4, 0.4)
	second := c.Color(nil, 1, 1.4, 0.4)
	third := c.Color(nil, 1, 2.4, 0.4)

	if diff := cmp.Diff(first, third); diff != "" {
		t.Errorf("Two squares over should repeat; diff\n%s", diff)
	}
	if cmp.Equal(first, second) {
		t.Errorf("Adjacent squares should alternate, both were %v", first)
	}
	if !cmp.Equal(first, red) || !cmp.Equal(second, blue) {
		t.Errorf("Got (%v, %v), want (%v, %v)", first, second, red, blue)
	}
}

func TestCheckerboardNegativeCoordinates(t *testing.T) {
	red := rgb.T{1, 0, 0}
	blue := rgb.T{0, 0, 1}
	c := &Checkerboard{A: Solid(red), B: Solid(blue), SquareSize: 1}

	// Crossing zero keeps alternating rather than mirroring.
	if diff := cmp.Diff(c.Color(nil, 1, -0.6, 0.4), rgb.T{0, 0, 1}); diff != "" {
		t.Errorf("Bad square at negative u; diff (-got +want)\n%s", diff)
	}
}

func TestCheckerboardSquareSize(t *testing.T) {
	red := rgb.T{1, 0, 0}
	blue := rgb.T{0, 0, 1}
	c := &Checkerboard{A: Solid(red), B: Solid(blue), SquareSize: 2}

	if diff := cmp.Diff(c.Color(nil, 1, 1.9, 0), c.Color(nil, 1, 0.1, 0)); diff != "" {
		t.Errorf("Same square should have one color; diff\n%s", diff)
	}
	if cmp.Equal(c.Color(nil, 1, 2.1, 0), c.Color(nil, 1, 1.9, 0)) {
		t.Errorf("Period should equal the square size")
	}
}

func TestTransformRemapsCoordinates(t *testing.T) {
	inner := &Checkerboard{
		A:          Solid(rgb.T{1, 1, 1}),
		B:          Solid(rgb.T{0, 0, 0}),
		SquareSize: 1,
	}
	tr := &Transform{Inner: inner, OffsetU: 10, OffsetV: 10, ScaleU: 0.5, ScaleV: 0.5}

	// (u, v) = (0, 0) lands on inner coordinates (5, 5).
	if diff := cmp.Diff(tr.Color(nil, 1, 0, 0), inner.Color(nil, 1, 5, 5)); diff != "" {
		t.Errorf("Bad remap; diff\n%s", diff)
	}
}

func TestMandelbrotEscapeTime(t *testing.T) {
	// The origin never escapes; it is a member of the set.
	if _, ok := EscapeTime(complex(0, 0)); ok {
		t.Errorf("c = 0 should be in the set")
	}

	// Anything outside |c| = 2 escapes with a finite smooth count.
	escape, ok := EscapeTime(complex(3, 0))
	if !ok {
		t.Fatalf("c = 3 should escape")
	}
	if math.IsNaN(escape) || math.IsInf(escape, 0) {
		t.Errorf("Escape time should be finite, got %v", escape)
	}
}

func TestMandelbrotColors(t *testing.T) {
	m := &Mandelbrot{Ramp: []rgb.T{{1, 0, 0}, {0, 1, 0}}}

	if diff := cmp.Diff(m.Color(nil, 1, 0, 0), rgb.T{0, 0, 0}); diff != "" {
		t.Errorf("In-set points should be black; diff (-got +want)\n%s", diff)
	}

	got := m.Color(nil, 1, 3, 0)
	if got == (rgb.T{0, 0, 0}) {
		t.Errorf("Escaped points should pick up the ramp color, got black")
	}
}

func TestPortalCastsThroughItsCamera(t *testing.T) {
	cam := camera.New(vec3.T{1, 2, 3}, vec3.T{1, 0, 0}, math.Pi/2)
	p := &Portal{Camera: cam}

	caster := &fakeCaster{result: rgb.T{0.1, 0.2, 0.3}}
	got := p.Color(caster, 7, 0, 0)

	if diff := cmp.Diff(got, caster.result); diff != "" {
		t.Errorf("Portal should return the sub-render's color; diff\n%s", diff)
	}
	if caster.depth != 6 {
		t.Errorf("Portal should spend one unit of depth: got %d, want 6", caster.depth)
	}
	if diff := cmp.Diff(caster.origin, vec3.T{1, 2, 3}); diff != "" {
		t.Errorf("Portal rays should start at its camera; diff\n%s", diff)
	}
	if diff := cmp.Diff(caster.direction, vec3.T{1, 0, 0}, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("Center coordinate should cast straight ahead; diff (-got +want)\n%s", diff)
	}
}
