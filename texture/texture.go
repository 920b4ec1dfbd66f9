// Package texture maps 2-D surface coordinates to colors.  Textures compose:
// a checkerboard dispatches between two child textures, a transform remaps
// coordinates before delegating, and a portal re-enters the renderer through
// an embedded camera.
package texture

import (
	"math"

	"glimmer/vmath/rgb"
	"glimmer/vmath/vec3"
)

// squareBias is a large even offset added to checkerboard square indices so
// the modulo stays non-negative for squares at negative coordinates.
const squareBias = 1000000

// Caster casts a ray through a scene to a color, bounded by a remaining
// recursion depth.  It is implemented by scene.Scene and threaded through
// every Color call so that textures which re-enter the renderer (Portal)
// need no stored back-reference to the scene.
type Caster interface {
	Cast(origin, direction vec3.T, depth int) rgb.T
}

// Texture produces a color at a 2-D surface coordinate.  depth is the
// remaining recursion budget of the cast that is evaluating the texture; a
// texture that casts further rays must do so with depth-1.
type Texture interface {
	Color(caster Caster, depth int, u, v float64) rgb.T
}

// Solid is a texture with a single color everywhere.
type Solid rgb.T

func (s Solid) Color(caster Caster, depth int, u, v float64) rgb.T {
	return rgb.T(s)
}

// Checkerboard alternates between two child textures in a checker pattern
// with squares of side SquareSize.  Child textures see the fractional
// position within their square.
type Checkerboard struct {
	A, B       Texture
	SquareSize float64
}

func (c *Checkerboard) Color(caster Caster, depth int, u, v float64) rgb.T {
	scaledU := u / c.SquareSize
	scaledV := v / c.SquareSize
	square := int(math.Floor(scaledU) + math.Floor(scaledV))
	squareU := scaledU - math.Floor(scaledU)
	squareV := scaledV - math.Floor(scaledV)

	if (square+squareBias)%2 == 0 {
		return c.A.Color(caster, depth, squareU, squareV)
	}
	return c.B.Color(caster, depth, squareU, squareV)
}

// Transform offsets and then scales coordinates before delegating to Inner.
// It maps a sub-rectangle of a surface's parameterization onto the inner
// texture's native coordinate space.
type Transform struct {
	Inner            Texture
	OffsetU, OffsetV float64
	ScaleU, ScaleV   float64
}

func (t *Transform) Color(caster Caster, depth int, u, v float64) rgb.T {
	return t.Inner.Color(caster, depth, (u+t.OffsetU)*t.ScaleU, (v+t.OffsetV)*t.ScaleV)
}
