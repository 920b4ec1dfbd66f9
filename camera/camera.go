// Package camera maps image-plane coordinates to world-space rays.
package camera

import (
	"math"

	"glimmer/vmath/vec3"
)

// Camera is an immutable pinhole projection.  It is shared read-only by all
// rendering workers, and portal textures capture one to re-enter the
// renderer.
type Camera struct {
	position vec3.T
	forward  vec3.T
	basisX   vec3.T
	basisY   vec3.T
}

// New constructs a camera at position looking along direction with the given
// horizontal field of view in radians.
//
// The basis is built by crossing direction with the world up vector, so the
// camera can't point straight up or straight down: the cross product yields
// the zero vector, and normalizing it produces NaNs.
func New(position, direction vec3.T, fov float64) *Camera {
	halfWidth := math.Tan(fov / 2)
	basisX := vec3.MulVS(vec3.Normalize(vec3.CProd(direction, vec3.Up)), halfWidth)
	basisY := vec3.MulVS(vec3.Normalize(vec3.CProd(direction, basisX)), halfWidth)

	return &Camera{
		position: position,
		forward:  vec3.Normalize(direction),
		basisX:   basisX,
		basisY:   basisY,
	}
}

// RayOrigin returns the origin shared by every ray this camera produces.
func (c *Camera) RayOrigin() vec3.T {
	return c.position
}

// RayDirection returns the world-space direction through normalized device
// coordinates nx, ny ∈ [-1, 1].  The result is deliberately not renormalized.
func (c *Camera) RayDirection(nx, ny float64) vec3.T {
	return vec3.AddVV(c.forward, vec3.AddVV(vec3.MulVS(c.basisX, nx), vec3.MulVS(c.basisY, ny)))
}
