// Package scene owns the renderable objects and light sources, and traces
// rays through them to colors.
package scene

import (
	"math"

	"glimmer/surface"
	"glimmer/texture"
	"glimmer/vmath/rgb"
	"glimmer/vmath/vec3"
)

// floatBias offsets shadow and reflection ray origins along the surface
// normal.  Tracing from the exact hit position sometimes re-detects the
// surface the point lies on due to floating point rounding.
const floatBias = 0.001

// LightSource is a directional light.  DirToLight points from any surface
// toward the light and need not be unit length.
type LightSource struct {
	DirToLight vec3.T
	Intensity  float64
}

// Object associates a geometry with a color function and a mirror
// reflectivity in [0, 1].  Objects are immutable once added to a scene.
type Object struct {
	Surface      surface.Surface
	Texture      texture.Texture
	Reflectivity float64
}

// Scene is read-only during rendering, which is what lets all workers share
// it without synchronization.
type Scene struct {
	Background rgb.T
	Ambient    float64
	Lights     []LightSource
	Objects    []*Object
}

var _ texture.Caster = (*Scene)(nil)

// TraceToNearestObject intersects the ray against every object and returns
// the one hit at the smallest distance.  Exact ties between objects are
// measure-zero in floating point; whichever comes first in the object list
// wins.
func (s *Scene) TraceToNearestObject(origin, direction vec3.T) (*Object, float64, bool) {
	var nearest *Object
	nearestDist := math.Inf(1)

	for _, obj := range s.Objects {
		dist, ok := obj.Surface.IntersectRay(origin, direction)
		if ok && dist < nearestDist {
			nearest = obj
			nearestDist = dist
		}
	}

	if nearest == nil {
		return nil, 0, false
	}
	return nearest, nearestDist, true
}

// LightOnSurface computes the total illumination arriving at a surface
// point: the scene's ambient term plus a Lambertian contribution from each
// light source that is not occluded.  The result is unclamped and may exceed
// 1; clamping is deferred to the final gamma stage.
func (s *Scene) LightOnSurface(position, normal vec3.T) float64 {
	tracePos := vec3.AddVV(position, vec3.MulVS(normal, floatBias))

	lambert := 0.0
	for _, light := range s.Lights {
		if _, _, hit := s.TraceToNearestObject(tracePos, light.DirToLight); hit {
			// Something is in the way.
			continue
		}
		cosine := vec3.IProd(vec3.Normalize(light.DirToLight), normal)
		lambert += math.Max(cosine, 0) * light.Intensity
	}

	return s.Ambient + lambert
}

// Cast traces a ray to a final color.  depth bounds the recursion: every
// reflective or portal bounce decrements it, and once the budget is
// exhausted the background color is returned regardless of geometry, so
// cast chains always terminate.
func (s *Scene) Cast(origin, direction vec3.T, depth int) rgb.T {
	if depth <= 0 {
		return s.Background
	}

	obj, dist, ok := s.TraceToNearestObject(origin, direction)
	if !ok {
		return s.Background
	}

	position := vec3.AddVV(origin, vec3.MulVS(direction, dist))
	props := obj.Surface.AtPoint(position)
	light := s.LightOnSurface(position, props.Normal)
	base := obj.Texture.Color(s, depth, props.U, props.V)

	out := rgb.MulCS(base, light)
	if obj.Reflectivity != 0 {
		reflectDir := vec3.Reflect(direction, props.Normal)
		reflectOrigin := vec3.AddVV(position, vec3.MulVS(props.Normal, floatBias))
		reflected := s.Cast(reflectOrigin, reflectDir, depth-1)
		out = rgb.AddCC(out, rgb.MulCS(reflected, obj.Reflectivity))
	}

	return out
}
