// Package surface provides the geometric primitives that rays can hit.
package surface

import (
	"math"

	"glimmer/vmath/roots"
	"glimmer/vmath/vec3"
)

// planeEpsilon is the |D·N| threshold below which a ray is treated as
// parallel to a plane and reported as a miss.
const planeEpsilon = 0.001

// Properties describes a surface at a single point: the unit normal there,
// and the 2-D parameterization used to address a texture.
type Properties struct {
	Normal vec3.T
	U, V   float64
}

// Surface is a geometric primitive.
//
// IntersectRay returns the distance along the ray to the nearest
// intersection strictly in front of the origin, or ok == false if the ray
// misses.  direction need not be unit length; the returned distance is in
// multiples of it.
//
// AtPoint reports the local surface properties at a point assumed to lie on
// the surface.
type Surface interface {
	IntersectRay(origin, direction vec3.T) (dist float64, ok bool)
	AtPoint(point vec3.T) Properties
}

// Sphere is a sphere with the given center and radius.  Radius must be
// positive.
type Sphere struct {
	Center vec3.T
	Radius float64
}

func (s *Sphere) IntersectRay(origin, direction vec3.T) (float64, bool) {
	originMinusCenter := vec3.SubVV(origin, s.Center)
	a := vec3.IProd(direction, direction)
	b := 2 * vec3.IProd(direction, originMinusCenter)
	c := vec3.IProd(originMinusCenter, originMinusCenter) - s.Radius*s.Radius

	t1, t2, ok := roots.Quadratic(a, b, c)
	if !ok {
		return 0, false
	}

	// Keep the nearest intersection in front of the ray origin.  Negative
	// roots are behind us.
	switch {
	case t1 > 0 && t2 > 0:
		return math.Min(t1, t2), true
	case t1 > 0:
		return t1, true
	case t2 > 0:
		return t2, true
	}
	return 0, false
}

func (s *Sphere) AtPoint(point vec3.T) Properties {
	d := vec3.Normalize(vec3.SubVV(point, s.Center))
	return Properties{
		Normal: d,
		U:      0.5 + math.Atan2(d[1], d[0])/(2*math.Pi),
		V:      0.5 - math.Asin(d[2])/math.Pi,
	}
}

// Plane is an infinite plane through Position, parameterized by the two
// basis vectors.  Its normal is the unit cross product UBasis × VBasis.
type Plane struct {
	Position vec3.T
	UBasis   vec3.T
	VBasis   vec3.T
	normal   vec3.T
}

// NewPlane constructs a plane.  uBasis and vBasis must not be parallel.
func NewPlane(position, uBasis, vBasis vec3.T) *Plane {
	return &Plane{
		Position: position,
		UBasis:   uBasis,
		VBasis:   vBasis,
		normal:   vec3.Normalize(vec3.CProd(uBasis, vBasis)),
	}
}

func (p *Plane) IntersectRay(origin, direction vec3.T) (float64, bool) {
	denom := vec3.IProd(direction, p.normal)
	if math.Abs(denom) < planeEpsilon {
		// Basically parallel to the plane, no intersection.
		return 0, false
	}

	numer := vec3.IProd(vec3.SubVV(p.Position, origin), p.normal)
	d := numer / denom
	if d <= 0 {
		return 0, false
	}
	return d, true
}

func (p *Plane) AtPoint(point vec3.T) Properties {
	withinPlane := vec3.SubVV(point, p.Position)
	return Properties{
		Normal: p.normal,
		U:      vec3.IProd(withinPlane, p.UBasis),
		V:      vec3.IProd(withinPlane, p.VBasis),
	}
}

// Quad is a bounded rectangle of a plane: hits whose parameterization falls
// outside [0, Width) × [0, Height] are rejected.
type Quad struct {
	*Plane
	Width  float64
	Height float64
}

func NewQuad(position, uBasis, vBasis vec3.T, width, height float64) *Quad {
	return &Quad{
		Plane:  NewPlane(position, uBasis, vBasis),
		Width:  width,
		Height: height,
	}
}

func (q *Quad) IntersectRay(origin, direction vec3.T) (float64, bool) {
	d, ok := q.Plane.IntersectRay(origin, direction)
	if !ok {
		return 0, false
	}

	hit := vec3.AddVV(origin, vec3.MulVS(direction, d))
	props := q.Plane.AtPoint(hit)
	if props.U < 0 || props.U >= q.Width || props.V < 0 || props.V > q.Height {
		return 0, false
	}
	return d, true
}
