package texture

import (
	"glimmer/camera"
	"glimmer/vmath/rgb"
)

// Portal renders a view through an embedded camera: (u, v) is treated as an
// image-plane coordinate for that camera, and the resulting ray is cast back
// into the scene with one less unit of recursion depth.
type Portal struct {
	Camera *camera.Camera
}

func (p *Portal) Color(caster Caster, depth int, u, v float64) rgb.T {
	return caster.Cast(p.Camera.RayOrigin(), p.Camera.RayDirection(u, v), depth-1)
}
