package lights

import (
	"github.com/df07/go-box-raycaster/pkg/core"
	"github.com/df07/go-box-raycaster/pkg/geometry"
)

// ShadowPolicy decides how much of a light is blocked at a hit point.
// ShadowFactor returns a value in [0, 1] where 1 means fully occluded.
type ShadowPolicy interface {
	ShadowFactor(hit geometry.HitRecord, light Light, occluders []*geometry.AxisAlignedBox) float64
	Name() string
}

// LightSample contains the direction and distance from a shading point to a light
type LightSample struct {
	Direction core.Vec3 // Unit direction from shading point to light
	Distance  float64   // Distance to light
}
