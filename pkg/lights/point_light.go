package lights

import (
	"github.com/df07/go-box-raycaster/pkg/core"
)

// Light is a point light. The renderer treats it as read-only; only the scene
// builder moves it, and only between renders.
type Light struct {
	Position  core.Vec3
	Color     core.Vec3
	Intensity float64
}

// NewLight creates a point light
func NewLight(position, color core.Vec3, intensity float64) Light {
	return Light{Position: position, Color: color, Intensity: intensity}
}

// Sample returns the direction and distance from point to the light
func (l Light) Sample(point core.Vec3) LightSample {
	toLight := l.Position.Subtract(point)
	return LightSample{
		Direction: toLight.Normalize(),
		Distance:  toLight.Length(),
	}
}
