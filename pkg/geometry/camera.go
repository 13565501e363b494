package geometry

import (
	"math"

	"github.com/df07/go-box-raycaster/pkg/core"
)

// CameraConfig describes a pinhole camera looking from Eye toward Center
type CameraConfig struct {
	Eye    core.Vec3
	Center core.Vec3
	Up     core.Vec3
	FOV    float64 // Vertical field of view in radians; 0 means π/3
	Width  int     // Image width in pixels
	Height int     // Image height in pixels
}

// Camera turns pixel coordinates into world-space primary rays
type Camera struct {
	config  CameraConfig
	forward core.Vec3
	right   core.Vec3
	up      core.Vec3
	scale   float64 // tan(fov/2)
	aspect  float64
}

// NewCamera creates a camera from its configuration
func NewCamera(config CameraConfig) *Camera {
	if config.FOV <= 0 {
		config.FOV = math.Pi / 3
	}
	if config.Up.LengthSquared() == 0 {
		config.Up = core.NewVec3(0, 1, 0)
	}

	c := &Camera{
		config: config,
		scale:  math.Tan(config.FOV * 0.5),
		aspect: 1,
	}
	if config.Height > 0 {
		c.aspect = float64(config.Width) / float64(config.Height)
	}
	c.updateBasis()
	return c
}

// updateBasis rebuilds the orthonormal frame from eye, center and up
func (c *Camera) updateBasis() {
	c.forward = c.config.Center.Subtract(c.config.Eye).Normalize()

	right := c.forward.Cross(c.config.Up)
	if right.LengthSquared() < 1e-12 {
		// Looking along the up vector; any horizontal right will do
		right = c.forward.Cross(core.NewVec3(0, 0, -1))
		if right.LengthSquared() < 1e-12 {
			right = core.NewVec3(1, 0, 0)
		}
	}
	c.right = right.Normalize()
	c.up = c.right.Cross(c.forward).Normalize()
}

// Config returns the camera's current configuration
func (c *Camera) Config() CameraConfig {
	return c.config
}

// Eye returns the camera position
func (c *Camera) Eye() core.Vec3 {
	return c.config.Eye
}

// GetRay generates the primary ray through pixel (x, y), with y=0 the top row
func (c *Camera) GetRay(x, y int) core.Ray {
	width := float64(max(c.config.Width, 1))
	height := float64(max(c.config.Height, 1))

	screenX := (2*float64(x)/width - 1) * c.aspect * c.scale
	screenY := -(2*float64(y)/height - 1) * c.scale

	local := core.NewVec3(screenX, screenY, -1).Normalize()
	return core.NewRay(c.config.Eye, c.basisChange(local))
}

// basisChange maps a camera-space direction (looking down -Z) into world space
func (c *Camera) basisChange(d core.Vec3) core.Vec3 {
	return c.right.Multiply(d.X).
		Add(c.up.Multiply(d.Y)).
		Subtract(c.forward.Multiply(d.Z)).
		Normalize()
}

// Orbit swings the eye around the center by yaw and pitch (radians), keeping the distance.
// Pitch is clamped short of the poles.
func (c *Camera) Orbit(deltaYaw, deltaPitch float64) {
	offset := c.config.Eye.Subtract(c.config.Center)
	radius := offset.Length()
	if radius == 0 {
		return
	}

	yaw := math.Atan2(offset.Z, offset.X) + deltaYaw
	pitch := math.Asin(max(-1, min(1, offset.Y/radius))) + deltaPitch
	const limit = math.Pi/2 - 0.1
	pitch = max(-limit, min(limit, pitch))

	c.config.Eye = c.config.Center.Add(core.NewVec3(
		radius*math.Cos(pitch)*math.Cos(yaw),
		radius*math.Sin(pitch),
		radius*math.Cos(pitch)*math.Sin(yaw),
	))
	c.updateBasis()
}

// Zoom moves the eye toward the center by delta, stopping short of it
func (c *Camera) Zoom(delta float64) {
	offset := c.config.Eye.Subtract(c.config.Center)
	distance := offset.Length()
	if distance == 0 {
		return
	}
	newDistance := max(0.1, distance-delta)
	c.config.Eye = c.config.Center.Add(offset.Multiply(newDistance / distance))
	c.updateBasis()
}

// MergeCameraConfig returns base with every non-zero field of override applied
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	zero := core.Vec3{}
	if override.Eye != zero {
		result.Eye = override.Eye
	}
	if override.Center != zero {
		result.Center = override.Center
	}
	if override.Up != zero {
		result.Up = override.Up
	}
	if override.FOV != 0 {
		result.FOV = override.FOV
	}
	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.Height != 0 {
		result.Height = override.Height
	}
	return result
}
