package material

import (
	"math"

	"github.com/df07/go-box-raycaster/pkg/core"
)

// Albedo weights the shading terms: diffuse, specular, reflective, transmissive.
type Albedo [4]float64

// Diffuse returns kd
func (a Albedo) Diffuse() float64 { return a[0] }

// Specular returns ks
func (a Albedo) Specular() float64 { return a[1] }

// Reflective returns kr
func (a Albedo) Reflective() float64 { return a[2] }

// Transmissive returns kt
func (a Albedo) Transmissive() float64 { return a[3] }

// Material describes the appearance and optical properties of a surface
type Material struct {
	Appearance      Appearance
	Shininess       float64 // Specular exponent
	Albedo          Albedo
	RefractiveIndex float64 // Only meaningful when Albedo.Transmissive() > 0
}

// NewSolid creates a material with a uniform diffuse color
func NewSolid(color core.Vec3, shininess float64, albedo Albedo, refractiveIndex float64) *Material {
	return &Material{
		Appearance:      Solid{Color: color},
		Shininess:       shininess,
		Albedo:          albedo,
		RefractiveIndex: refractiveIndex,
	}
}

// NewTextured creates a material whose diffuse color is sampled from texture.
// The fallback color is white, matching an untextured surface under a white light.
func NewTextured(texture *ImageTexture, shininess float64, albedo Albedo, refractiveIndex float64) *Material {
	return &Material{
		Appearance:      Textured{Texture: texture, Fallback: core.NewVec3(1, 1, 1)},
		Shininess:       shininess,
		Albedo:          albedo,
		RefractiveIndex: refractiveIndex,
	}
}

// NewEmissiveTexture creates a textured material that also emits its texels scaled by strength
func NewEmissiveTexture(texture *ImageTexture, shininess float64, albedo Albedo, refractiveIndex float64, emission core.Vec3, strength float64) *Material {
	return &Material{
		Appearance: Emissive{
			Texture:  texture,
			Fallback: core.NewVec3(1, 1, 1),
			Color:    emission,
			Strength: strength,
		},
		Shininess:       shininess,
		Albedo:          albedo,
		RefractiveIndex: refractiveIndex,
	}
}

// NewEmissiveColor creates a solid material that emits a fixed color
func NewEmissiveColor(color, emission core.Vec3, shininess float64, albedo Albedo) *Material {
	return &Material{
		Appearance:      Emissive{Fallback: color, Color: emission},
		Shininess:       shininess,
		Albedo:          albedo,
		RefractiveIndex: 1.0,
	}
}

// Black returns a material that contributes nothing
func Black() *Material {
	return &Material{Appearance: Solid{}}
}

// DiffuseColor returns the surface color at (u, v)
func (m *Material) DiffuseColor(u, v float64) core.Vec3 {
	if m.Appearance == nil {
		return core.Vec3{}
	}
	return m.Appearance.diffuse(u, v)
}

// EmissionColor returns the emitted color at (u, v) and whether the surface emits at all
func (m *Material) EmissionColor(u, v float64) (core.Vec3, bool) {
	if m.Appearance == nil {
		return core.Vec3{}, false
	}
	return m.Appearance.emission(u, v)
}

// PerturbNormal applies the normal map, if any, to the geometric normal n.
// Texels decode as tangent-space (2r-1, 2g-1, b) with T along u and B along v.
func (m *Material) PerturbNormal(n core.Vec3, u, v float64) core.Vec3 {
	if m.Appearance == nil {
		return n
	}
	texel, ok := m.Appearance.normalMap().Sample(u, v)
	if !ok {
		return n
	}

	local := core.NewVec3(texel.X*2-1, texel.Y*2-1, texel.Z).Normalize()
	tangent, bitangent := tangentFrame(n)
	perturbed := tangent.Multiply(local.X).
		Add(bitangent.Multiply(local.Y)).
		Add(n.Multiply(local.Z)).
		Normalize()
	if perturbed.LengthSquared() == 0 {
		return n
	}
	return perturbed
}

// EnergyExceedsUnity reports whether kr+kt > 1, which drives the local shading weight negative
func (m *Material) EnergyExceedsUnity() bool {
	return m.Albedo.Reflective()+m.Albedo.Transmissive() > 1
}

// tangentFrame returns the directions of increasing u and v for a box face with normal n
func tangentFrame(n core.Vec3) (core.Vec3, core.Vec3) {
	ax, ay, az := math.Abs(n.X), math.Abs(n.Y), math.Abs(n.Z)
	switch {
	case ax >= ay && ax >= az:
		return core.NewVec3(0, 0, 1), core.NewVec3(0, 1, 0)
	case ay >= az:
		return core.NewVec3(1, 0, 0), core.NewVec3(0, 0, 1)
	default:
		return core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0)
	}
}
