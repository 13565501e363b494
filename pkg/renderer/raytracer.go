package renderer

import (
	"math"

	"github.com/df07/go-box-raycaster/pkg/core"
	"github.com/df07/go-box-raycaster/pkg/geometry"
	"github.com/df07/go-box-raycaster/pkg/lights"
)

// MaxRecursionDepth is the deepest recursion level a render may be configured with
const MaxRecursionDepth = 3

// Config contains rendering configuration
type Config struct {
	MaxDepth   int                 // Deepest recursion level that still traces (1..MaxRecursionDepth, 0 = default)
	NumWorkers int                 // Number of parallel workers (0 = use CPU count)
	TileSize   int                 // Size of each square tile in pixels
	Shadows    lights.ShadowPolicy // Shadow strategy; nil means opacity-aware
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		MaxDepth:   MaxRecursionDepth,
		NumWorkers: 0,
		TileSize:   32,
		Shadows:    lights.OpacityAwareShadows{},
	}
}

// Scene interface to avoid circular imports
type Scene interface {
	GetBoxes() []*geometry.AxisAlignedBox
	GetLights() []lights.Light
	GetBackground() core.Vec3
	GetCamera() *geometry.Camera
}

// Raytracer casts rays through a read-only scene. It holds no per-ray state,
// so one instance can be shared by every worker.
type Raytracer struct {
	scene  Scene
	config Config
	logger core.Logger
}

// NewRaytracer creates a new raytracer
func NewRaytracer(scene Scene, config Config) *Raytracer {
	if config.Shadows == nil {
		config.Shadows = lights.OpacityAwareShadows{}
	}
	if config.MaxDepth <= 0 || config.MaxDepth > MaxRecursionDepth {
		config.MaxDepth = MaxRecursionDepth
	}
	if config.TileSize <= 0 {
		config.TileSize = DefaultConfig().TileSize
	}
	return &Raytracer{
		scene:  scene,
		config: config,
	}
}

// SetLogger sets the logger used for render summaries; nil disables logging
func (rt *Raytracer) SetLogger(logger core.Logger) {
	rt.logger = logger
}

// Config returns the active configuration
func (rt *Raytracer) Config() Config {
	return rt.config
}

// CastRay returns the color seen along a ray. Depth counts recursion levels from 0
// for primary rays.
func (rt *Raytracer) CastRay(origin, direction core.Vec3, depth int) core.Vec3 {
	background := rt.scene.GetBackground()
	if depth > rt.config.MaxDepth {
		return background
	}

	hit := rt.nearestHit(origin, direction)
	if !hit.IsIntersecting {
		return background
	}

	local := rt.shade(hit, origin)

	albedo := hit.Material.Albedo
	reflectivity := albedo.Reflective()
	transparency := albedo.Transmissive()

	var reflectColor core.Vec3
	if reflectivity > 0 {
		reflectDir := Reflect(direction, hit.Normal).Normalize()
		reflectOrigin := hit.OffsetOrigin(reflectDir)
		reflectColor = rt.CastRay(reflectOrigin, reflectDir, depth+1)
	}

	var refractColor core.Vec3
	if transparency > 0 {
		refractDir := Refract(direction, hit.Normal, hit.Material.RefractiveIndex).Normalize()
		refractOrigin := hit.OffsetOrigin(refractDir)
		refractColor = rt.CastRay(refractOrigin, refractDir, depth+1)
	}

	// The local weight goes negative when kr+kt > 1; scene validation reports such materials
	return local.Multiply(1 - reflectivity - transparency).
		Add(reflectColor.Multiply(reflectivity)).
		Add(refractColor.Multiply(transparency))
}

// nearestHit searches every box; on equal distance the earlier box wins
func (rt *Raytracer) nearestHit(origin, direction core.Vec3) geometry.HitRecord {
	closest := geometry.EmptyHit()
	for _, box := range rt.scene.GetBoxes() {
		hit := box.Intersect(origin, direction)
		if hit.IsIntersecting && hit.Distance < closest.Distance {
			closest = hit
		}
	}
	return closest
}

// shade sums diffuse and specular light from every light, then adds emission
func (rt *Raytracer) shade(hit geometry.HitRecord, viewOrigin core.Vec3) core.Vec3 {
	mat := hit.Material
	albedo := mat.Albedo
	normal := mat.PerturbNormal(hit.Normal, hit.U, hit.V)
	viewDir := viewOrigin.Subtract(hit.Point).Normalize()
	diffuseColor := mat.DiffuseColor(hit.U, hit.V)
	boxes := rt.scene.GetBoxes()

	var color core.Vec3
	for _, light := range rt.scene.GetLights() {
		lightDir := light.Sample(hit.Point).Direction
		reflectDir := Reflect(lightDir.Negate(), normal).Normalize()

		shadow := rt.config.Shadows.ShadowFactor(hit, light, boxes)
		intensity := light.Intensity * (1 - shadow)

		diffuseIntensity := max(0, min(1, normal.Dot(lightDir)))
		diffuse := diffuseColor.Multiply(albedo.Diffuse() * diffuseIntensity * intensity)

		specularIntensity := math.Pow(max(0, viewDir.Dot(reflectDir)), mat.Shininess)
		specular := light.Color.Multiply(albedo.Specular() * specularIntensity * intensity)

		color = color.Add(diffuse).Add(specular)
	}

	if emission, ok := mat.EmissionColor(hit.U, hit.V); ok {
		color = color.Add(emission)
	}
	return color
}

// Reflect mirrors incident about normal: R = I - 2(I·N)N
func Reflect(incident, normal core.Vec3) core.Vec3 {
	return incident.Subtract(normal.Multiply(2 * incident.Dot(normal)))
}

// Refract bends incident through a surface with refractive index etaT using Snell's law.
// A negative cosine selects the 1/etaT ratio and the flipped normal; otherwise etaT and
// the normal as given. When no transmitted ray exists it reflects about that normal instead.
func Refract(incident, normal core.Vec3, etaT float64) core.Vec3 {
	cosI := -max(-1, min(1, incident.Dot(normal)))

	var eta float64
	var n core.Vec3
	if cosI < 0 {
		cosI = -cosI
		eta = 1 / etaT
		n = normal.Negate()
	} else {
		eta = etaT
		n = normal
	}

	k := 1 - eta*eta*(1-cosI*cosI)
	if k < 0 {
		return Reflect(incident, n)
	}
	return incident.Multiply(eta).Add(n.Multiply(eta*cosI - math.Sqrt(k)))
}
