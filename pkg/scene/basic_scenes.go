package scene

import (
	"github.com/df07/go-box-raycaster/pkg/core"
	"github.com/df07/go-box-raycaster/pkg/geometry"
	"github.com/df07/go-box-raycaster/pkg/material"
)

// mergeCamera applies the first override, if any, to the default camera
func mergeCamera(defaults geometry.CameraConfig, overrides []geometry.CameraConfig) geometry.CameraConfig {
	if len(overrides) > 0 {
		return geometry.MergeCameraConfig(defaults, overrides[0])
	}
	return defaults
}

// NewSingleBoxScene creates a unit box at the origin lit from above and seen from straight above
func NewSingleBoxScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	cameraConfig := mergeCamera(geometry.CameraConfig{
		Eye:    core.NewVec3(0, 5, 0),
		Center: core.NewVec3(0, 0, 0),
		Up:     core.NewVec3(0, 1, 0),
		Width:  400,
		Height: 400,
	}, cameraOverrides)

	s := newScene(cameraConfig)
	red := material.NewSolid(core.RGB(200, 40, 40), 0, material.Albedo{1, 0, 0, 0}, 1)
	s.AddBox(geometry.NewCube(core.NewVec3(0, 0, 0), 1, red))
	s.AddLight(core.NewVec3(2, 4, 0), core.NewVec3(1, 1, 1), 1)
	return s
}

// NewStackedShadowScene places two stacked opaque boxes between a light and a tall distant box,
// so the distant box's lit face carries a hard shadow on its lower half
func NewStackedShadowScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	cameraConfig := mergeCamera(geometry.CameraConfig{
		Eye:    core.NewVec3(-2, 3, 10),
		Center: core.NewVec3(2, 0, 0),
		Up:     core.NewVec3(0, 1, 0),
		Width:  400,
		Height: 300,
	}, cameraOverrides)

	s := newScene(cameraConfig)
	stone := material.NewSolid(core.RGB(120, 120, 130), 10, material.Albedo{0.9, 0.1, 0, 0}, 1)
	plaster := material.NewSolid(core.RGB(230, 220, 200), 5, material.Albedo{0.95, 0.05, 0, 0}, 1)

	// Lower box, then a smaller one stacked on it
	s.AddBox(geometry.NewAxisAlignedBox(core.NewVec3(-3, -3, -3), core.NewVec3(-2, 0.5, 3), stone))
	s.AddBox(geometry.NewAxisAlignedBox(core.NewVec3(-3, 0.5, -0.5), core.NewVec3(-2, 1, 0.5), stone))
	// Distant box whose -X face looks at the light
	s.AddBox(geometry.NewAxisAlignedBox(core.NewVec3(3, -3, -1), core.NewVec3(4, 3, 1), plaster))

	s.AddLight(core.NewVec3(-6, 1, 0), core.NewVec3(1, 1, 1), 1)
	return s
}

// NewGlassScene shows reflection, refraction and emission: a glass block and a mirror
// on a floor, with a glowing block behind the glass
func NewGlassScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	cameraConfig := mergeCamera(geometry.CameraConfig{
		Eye:    core.NewVec3(0, 2.5, 6),
		Center: core.NewVec3(0, 0.5, 0),
		Up:     core.NewVec3(0, 1, 0),
		Width:  400,
		Height: 300,
	}, cameraOverrides)

	s := newScene(cameraConfig)
	floor := material.NewSolid(core.RGB(180, 180, 170), 10, material.Albedo{0.9, 0.1, 0, 0}, 1)
	glass := material.NewSolid(core.RGB(220, 240, 255), 125, material.Albedo{0.3, 0.5, 0.1, 0.6}, 1.5)
	mirror := material.NewSolid(core.RGB(255, 255, 255), 1425, material.Albedo{0.0, 0.8, 0.8, 0}, 1)
	red := material.NewSolid(core.RGB(200, 40, 40), 20, material.Albedo{0.9, 0.1, 0, 0}, 1)
	glow := material.NewEmissiveColor(core.RGB(255, 180, 80), core.RGB(238, 163, 79).Multiply(0.5), 1, material.Albedo{0.9, 0.1, 0, 0})

	s.AddBox(geometry.NewAxisAlignedBox(core.NewVec3(-4, -0.5, -4), core.NewVec3(4, 0, 4), floor))
	s.AddBox(geometry.NewAxisAlignedBox(core.NewVec3(-0.75, 0, -0.25), core.NewVec3(0.75, 1.5, 0.25), glass)).WithoutShadow()
	s.AddBox(geometry.NewAxisAlignedBox(core.NewVec3(-3, 0, -2.5), core.NewVec3(-1.5, 2.5, -2.3), mirror))
	s.AddBox(geometry.NewCube(core.NewVec3(0.2, 0.5, -1.5), 1, red))
	s.AddBox(geometry.NewCube(core.NewVec3(2, 0.25, -0.5), 0.5, glow))

	s.AddLight(core.NewVec3(3, 6, 5), core.NewVec3(1, 1, 1), 1)
	s.AddLight(core.NewVec3(2, 0.8, -0.5), core.RGB(238, 163, 79), 0.4)
	return s
}
