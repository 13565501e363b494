package scene

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-box-raycaster/pkg/core"
	"github.com/df07/go-box-raycaster/pkg/geometry"
	"github.com/df07/go-box-raycaster/pkg/lights"
	"github.com/df07/go-box-raycaster/pkg/material"
)

// SkyColor is the background seen by rays that escape the scene
var SkyColor = core.RGB(68, 142, 255)

// Scene contains all the elements needed for rendering
type Scene struct {
	Camera       *geometry.Camera
	Boxes        []*geometry.AxisAlignedBox // Objects in the scene; order only breaks distance ties
	Lights       []lights.Light             // Lights in the scene
	Background   core.Vec3
	CameraConfig geometry.CameraConfig
	SunIndex     int // Index into Lights of the orbiting sun, or -1
}

// newScene creates an empty scene with the given camera
func newScene(cameraConfig geometry.CameraConfig) *Scene {
	return &Scene{
		Camera:       geometry.NewCamera(cameraConfig),
		Boxes:        make([]*geometry.AxisAlignedBox, 0),
		Lights:       make([]lights.Light, 0),
		Background:   SkyColor,
		CameraConfig: cameraConfig,
		SunIndex:     -1,
	}
}

// GetBoxes returns the boxes in the scene
func (s *Scene) GetBoxes() []*geometry.AxisAlignedBox { return s.Boxes }

// GetLights returns the lights in the scene
func (s *Scene) GetLights() []lights.Light { return s.Lights }

// GetBackground returns the background color
func (s *Scene) GetBackground() core.Vec3 { return s.Background }

// GetCamera returns the camera
func (s *Scene) GetCamera() *geometry.Camera { return s.Camera }

// AddBox appends a box and returns it for further configuration
func (s *Scene) AddBox(box *geometry.AxisAlignedBox) *geometry.AxisAlignedBox {
	s.Boxes = append(s.Boxes, box)
	return box
}

// AddLight appends a point light
func (s *Scene) AddLight(position, color core.Vec3, intensity float64) {
	s.Lights = append(s.Lights, lights.NewLight(position, color, intensity))
}

// SunPosition returns where the orbiting sun sits at time t (radians along its orbit)
func SunPosition(t float64) core.Vec3 {
	const radius = 15.0
	return core.NewVec3(radius*math.Cos(t), radius*math.Sin(t), 10)
}

// OrbitSun moves the sun to its position at time t. Call only between renders.
func (s *Scene) OrbitSun(t float64) {
	if s.SunIndex < 0 || s.SunIndex >= len(s.Lights) {
		return
	}
	s.Lights[s.SunIndex].Position = SunPosition(t)
}

// Validate checks the scene before rendering. It returns an error for data the
// renderer cannot handle and warnings for data it renders but likely not as intended.
func (s *Scene) Validate() ([]string, error) {
	var errs []error
	var warnings []string

	if s.Camera == nil {
		errs = append(errs, errors.New("scene has no camera"))
	}

	flagged := make(map[*material.Material]bool)
	for i, box := range s.Boxes {
		if box == nil {
			errs = append(errs, fmt.Errorf("box %d is nil", i))
			continue
		}
		if !box.IsValid() {
			errs = append(errs, fmt.Errorf("box %d has min %v greater than max %v", i, box.Min, box.Max))
		}
		mat := box.Material
		if mat == nil {
			errs = append(errs, fmt.Errorf("box %d has no material", i))
			continue
		}
		if flagged[mat] {
			continue
		}
		flagged[mat] = true

		for j, w := range mat.Albedo {
			if w < 0 {
				errs = append(errs, fmt.Errorf("box %d has negative albedo weight %d: %v", i, j, w))
			}
		}
		if mat.Shininess < 0 {
			errs = append(errs, fmt.Errorf("box %d has negative shininess %v", i, mat.Shininess))
		}
		if mat.Albedo.Transmissive() > 0 && mat.RefractiveIndex <= 0 {
			errs = append(errs, fmt.Errorf("box %d is transmissive but has refractive index %v", i, mat.RefractiveIndex))
		}
		if mat.EnergyExceedsUnity() {
			warnings = append(warnings, fmt.Sprintf("box %d: reflective+transmissive weight %.2f exceeds 1, local shading is weighted negatively",
				i, mat.Albedo.Reflective()+mat.Albedo.Transmissive()))
		}
		if textured, ok := mat.Appearance.(material.Textured); ok && textured.Texture == nil {
			warnings = append(warnings, fmt.Sprintf("box %d: textured material has no texture, using solid fallback", i))
		}
	}

	for i, light := range s.Lights {
		if light.Intensity < 0 {
			errs = append(errs, fmt.Errorf("light %d has negative intensity %v", i, light.Intensity))
		}
	}

	return warnings, errors.Join(errs...)
}
