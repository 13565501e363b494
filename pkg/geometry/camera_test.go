package geometry

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/df07/go-box-raycaster/pkg/core"
)

func TestCamera_CenterRayLooksAtCenter(t *testing.T) {
	tests := []struct {
		name   string
		config CameraConfig
	}{
		{"Looking down -Z", CameraConfig{Eye: core.NewVec3(0, 0, 5), Center: core.NewVec3(0, 0, 0), Width: 64, Height: 48}},
		{"Looking straight down", CameraConfig{Eye: core.NewVec3(0, 5, 0), Center: core.NewVec3(0, 0, 0), Up: core.NewVec3(0, 1, 0), Width: 32, Height: 32}},
		{"Oblique", CameraConfig{Eye: core.NewVec3(3, 4, 5), Center: core.NewVec3(1, 0, -1), Up: core.NewVec3(0, 1, 0), Width: 100, Height: 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			camera := NewCamera(tt.config)
			ray := camera.GetRay(tt.config.Width/2, tt.config.Height/2)

			want := tt.config.Center.Subtract(tt.config.Eye).Normalize()
			if diff := cmp.Diff(want, ray.Direction, approx); diff != "" {
				t.Errorf("Center ray direction mismatch (-want +got):\n%s", diff)
			}
			if ray.Origin != tt.config.Eye {
				t.Errorf("Expected ray origin %v, got %v", tt.config.Eye, ray.Origin)
			}
		})
	}
}

func TestCamera_ScreenOrientation(t *testing.T) {
	camera := NewCamera(CameraConfig{
		Eye:    core.NewVec3(0, 0, 5),
		Center: core.NewVec3(0, 0, 0),
		Up:     core.NewVec3(0, 1, 0),
		Width:  10,
		Height: 10,
	})

	topLeft := camera.GetRay(0, 0).Direction
	if topLeft.X >= 0 || topLeft.Y <= 0 {
		t.Errorf("Top-left pixel should look left and up, got %v", topLeft)
	}

	bottomRight := camera.GetRay(9, 9).Direction
	if bottomRight.X <= 0 || bottomRight.Y >= 0 {
		t.Errorf("Bottom-right pixel should look right and down, got %v", bottomRight)
	}

	// tan(fov/2) with the default π/3 field of view
	edge := camera.GetRay(5, 0).Direction
	want := math.Tan(math.Pi / 6)
	if got := edge.Y / -edge.Z; math.Abs(got-want) > 1e-9 {
		t.Errorf("Expected top edge slope %v, got %v", want, got)
	}
}

func TestCamera_Orbit(t *testing.T) {
	camera := NewCamera(CameraConfig{
		Eye:    core.NewVec3(0, 0, 5),
		Center: core.NewVec3(0, 0, 0),
		Up:     core.NewVec3(0, 1, 0),
		Width:  8,
		Height: 8,
	})

	camera.Orbit(math.Pi/2, 0)
	eye := camera.Eye()
	if math.Abs(eye.Length()-5) > 1e-9 {
		t.Errorf("Orbit should preserve distance, got %v", eye.Length())
	}
	if diff := cmp.Diff(core.NewVec3(-5, 0, 0), eye, approx); diff != "" {
		t.Errorf("Unexpected eye after orbit (-want +got):\n%s", diff)
	}

	// Still looking at the center
	ray := camera.GetRay(4, 4)
	if diff := cmp.Diff(core.NewVec3(1, 0, 0), ray.Direction, approx); diff != "" {
		t.Errorf("Orbited camera lost its target (-want +got):\n%s", diff)
	}

	// Pitch clamps short of the pole
	camera.Orbit(0, math.Pi)
	if camera.Eye().Y >= 5 {
		t.Errorf("Pitch should clamp below the pole, got eye %v", camera.Eye())
	}
}

func TestCamera_Zoom(t *testing.T) {
	camera := NewCamera(CameraConfig{
		Eye:    core.NewVec3(0, 0, 5),
		Center: core.NewVec3(0, 0, 0),
		Width:  8,
		Height: 8,
	})

	camera.Zoom(2)
	if diff := cmp.Diff(core.NewVec3(0, 0, 3), camera.Eye(), approx); diff != "" {
		t.Errorf("Unexpected eye after zoom (-want +got):\n%s", diff)
	}

	// Zooming past the center stops just in front of it
	camera.Zoom(10)
	if d := camera.Eye().Length(); math.Abs(d-0.1) > 1e-9 {
		t.Errorf("Expected eye to stop 0.1 from the center, got %v", d)
	}
}

func TestMergeCameraConfig(t *testing.T) {
	base := CameraConfig{
		Eye:    core.NewVec3(5, 5, 5),
		Center: core.NewVec3(0, 0, 0),
		Up:     core.NewVec3(0, 1, 0),
		Width:  800,
		Height: 600,
	}

	got := MergeCameraConfig(base, CameraConfig{Width: 200, Height: 100})
	want := base
	want.Width, want.Height = 200, 100
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("MergeCameraConfig mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff(base, MergeCameraConfig(base, CameraConfig{})); diff != "" {
		t.Errorf("Empty override should keep base (-want +got):\n%s", diff)
	}
}
