package scene

import (
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/df07/go-box-raycaster/pkg/core"
	"github.com/df07/go-box-raycaster/pkg/geometry"
	"github.com/df07/go-box-raycaster/pkg/material"
)

func TestCreateScene(t *testing.T) {
	tests := []struct {
		name        string
		sceneType   string
		expectError bool
	}{
		{"single-box scene", "single-box", false},
		{"stacked-shadow scene", "stacked-shadow", false},
		{"glass scene", "glass", false},
		{"diorama scene", "diorama", false},
		{"unknown scene", "nonexistent", true},
		{"empty scene name", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := CreateScene(tt.sceneType, nil)
			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for scene type '%s', but got none", tt.sceneType)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error for scene type '%s': %v", tt.sceneType, err)
			}
			if len(s.Boxes) == 0 || len(s.Lights) == 0 {
				t.Errorf("Scene '%s' should have boxes and lights", tt.sceneType)
			}
			if _, err := s.Validate(); err != nil {
				t.Errorf("Built-in scene '%s' failed validation: %v", tt.sceneType, err)
			}
		})
	}
}

func TestCreateScene_CameraOverride(t *testing.T) {
	s, err := CreateScene("single-box", nil, geometry.CameraConfig{Width: 64, Height: 32})
	if err != nil {
		t.Fatal(err)
	}
	cfg := s.Camera.Config()
	if cfg.Width != 64 || cfg.Height != 32 {
		t.Errorf("Expected 64x32 camera, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Eye != core.NewVec3(0, 5, 0) {
		t.Errorf("Override should keep the default eye, got %v", cfg.Eye)
	}
}

func TestListScenes(t *testing.T) {
	var ids []string
	for _, info := range ListScenes() {
		ids = append(ids, info.ID)
	}
	want := []string{"diorama", "glass", "single-box", "stacked-shadow"}
	if diff := cmp.Diff(want, ids); diff != "" {
		t.Errorf("ListScenes mismatch (-want +got):\n%s", diff)
	}
}

func TestLookupScene(t *testing.T) {
	info, ok := LookupScene("diorama")
	if !ok || !info.Textured {
		t.Errorf("Expected the textured diorama, got %+v (found=%v)", info, ok)
	}
	if _, ok := LookupScene("nonexistent"); ok {
		t.Error("Expected unknown scene to be missing")
	}
}

func TestDioramaScene_Layout(t *testing.T) {
	s := NewDioramaScene(nil)

	// 36 ground tiles, 9 tree blocks, 18 wall blocks
	if len(s.Boxes) != 63 {
		t.Errorf("Expected 63 boxes, got %d", len(s.Boxes))
	}
	// Sun, two lava lights and the furnace light
	if len(s.Lights) != 4 {
		t.Errorf("Expected 4 lights, got %d", len(s.Lights))
	}

	nonCasting := 0
	for _, box := range s.Boxes {
		if !box.CastsShadow {
			nonCasting++
			if box.Material.Albedo.Transmissive() <= 0 {
				t.Errorf("Only glass should skip shadows, got albedo %v", box.Material.Albedo)
			}
		}
	}
	if nonCasting != 2 {
		t.Errorf("Expected 2 glass panes without shadows, got %d", nonCasting)
	}

	// Without textures every textured material is reported
	warnings, err := s.Validate()
	if err != nil {
		t.Fatalf("Unexpected validation error: %v", err)
	}
	if len(warnings) == 0 {
		t.Error("Expected missing-texture warnings")
	}
}

func TestDioramaScene_UsesTextures(t *testing.T) {
	dirt := material.NewImageTexture(1, 1, []core.Vec3{core.NewVec3(0.1, 0.2, 0.3)})
	s := NewDioramaScene(TextureSet{TextureDirt: dirt})

	// The first ground tile is dirt
	got := s.Boxes[0].Material.DiffuseColor(0.5, 0.5)
	if diff := cmp.Diff(core.NewVec3(0.1, 0.2, 0.3), got); diff != "" {
		t.Errorf("Dirt tile should sample its texture (-want +got):\n%s", diff)
	}
}

func TestScene_OrbitSun(t *testing.T) {
	s := NewDioramaScene(nil)
	before := s.Lights[1]

	s.OrbitSun(math.Pi / 2)
	if diff := cmp.Diff(core.NewVec3(0, 15, 10), s.Lights[0].Position, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("Unexpected sun position (-want +got):\n%s", diff)
	}
	if s.Lights[1] != before {
		t.Error("OrbitSun should only move the sun")
	}

	// Scenes without a sun are left alone
	single := NewSingleBoxScene()
	light := single.Lights[0]
	single.OrbitSun(1)
	if single.Lights[0] != light {
		t.Error("OrbitSun moved a light in a scene without a sun")
	}
}

func TestScene_Validate(t *testing.T) {
	solid := material.NewSolid(core.NewVec3(1, 1, 1), 1, material.Albedo{1, 0, 0, 0}, 1)
	hot := material.NewSolid(core.NewVec3(1, 1, 1), 1, material.Albedo{0, 0.2, 0.6, 0.6}, 1.5)
	noIndex := material.NewSolid(core.NewVec3(1, 1, 1), 1, material.Albedo{0.5, 0, 0, 0.5}, 0)

	tests := []struct {
		name         string
		mutate       func(s *Scene)
		wantErr      string
		wantWarnings int
	}{
		{"valid", func(s *Scene) {}, "", 0},
		{"inverted box", func(s *Scene) {
			s.Boxes = append(s.Boxes, &geometry.AxisAlignedBox{
				AABB:     core.AABB{Min: core.NewVec3(1, 1, 1), Max: core.NewVec3(0, 0, 0)},
				Material: solid,
			})
		}, "greater than max", 0},
		{"missing material", func(s *Scene) {
			s.AddBox(geometry.NewCube(core.NewVec3(3, 0, 0), 1, nil))
		}, "no material", 0},
		{"transmissive without index", func(s *Scene) {
			s.AddBox(geometry.NewCube(core.NewVec3(3, 0, 0), 1, noIndex))
		}, "refractive index", 0},
		{"negative light", func(s *Scene) {
			s.AddLight(core.NewVec3(0, 3, 0), core.NewVec3(1, 1, 1), -1)
		}, "negative intensity", 0},
		{"energy above unity warns once per material", func(s *Scene) {
			s.AddBox(geometry.NewCube(core.NewVec3(3, 0, 0), 1, hot))
			s.AddBox(geometry.NewCube(core.NewVec3(5, 0, 0), 1, hot))
		}, "", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSingleBoxScene()
			tt.mutate(s)

			warnings, err := s.Validate()
			if tt.wantErr == "" && err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if tt.wantErr != "" && (err == nil || !strings.Contains(err.Error(), tt.wantErr)) {
				t.Fatalf("Expected error containing %q, got %v", tt.wantErr, err)
			}
			if len(warnings) != tt.wantWarnings {
				t.Errorf("Expected %d warnings, got %v", tt.wantWarnings, warnings)
			}
		})
	}
}
