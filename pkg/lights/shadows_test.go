package lights

import (
	"math"
	"testing"

	"github.com/df07/go-box-raycaster/pkg/core"
	"github.com/df07/go-box-raycaster/pkg/geometry"
	"github.com/df07/go-box-raycaster/pkg/material"
)

func floorHit() geometry.HitRecord {
	return geometry.HitRecord{
		Point:          core.NewVec3(0, 0, 0),
		Normal:         core.NewVec3(0, 1, 0),
		Distance:       1,
		IsIntersecting: true,
	}
}

func overheadLight() Light {
	return NewLight(core.NewVec3(0, 10, 0), core.NewVec3(1, 1, 1), 1)
}

func opaque() *material.Material {
	return material.NewSolid(core.NewVec3(0.5, 0.5, 0.5), 1, material.Albedo{0.9, 0.1, 0, 0}, 1)
}

func glass(kt float64) *material.Material {
	return material.NewSolid(core.NewVec3(0.8, 0.9, 1), 50, material.Albedo{0.2, 0.1, 0.1, kt}, 1.5)
}

// slab spans y in [lo, hi] directly above the floor hit
func slab(lo, hi float64, mat *material.Material) *geometry.AxisAlignedBox {
	return geometry.NewAxisAlignedBox(core.NewVec3(-1, lo, -1), core.NewVec3(1, hi, 1), mat)
}

func expectedFalloff(occluderY float64) float64 {
	d := occluderY - geometry.OriginBias
	ratio := d / 10
	return 1 - ratio*ratio
}

func TestOpacityAwareShadows(t *testing.T) {
	tests := []struct {
		name      string
		occluders []*geometry.AxisAlignedBox
		expected  float64
	}{
		{"No occluders", nil, 0},
		{"Opaque occluder blocks fully", []*geometry.AxisAlignedBox{slab(4, 5, opaque())}, 1},
		{"Opaque occluder near the light still blocks fully", []*geometry.AxisAlignedBox{slab(9, 9.5, opaque())}, 1},
		{"Occluder beyond the light", []*geometry.AxisAlignedBox{slab(11, 12, opaque())}, 0},
		{"Occluder beside the path", []*geometry.AxisAlignedBox{
			geometry.NewAxisAlignedBox(core.NewVec3(2, 4, 2), core.NewVec3(3, 5, 3), opaque()),
		}, 0},
		{"Non-casting occluder ignored", []*geometry.AxisAlignedBox{slab(4, 5, opaque()).WithoutShadow()}, 0},
		{"Transparent occluder attenuates", []*geometry.AxisAlignedBox{slab(4, 5, glass(0.6))}, 0.4 * expectedFalloff(4)},
		{"Transparent occluders accumulate", []*geometry.AxisAlignedBox{
			slab(2, 3, glass(0.6)),
			slab(4, 5, glass(0.5)),
		}, 0.4*expectedFalloff(2) + 0.5*expectedFalloff(4)},
		{"Accumulation clamps to one", []*geometry.AxisAlignedBox{
			slab(1, 1.5, glass(0.01)),
			slab(2, 2.5, glass(0.01)),
		}, 1},
		{"Opaque after transparent still blocks", []*geometry.AxisAlignedBox{
			slab(2, 3, glass(0.6)),
			slab(4, 5, opaque()),
		}, 1},
	}

	policy := OpacityAwareShadows{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := policy.ShadowFactor(floorHit(), overheadLight(), tt.occluders)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Expected shadow %v, got %v", tt.expected, got)
			}
			if got < 0 || got > 1 {
				t.Errorf("Shadow factor %v outside [0,1]", got)
			}
		})
	}
}

func TestDistanceFalloffShadows(t *testing.T) {
	tests := []struct {
		name      string
		occluders []*geometry.AxisAlignedBox
		expected  float64
	}{
		{"No occluders", nil, 0},
		{"Opaque occluder fades with distance", []*geometry.AxisAlignedBox{slab(4, 5, opaque())}, expectedFalloff(4)},
		{"Glass treated like any occluder", []*geometry.AxisAlignedBox{slab(4, 5, glass(0.9))}, expectedFalloff(4)},
		{"First occluder in scene order wins", []*geometry.AxisAlignedBox{
			slab(6, 7, opaque()),
			slab(2, 3, opaque()),
		}, expectedFalloff(6)},
		{"Non-casting occluder ignored", []*geometry.AxisAlignedBox{slab(4, 5, opaque()).WithoutShadow()}, 0},
	}

	policy := DistanceFalloffShadows{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := policy.ShadowFactor(floorHit(), overheadLight(), tt.occluders)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Expected shadow %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestParseShadowPolicy(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    string
		expectError bool
	}{
		{"default", "", "opacity", false},
		{"opacity", "opacity", "opacity", false},
		{"falloff", "falloff", "falloff", false},
		{"unknown", "soft", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			policy, err := ParseShadowPolicy(tt.input)
			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if policy.Name() != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, policy.Name())
			}
		})
	}
}

func TestLight_Sample(t *testing.T) {
	light := NewLight(core.NewVec3(0, 3, 4), core.NewVec3(1, 1, 1), 1)
	sample := light.Sample(core.NewVec3(0, 0, 0))
	if math.Abs(sample.Distance-5) > 1e-12 {
		t.Errorf("Expected distance 5, got %v", sample.Distance)
	}
	if math.Abs(sample.Direction.Length()-1) > 1e-12 {
		t.Errorf("Expected unit direction, got %v", sample.Direction)
	}
}
