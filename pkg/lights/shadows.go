package lights

import (
	"fmt"

	"github.com/df07/go-box-raycaster/pkg/geometry"
)

// OpacityAwareShadows fully blocks light behind opaque boxes and lets transparent
// boxes dim it in proportion to their opacity and how close they sit to the surface.
type OpacityAwareShadows struct{}

// ShadowFactor implements ShadowPolicy
func (OpacityAwareShadows) ShadowFactor(hit geometry.HitRecord, light Light, occluders []*geometry.AxisAlignedBox) float64 {
	toLight := light.Sample(hit.Point)
	origin := hit.OffsetOrigin(toLight.Direction)

	shadow := 0.0
	for _, box := range occluders {
		if !box.CastsShadow {
			continue
		}
		occlusion := box.Intersect(origin, toLight.Direction)
		if !occlusion.IsIntersecting || occlusion.Distance >= toLight.Distance {
			continue
		}

		transparency := 0.0
		if box.Material != nil {
			transparency = box.Material.Albedo.Transmissive()
		}
		if transparency <= 0 {
			return 1.0
		}

		shadow += (1 - transparency) * falloff(occlusion.Distance, toLight.Distance)
	}

	return clamp01(shadow)
}

// Name implements ShadowPolicy
func (OpacityAwareShadows) Name() string { return "opacity" }

// DistanceFalloffShadows darkens by the first occluder found, whatever its material,
// and ignores any occluders after it.
type DistanceFalloffShadows struct{}

// ShadowFactor implements ShadowPolicy
func (DistanceFalloffShadows) ShadowFactor(hit geometry.HitRecord, light Light, occluders []*geometry.AxisAlignedBox) float64 {
	toLight := light.Sample(hit.Point)
	origin := hit.OffsetOrigin(toLight.Direction)

	for _, box := range occluders {
		if !box.CastsShadow {
			continue
		}
		occlusion := box.Intersect(origin, toLight.Direction)
		if occlusion.IsIntersecting && occlusion.Distance < toLight.Distance {
			return falloff(occlusion.Distance, toLight.Distance)
		}
	}
	return 0
}

// Name implements ShadowPolicy
func (DistanceFalloffShadows) Name() string { return "falloff" }

// ParseShadowPolicy returns the policy registered under name
func ParseShadowPolicy(name string) (ShadowPolicy, error) {
	switch name {
	case "", "opacity":
		return OpacityAwareShadows{}, nil
	case "falloff":
		return DistanceFalloffShadows{}, nil
	default:
		return nil, fmt.Errorf("unknown shadow policy %q (want \"opacity\" or \"falloff\")", name)
	}
}

// falloff is 1 for an occluder at the surface and fades to 0 as it approaches the light
func falloff(occluderDistance, lightDistance float64) float64 {
	ratio := occluderDistance / lightDistance
	return 1 - clamp01(ratio*ratio)
}

func clamp01(x float64) float64 {
	return max(0, min(1, x))
}
