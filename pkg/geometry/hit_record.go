package geometry

import (
	"math"

	"github.com/df07/go-box-raycaster/pkg/core"
	"github.com/df07/go-box-raycaster/pkg/material"
)

// OriginBias is how far secondary rays start from the surface they leave
const OriginBias = 1e-4

// HitRecord contains information about a ray-box intersection
type HitRecord struct {
	Point          core.Vec3          // Point of intersection
	Normal         core.Vec3          // Outward unit normal of the hit face
	Distance       float64            // Ray parameter; +Inf when nothing was hit
	Material       *material.Material // Material of the hit box
	U, V           float64            // Surface coordinates on the hit face
	IsIntersecting bool
}

// EmptyHit returns the record used before a search and for misses
func EmptyHit() HitRecord {
	return HitRecord{Distance: math.Inf(1)}
}

// OffsetOrigin nudges the hit point off the surface on the side the new ray travels,
// so it does not immediately re-hit the face it starts on.
func (h HitRecord) OffsetOrigin(direction core.Vec3) core.Vec3 {
	offset := h.Normal.Multiply(OriginBias)
	if direction.Dot(h.Normal) < 0 {
		return h.Point.Subtract(offset)
	}
	return h.Point.Add(offset)
}
