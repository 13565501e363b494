package geometry

import (
	"math"

	"github.com/df07/go-box-raycaster/pkg/core"
	"github.com/df07/go-box-raycaster/pkg/material"
)

// faceEpsilon is how close a hit point must be to a bound to count as on that face
const faceEpsilon = 1e-4

// AxisAlignedBox is a box whose faces are perpendicular to the world axes
type AxisAlignedBox struct {
	core.AABB
	Material    *material.Material // Shared, read-only during a render
	CastsShadow bool               // Whether the box participates in shadow queries
}

// NewAxisAlignedBox creates a shadow-casting box spanning two opposite corners
func NewAxisAlignedBox(a, b core.Vec3, mat *material.Material) *AxisAlignedBox {
	return &AxisAlignedBox{
		AABB:        core.NewAABB(a, b),
		Material:    mat,
		CastsShadow: true,
	}
}

// NewCube creates a cube with the given center and edge length
func NewCube(center core.Vec3, size float64, mat *material.Material) *AxisAlignedBox {
	half := core.NewVec3(size/2, size/2, size/2)
	return NewAxisAlignedBox(center.Subtract(half), center.Add(half), mat)
}

// WithoutShadow excludes the box from shadow queries and returns it
func (b *AxisAlignedBox) WithoutShadow() *AxisAlignedBox {
	b.CastsShadow = false
	return b
}

// Intersect finds where the ray first enters the box. A miss returns EmptyHit().
// Rays starting inside the box miss, since their entry parameter is negative.
func (b *AxisAlignedBox) Intersect(origin, direction core.Vec3) HitRecord {
	ray := core.NewRay(origin, direction)
	tNear, _, ok := b.Slab(ray)
	if !ok {
		return EmptyHit()
	}

	point := ray.At(tNear)
	axis, sign := b.faceAt(point)
	u, v := b.surfaceCoords(point, axis)

	return HitRecord{
		Point:          point,
		Normal:         core.UnitAxis(axis, sign),
		Distance:       tNear,
		Material:       b.Material,
		U:              u,
		V:              v,
		IsIntersecting: true,
	}
}

// faceAt picks the face containing p, testing x then y then z and min before max.
// Points on an edge or corner resolve to the first matching face.
func (b *AxisAlignedBox) faceAt(p core.Vec3) (int, float64) {
	for axis := 0; axis < 3; axis++ {
		c := p.Axis(axis)
		if math.Abs(c-b.Min.Axis(axis)) < faceEpsilon {
			return axis, -1
		}
		if math.Abs(c-b.Max.Axis(axis)) < faceEpsilon {
			return axis, 1
		}
	}

	// Large coordinates can push the point beyond the epsilon; take the nearest bound
	bestAxis, bestSign, bestDist := 0, -1.0, math.Inf(1)
	for axis := 0; axis < 3; axis++ {
		c := p.Axis(axis)
		if d := math.Abs(c - b.Min.Axis(axis)); d < bestDist {
			bestAxis, bestSign, bestDist = axis, -1, d
		}
		if d := math.Abs(c - b.Max.Axis(axis)); d < bestDist {
			bestAxis, bestSign, bestDist = axis, 1, d
		}
	}
	return bestAxis, bestSign
}

// surfaceCoords maps the two in-plane coordinates of p into [0, 1].
// X faces use (z, y), Y faces use (x, z) and Z faces use (x, y).
func (b *AxisAlignedBox) surfaceCoords(p core.Vec3, axis int) (float64, float64) {
	var uAxis, vAxis int
	switch axis {
	case 0:
		uAxis, vAxis = 2, 1
	case 1:
		uAxis, vAxis = 0, 2
	default:
		uAxis, vAxis = 0, 1
	}
	return b.normalized(p, uAxis), b.normalized(p, vAxis)
}

func (b *AxisAlignedBox) normalized(p core.Vec3, axis int) float64 {
	lo, hi := b.Min.Axis(axis), b.Max.Axis(axis)
	if hi-lo == 0 {
		return 0
	}
	return (p.Axis(axis) - lo) / (hi - lo)
}
