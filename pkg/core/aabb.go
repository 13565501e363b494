package core

import "math"

// parallelEpsilon is the smallest direction component treated as non-zero by Slab
const parallelEpsilon = 1e-12

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min Vec3 // Minimum corner
	Max Vec3 // Maximum corner
}

// NewAABB creates a new AABB from two opposite corners, ordering them componentwise
func NewAABB(a, b Vec3) AABB {
	return AABB{
		Min: NewVec3(math.Min(a.X, b.X), math.Min(a.Y, b.Y), math.Min(a.Z, b.Z)),
		Max: NewVec3(math.Max(a.X, b.X), math.Max(a.Y, b.Y), math.Max(a.Z, b.Z)),
	}
}

// Slab intersects a ray with the box using the slab method and returns the entry and exit
// parameters. A (near) zero direction component behaves as an infinite reciprocal: that axis only
// rejects the ray when the origin lies outside its slab.
func (aabb AABB) Slab(ray Ray) (tNear, tFar float64, ok bool) {
	tNear = math.Inf(-1)
	tFar = math.Inf(1)

	for axis := 0; axis < 3; axis++ {
		lo := aabb.Min.Axis(axis)
		hi := aabb.Max.Axis(axis)
		origin := ray.Origin.Axis(axis)
		direction := ray.Direction.Axis(axis)

		if math.Abs(direction) < parallelEpsilon {
			if origin < lo || origin > hi {
				return tNear, tFar, false
			}
			continue
		}

		invDirection := 1.0 / direction
		t1 := (lo - origin) * invDirection
		t2 := (hi - origin) * invDirection
		if t1 > t2 {
			t1, t2 = t2, t1
		}

		tNear = math.Max(tNear, t1)
		tFar = math.Min(tFar, t2)
	}

	if math.IsNaN(tNear) || math.IsNaN(tFar) || tNear < 0 || tNear > tFar {
		return tNear, tFar, false
	}
	return tNear, tFar, true
}

// Contains reports whether the point lies inside or on the box
func (aabb AABB) Contains(p Vec3) bool {
	return p.X >= aabb.Min.X && p.X <= aabb.Max.X &&
		p.Y >= aabb.Min.Y && p.Y <= aabb.Max.Y &&
		p.Z >= aabb.Min.Z && p.Z <= aabb.Max.Z
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Vec3 {
	return aabb.Min.Add(aabb.Max).Multiply(0.5)
}

// Size returns the size (extent) of the AABB along each axis
func (aabb AABB) Size() Vec3 {
	return aabb.Max.Subtract(aabb.Min)
}

// IsValid returns true if this is a valid AABB (min <= max for all axes)
func (aabb AABB) IsValid() bool {
	return aabb.Min.X <= aabb.Max.X &&
		aabb.Min.Y <= aabb.Max.Y &&
		aabb.Min.Z <= aabb.Max.Z
}
