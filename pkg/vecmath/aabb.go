package vecmath

import "math"

// AABB is an axis-aligned bounding box, an ordered pair (Min, Max) with
// Min <= Max component-wise. The empty AABB is the sentinel with
// Min = +Inf, Max = -Inf, chosen so that unioning it with any point or box
// yields that point/box unchanged.
type AABB struct {
	Min, Max Vec3
}

// EmptyAABB returns the sentinel empty bounding box.
func EmptyAABB() AABB {
	inf := math.Inf(1)
	return AABB{
		Min: Vec3{inf, inf, inf},
		Max: Vec3{-inf, -inf, -inf},
	}
}

// NewAABB builds an AABB from an explicit min/max pair.
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// UnionPoint returns the AABB extended to also contain p.
func (b AABB) UnionPoint(p Vec3) AABB {
	return AABB{Min: b.Min.Min(p), Max: b.Max.Max(p)}
}

// Union returns the AABB bounding both b and other.
func (b AABB) Union(other AABB) AABB {
	return AABB{Min: b.Min.Min(other.Min), Max: b.Max.Max(other.Max)}
}

// Centroid returns the midpoint of the box.
func (b AABB) Centroid() Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Diagonal returns Max - Min.
func (b AABB) Diagonal() Vec3 {
	return b.Max.Sub(b.Min)
}

// SurfaceArea returns the surface area of the box. The empty sentinel box
// has a diagonal of -Inf on every axis and so yields +Inf.
func (b AABB) SurfaceArea() float64 {
	d := b.Diagonal()
	return 2.0 * (d.X*d.Y + d.Y*d.Z + d.Z*d.X)
}

// MaxExtentAxis returns the axis (0=X, 1=Y, 2=Z) along which the box is
// largest.
func (b AABB) MaxExtentAxis() int {
	d := b.Diagonal()
	if d.X > d.Y && d.X > d.Z {
		return 0
	}
	if d.Y > d.Z {
		return 1
	}
	return 2
}

// Offset returns p's position inside the box normalised to [0, 1] per
// axis, used to bucket centroids during SAH construction.
func (b AABB) Offset(p Vec3) Vec3 {
	o := p.Sub(b.Min)
	if b.Max.X > b.Min.X {
		o.X /= b.Max.X - b.Min.X
	}
	if b.Max.Y > b.Min.Y {
		o.Y /= b.Max.Y - b.Min.Y
	}
	if b.Max.Z > b.Min.Z {
		o.Z /= b.Max.Z - b.Min.Z
	}
	return o
}

// Hit tests the AABB against a ray's slab intersection, within [tMin, tMax].
// Division by a zero direction component is accepted as producing an IEEE
// infinity, which the min/max comparisons resolve correctly without a
// special case.
func (b AABB) Hit(ray Ray, tMin, tMax float64) bool {
	for axis := 0; axis < 3; axis++ {
		invD := 1.0 / ray.Direction.Component(axis)
		t0 := (b.Min.Component(axis) - ray.Origin.Component(axis)) * invD
		t1 := (b.Max.Component(axis) - ray.Origin.Component(axis)) * invD
		if invD < 0 {
			t0, t1 = t1, t0
		}
		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}
		if tMax < tMin {
			return false
		}
	}
	return true
}
