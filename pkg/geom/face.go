// Package geom holds the triangular-face and mesh primitives and the
// Möller–Trumbore ray-triangle intersection routine.
package geom

import (
	"math"

	"github.com/rngbrew/pathtracer/pkg/vecmath"
)

// Face is a single triangle with a precomputed normal, bounding box and
// area. Faces are immutable after construction.
type Face struct {
	V0, V1, V2 vecmath.Vec3
	MaterialID int

	normal vecmath.Vec3
	bounds vecmath.AABB
	area   float64
}

// NewFace builds a Face from three vertices, deriving its normal from
// winding order: normalize((v1-v0) x (v2-v0)).
func NewFace(v0, v1, v2 vecmath.Vec3, materialID int) Face {
	edge1 := v1.Sub(v0)
	edge2 := v2.Sub(v0)
	normal := edge1.Cross(edge2).Normalize()
	return newFace(v0, v1, v2, normal, materialID)
}

// NewFaceWithNormal builds a Face from three vertices and an explicit
// (user-supplied) normal, e.g. one loaded from an OBJ file.
func NewFaceWithNormal(v0, v1, v2, normal vecmath.Vec3, materialID int) Face {
	return newFace(v0, v1, v2, normal.Normalize(), materialID)
}

func newFace(v0, v1, v2, normal vecmath.Vec3, materialID int) Face {
	bounds := vecmath.EmptyAABB().UnionPoint(v0).UnionPoint(v1).UnionPoint(v2)
	return Face{
		V0: v0, V1: v1, V2: v2,
		MaterialID: materialID,
		normal:     normal,
		bounds:     bounds,
		area:       triangleArea(v0, v1, v2),
	}
}

// triangleArea computes the triangle's area via the half-magnitude of the
// edge cross product, equivalent to Heron's formula for a triangle.
func triangleArea(v0, v1, v2 vecmath.Vec3) float64 {
	edge1 := v1.Sub(v0)
	edge2 := v2.Sub(v0)
	return 0.5 * edge1.Cross(edge2).Length()
}

// Normal returns the face's cached geometric normal.
func (f Face) Normal() vecmath.Vec3 { return f.normal }

// Bounds returns the face's cached axis-aligned bounding box.
func (f Face) Bounds() vecmath.AABB { return f.bounds }

// Area returns the face's cached area.
func (f Face) Area() float64 { return f.area }

// Centroid returns the mean of the three vertices.
func (f Face) Centroid() vecmath.Vec3 {
	return f.V0.Add(f.V1).Add(f.V2).Scale(1.0 / 3.0)
}

// IsDegenerate reports whether the face's area is too small to be a usable
// primitive; such faces are excluded during mesh construction rather than
// being carried into the BVH.
func (f Face) IsDegenerate() bool {
	return f.area < vecmath.Epsilon
}

// Hit is the result of a ray-face intersection.
type Hit struct {
	T              float64
	U, V           float64
	Point          vecmath.Vec3
	GeometricNormal vecmath.Vec3
	ShadingNormal  vecmath.Vec3
}

// Intersect performs Möller–Trumbore ray-triangle intersection. It rejects
// near-parallel rays (|det| < epsilon), barycentrics outside [0,1] /
// u+v<=1, and hits with t <= epsilon.
func (f Face) Intersect(ray vecmath.Ray) (Hit, bool) {
	edge1 := f.V1.Sub(f.V0)
	edge2 := f.V2.Sub(f.V0)

	pvec := ray.Direction.Cross(edge2)
	det := edge1.Dot(pvec)
	if math.Abs(det) < vecmath.Epsilon {
		return Hit{}, false
	}
	invDet := 1.0 / det

	tvec := ray.Origin.Sub(f.V0)
	u := tvec.Dot(pvec) * invDet
	if u < 0 || u > 1 {
		return Hit{}, false
	}

	qvec := tvec.Cross(edge1)
	v := ray.Direction.Dot(qvec) * invDet
	if v < 0 || u+v > 1 {
		return Hit{}, false
	}

	t := edge2.Dot(qvec) * invDet
	if t <= vecmath.Epsilon {
		return Hit{}, false
	}

	point := ray.At(t)
	wo := ray.Direction.Negate()
	shadingNormal := f.normal.FaceForward(wo)

	return Hit{
		T:               t,
		U:               u,
		V:               v,
		Point:           point,
		GeometricNormal: f.normal,
		ShadingNormal:   shadingNormal,
	}, true
}
