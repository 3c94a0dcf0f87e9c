package geom

import (
	"testing"

	"github.com/rngbrew/pathtracer/pkg/vecmath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFaceIntersectAxisAlignedRay(t *testing.T) {
	v0 := vecmath.NewVec3(0, 0, 1)
	v1 := vecmath.NewVec3(1, 0, 1)
	v2 := vecmath.NewVec3(0, 1, 1)
	face := NewFace(v0, v1, v2, 0)

	ray := vecmath.NewRay(vecmath.NewVec3(0.25, 0.25, 0), vecmath.NewVec3(0, 0, 1))
	hit, ok := face.Intersect(ray)
	require.True(t, ok)
	assert.InDelta(t, 1.0, hit.T, 1e-9)
	assert.InDelta(t, 0.25, hit.U, 1e-9)
	assert.InDelta(t, 0.25, hit.V, 1e-9)
}

func TestFaceNormalOrthogonalToEdges(t *testing.T) {
	v0 := vecmath.NewVec3(0, 0, 0)
	v1 := vecmath.NewVec3(2, 0, 0)
	v2 := vecmath.NewVec3(0, 3, 0)
	face := NewFace(v0, v1, v2, 0)

	n := face.Normal()
	assert.InDelta(t, 0.0, n.Dot(v1.Sub(v0)), 1e-9)
	assert.InDelta(t, 0.0, n.Dot(v2.Sub(v0)), 1e-9)
}

func TestFaceAreaRightTriangle(t *testing.T) {
	face := NewFace(vecmath.NewVec3(0, 0, 0), vecmath.NewVec3(2, 0, 0), vecmath.NewVec3(0, 3, 0), 0)
	assert.InDelta(t, 3.0, face.Area(), 1e-9)
}

func TestFaceIntersectParallelMiss(t *testing.T) {
	face := NewFace(vecmath.NewVec3(0, 0, 1), vecmath.NewVec3(1, 0, 1), vecmath.NewVec3(0, 1, 1), 0)
	ray := vecmath.NewRay(vecmath.NewVec3(0, 0, 0), vecmath.NewVec3(1, 0, 0))
	_, ok := face.Intersect(ray)
	assert.False(t, ok)
}

func TestMeshDropsDegenerateFaces(t *testing.T) {
	good := NewFace(vecmath.NewVec3(0, 0, 0), vecmath.NewVec3(1, 0, 0), vecmath.NewVec3(0, 1, 0), 0)
	degenerate := NewFace(vecmath.NewVec3(0, 0, 0), vecmath.NewVec3(1, 0, 0), vecmath.NewVec3(2, 0, 0), 0)

	mesh, dropped := NewMesh([]Face{good, degenerate}, 0)
	assert.Equal(t, 1, dropped)
	assert.Len(t, mesh.Faces, 1)
}
