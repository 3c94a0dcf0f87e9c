package scenegraph

import (
	"math"
	"testing"

	"github.com/rngbrew/pathtracer/pkg/camera"
	"github.com/rngbrew/pathtracer/pkg/geom"
	"github.com/rngbrew/pathtracer/pkg/lighting"
	"github.com/rngbrew/pathtracer/pkg/vecmath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quadScene() *Scene {
	v0 := vecmath.NewVec3(-5, -5, 5)
	v1 := vecmath.NewVec3(5, -5, 5)
	v2 := vecmath.NewVec3(5, 5, 5)
	v3 := vecmath.NewVec3(-5, 5, 5)

	faces := []geom.Face{
		geom.NewFace(v0, v1, v2, 0),
		geom.NewFace(v0, v2, v3, 0),
	}
	mesh, _ := geom.NewMesh(faces, 0)
	mat := Material{Diffuse: vecmath.NewVec3(0.8, 0.8, 0.8)}
	cam := camera.New(vecmath.NewVec3(0, 0, 0), vecmath.NewVec3(0, 0, 1), vecmath.NewVec3(0, 1, 0), 10, 10, 1, 1)
	return Build([]geom.Mesh{mesh}, []Material{mat}, nil, cam, false)
}

func TestTraceHitsQuad(t *testing.T) {
	s := quadScene()
	ray := vecmath.NewRay(vecmath.NewVec3(0, 0, 0), vecmath.NewVec3(0, 0, 1))
	hit, ok := s.Trace(ray)
	require.True(t, ok)
	assert.False(t, hit.IsLight())
	assert.InDelta(t, 5.0, hit.Depth, 1e-9)
	require.NotNil(t, hit.Material)
}

func TestTraceMiss(t *testing.T) {
	s := quadScene()
	ray := vecmath.NewRay(vecmath.NewVec3(100, 100, 0), vecmath.NewVec3(0, 0, 1))
	_, ok := s.Trace(ray)
	assert.False(t, ok)
}

func TestVisibilityLaw(t *testing.T) {
	s := quadScene()
	p := vecmath.NewVec3(0, 0, 0)
	ray := vecmath.NewRay(p, vecmath.NewVec3(0, 0, 1))

	visibleShort := s.Visibility(ray, 2.0)
	assert.True(t, visibleShort)

	visibleFar := s.Visibility(ray, 10.0)
	assert.False(t, visibleFar)
}

func TestAreaLightHitCarriesIntensity(t *testing.T) {
	light := lighting.NewAreaLight(
		vecmath.NewVec3(-1, -1, 5), vecmath.NewVec3(1, -1, 5), vecmath.NewVec3(0, 1, 5),
		vecmath.NewVec3(0, 0, -1), vecmath.NewVec3(10, 10, 10),
	)
	cam := camera.New(vecmath.NewVec3(0, 0, 0), vecmath.NewVec3(0, 0, 1), vecmath.NewVec3(0, 1, 0), 4, 4, 1, 1)
	s := Build(nil, nil, []lighting.Light{light}, cam, false)

	ray := vecmath.NewRay(vecmath.NewVec3(0, -0.5, 0), vecmath.NewVec3(0, 0, 1))
	hit, ok := s.Trace(ray)
	require.True(t, ok)
	assert.True(t, hit.IsLight())
	assert.InDelta(t, light.EmittedPower.X, hit.LightIntensity.X, 1e-9)
	assert.False(t, math.IsNaN(hit.Depth))
}
