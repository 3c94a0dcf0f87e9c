package render

import (
	"context"
	"testing"

	"github.com/rngbrew/pathtracer/pkg/camera"
	"github.com/rngbrew/pathtracer/pkg/geom"
	"github.com/rngbrew/pathtracer/pkg/lighting"
	"github.com/rngbrew/pathtracer/pkg/scenegraph"
	"github.com/rngbrew/pathtracer/pkg/shading"
	"github.com/rngbrew/pathtracer/pkg/vecmath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tinyScene() *scenegraph.Scene {
	v0 := vecmath.NewVec3(-10, 0, -10)
	v1 := vecmath.NewVec3(10, 0, -10)
	v2 := vecmath.NewVec3(10, 0, 10)
	v3 := vecmath.NewVec3(-10, 0, 10)
	faces := []geom.Face{geom.NewFace(v0, v1, v2, 0), geom.NewFace(v0, v2, v3, 0)}
	mesh, _ := geom.NewMesh(faces, 0)
	mat := scenegraph.Material{Ambient: vecmath.NewVec3(0.2, 0.2, 0.2), Diffuse: vecmath.NewVec3(0.6, 0.6, 0.6)}
	cam := camera.New(vecmath.NewVec3(0, 5, 0), vecmath.NewVec3(0, 0, 0), vecmath.NewVec3(0, 0, 1), 8, 8, 1, 1)
	lights := []lighting.Light{lighting.AmbientLight{Color: vecmath.NewVec3(1, 1, 1)}}
	return scenegraph.Build([]geom.Mesh{mesh}, []scenegraph.Material{mat}, lights, cam, false)
}

func TestRenderProducesInRangePixels(t *testing.T) {
	scene := tinyScene()
	r := &Renderer{
		Scene:           scene,
		Shader:          shading.AmbientShader{Background: vecmath.NewVec3(0.05, 0.05, 0.1)},
		SamplesPerPixel: 4,
		Seed:            1,
		NumWorkers:      2,
	}

	fb, stats, err := r.Render(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 8, stats.Width)
	assert.Equal(t, 8, stats.Height)

	for _, p := range fb.Pixels {
		assert.GreaterOrEqual(t, p.X, 0.0)
		assert.GreaterOrEqual(t, p.Y, 0.0)
		assert.GreaterOrEqual(t, p.Z, 0.0)
	}
}

func TestRenderDeterministicForFixedSeed(t *testing.T) {
	scene := tinyScene()
	build := func() vecmath.Vec3 {
		r := &Renderer{
			Scene:           scene,
			Shader:          shading.AmbientShader{Background: vecmath.NewVec3(0.05, 0.05, 0.1)},
			SamplesPerPixel: 8,
			Seed:            42,
			NumWorkers:      1,
		}
		fb, _, err := r.Render(context.Background())
		require.NoError(t, err)
		return fb.At(4, 4)
	}

	assert.Equal(t, build(), build())
}
