package lighting

import (
	"math/rand"
	"testing"

	"github.com/rngbrew/pathtracer/pkg/vecmath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmbientContribution(t *testing.T) {
	s := NewUniformSampler([]Light{
		AmbientLight{Color: vecmath.NewVec3(0.1, 0.1, 0.1)},
		AmbientLight{Color: vecmath.NewVec3(0.2, 0, 0)},
	})
	c := s.AmbientContribution(vecmath.NewVec3(1, 1, 1))
	assert.InDelta(t, 0.3, c.X, 1e-9)
	assert.InDelta(t, 0.1, c.Y, 1e-9)
}

func TestUniformSamplerSelectsAllLights(t *testing.T) {
	lights := []Light{
		NewPointLight(vecmath.NewVec3(1, 1, 1), vecmath.NewVec3(0, 5, 0)),
		NewPointLight(vecmath.NewVec3(1, 1, 1), vecmath.NewVec3(5, 5, 0)),
	}
	s := NewUniformSampler(lights)
	rng := rand.New(rand.NewSource(1))

	seen := map[vecmath.Vec3]bool{}
	for i := 0; i < 200; i++ {
		sel, ok := s.Sample(vecmath.NewVec3(0, 0, 0), vecmath.NewVec3(0, 1, 0), rng)
		require.True(t, ok)
		assert.InDelta(t, 0.5, sel.SelectionPDF, 1e-9)
		if pl, ok := sel.Light.(PointLight); ok {
			seen[pl.Position] = true
		}
	}
	assert.Len(t, seen, 2)
}

func TestPowerSamplerNoPositionalLights(t *testing.T) {
	s := NewPowerSampler([]Light{AmbientLight{Color: vecmath.NewVec3(1, 1, 1)}})
	rng := rand.New(rand.NewSource(1))
	_, ok := s.Sample(vecmath.NewVec3(0, 0, 0), vecmath.NewVec3(0, 1, 0), rng)
	assert.False(t, ok)
}

func TestAreaLightBarycentricConvergesToCentroid(t *testing.T) {
	light := NewAreaLight(
		vecmath.NewVec3(0, 0, 0), vecmath.NewVec3(2, 0, 0), vecmath.NewVec3(0, 2, 0),
		vecmath.NewVec3(0, 0, 1), vecmath.NewVec3(1, 1, 1),
	)
	rng := rand.New(rand.NewSource(42))

	sum := vecmath.Vec3{}
	const n = 20000
	for i := 0; i < n; i++ {
		s := SamplePoint(light, rng)
		sum = sum.Add(s.Point)
	}
	mean := sum.Scale(1.0 / n)
	centroid := light.Centroid()
	assert.InDelta(t, centroid.X, mean.X, 0.05)
	assert.InDelta(t, centroid.Y, mean.Y, 0.05)

	s := SamplePoint(light, rng)
	assert.InDelta(t, 1.0/light.Area, s.PDF, 1e-9)
}

func TestEnrichPointLight(t *testing.T) {
	light := NewPointLight(vecmath.NewVec3(1, 1, 1), vecmath.NewVec3(0, 1, 0))
	s := SamplePoint(light, rand.New(rand.NewSource(1)))
	hit := vecmath.NewVec3(0, 0, 0)
	n := vecmath.NewVec3(0, 1, 0)
	s = s.Enrich(light, hit, n)
	assert.InDelta(t, 1.0, s.Distance, 1e-9)
	assert.InDelta(t, 1.0, s.Cos, 1e-9)
}
