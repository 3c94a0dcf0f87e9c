package shading

import (
	"math/rand"

	"github.com/rngbrew/pathtracer/pkg/scenegraph"
	"github.com/rngbrew/pathtracer/pkg/vecmath"
)

// AmbientShader returns only the material's ambient lobe times the
// scene's ambient contribution; it never recurses.
type AmbientShader struct {
	Background vecmath.Vec3
}

// Shade implements Shader.
func (s AmbientShader) Shade(ray vecmath.Ray, scene *scenegraph.Scene, depth int, rng *rand.Rand) vecmath.Vec3 {
	hit, ok := scene.Trace(ray)
	if !ok {
		return s.Background
	}
	if hit.IsLight() {
		return hit.LightIntensity
	}
	if hit.Material == nil {
		return vecmath.Vec3{}
	}
	return scene.Sampler.AmbientContribution(hit.Material.Ambient)
}
