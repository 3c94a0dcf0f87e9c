package shading

import (
	"math/rand"

	"github.com/rngbrew/pathtracer/pkg/lighting"
	"github.com/rngbrew/pathtracer/pkg/scenegraph"
	"github.com/rngbrew/pathtracer/pkg/vecmath"
)

// distributedSpecularMaxDepth is one deeper than Whitted's cutoff, to
// allow one extra bounce for the added area-light sampling work (see
// DESIGN.md's Open Question resolution).
const distributedSpecularMaxDepth = 4

// DistributedShader extends WhittedShader with one direct sample per area
// light (rather than going through the sampler), each a uniformly sampled
// surface point, shadow-tested individually.
type DistributedShader struct {
	Background vecmath.Vec3
}

// Shade implements Shader.
func (s DistributedShader) Shade(ray vecmath.Ray, scene *scenegraph.Scene, depth int, rng *rand.Rand) vecmath.Vec3 {
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
	mat := hit.Material

	color := scene.Sampler.AmbientContribution(mat.Ambient)
	color = color.Add(directPointLighting(scene, hit, mat))
	color = color.Add(directAreaLighting(scene, hit, mat, rng))

	if mat.ActiveSpecular() && depth < distributedSpecularMaxDepth {
		r := reflect(hit.WOutgoing, hit.ShadingNormal)
		reflectedRay := vecmath.NewRay(hit.Point, r).AdjustOrigin(hit.ShadingNormal)
		reflected := s.Shade(reflectedRay, scene, depth+1, rng)
		color = color.Add(mat.Specular.Mul(reflected))
	}

	return color
}

// directAreaLighting samples one point on each area light in the scene,
// accumulating (diffuse * light_color) * cos / pdf provided the light
// faces the surface and the sample is visible.
func directAreaLighting(scene *scenegraph.Scene, hit scenegraph.Intersection, mat *scenegraph.Material, rng *rand.Rand) vecmath.Vec3 {
	if !mat.ActiveDiffuse() {
		return vecmath.Vec3{}
	}
	sum := vecmath.Vec3{}
	for _, light := range scene.Sampler.GeometricLights() {
		sample := lighting.SamplePoint(light, rng).Enrich(light, hit.Point, hit.ShadingNormal)
		if sample.Cos <= 0 {
			continue
		}
		shadowRay := vecmath.NewRay(hit.Point, sample.LightDir).AdjustOrigin(hit.ShadingNormal)
		if !scene.Visibility(shadowRay, sample.Distance) {
			continue
		}
		contribution := mat.Diffuse.Mul(sample.Color).Scale(sample.Cos / sample.PDF)
		sum = sum.Add(contribution)
	}
	return sum
}
