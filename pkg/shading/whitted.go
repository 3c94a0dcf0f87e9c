package shading

import (
	"math/rand"

	"github.com/rngbrew/pathtracer/pkg/lighting"
	"github.com/rngbrew/pathtracer/pkg/scenegraph"
	"github.com/rngbrew/pathtracer/pkg/vecmath"
)

// whittedSpecularMaxDepth is the deepest a WhittedShader will recurse for
// a mirror reflection bounce.
const whittedSpecularMaxDepth = 3

// WhittedShader adds direct (point-light) Lambertian lighting and mirror
// specular reflection to the ambient term, with no Monte-Carlo sampling.
type WhittedShader struct {
	Background vecmath.Vec3
}

// Shade implements Shader.
func (s WhittedShader) Shade(ray vecmath.Ray, scene *scenegraph.Scene, depth int, rng *rand.Rand) vecmath.Vec3 {
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

	if mat.ActiveSpecular() && depth < whittedSpecularMaxDepth {
		r := reflect(hit.WOutgoing, hit.ShadingNormal)
		reflectedRay := vecmath.NewRay(hit.Point, r).AdjustOrigin(hit.ShadingNormal)
		reflected := s.Shade(reflectedRay, scene, depth+1, rng)
		color = color.Add(mat.Specular.Mul(reflected))
	}

	return color
}

// directPointLighting sums shadow-tested Lambertian contribution from
// every point light in the scene (not sampled — every point light is
// visited).
func directPointLighting(scene *scenegraph.Scene, hit scenegraph.Intersection, mat *scenegraph.Material) vecmath.Vec3 {
	if !mat.ActiveDiffuse() {
		return vecmath.Vec3{}
	}
	sum := vecmath.Vec3{}
	for _, light := range pointLights(scene) {
		toLight := light.Position.Sub(hit.Point)
		distance := toLight.Length()
		dir := toLight.Normalize()
		cos := dir.Dot(hit.ShadingNormal)
		if cos <= 0 {
			continue
		}
		shadowRay := vecmath.NewRay(hit.Point, dir).AdjustOrigin(hit.ShadingNormal)
		if !scene.Visibility(shadowRay, distance) {
			continue
		}
		sum = sum.Add(mat.Diffuse.Mul(light.Color).Scale(cos))
	}
	return sum
}

// pointLights returns the scene's point lights, as exposed by the light
// sampler's PointLights.
func pointLights(scene *scenegraph.Scene) []lighting.PointLight {
	return scene.Sampler.PointLights()
}
