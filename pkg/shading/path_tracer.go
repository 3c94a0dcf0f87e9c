package shading

import (
	"math"
	"math/rand"

	"github.com/rngbrew/pathtracer/pkg/lighting"
	"github.com/rngbrew/pathtracer/pkg/scenegraph"
	"github.com/rngbrew/pathtracer/pkg/vecmath"
)

// pathTracerMaxDepth and pathTracerContinueP are the unconditional-bounce
// depth and Russian-roulette survival probability beyond it.
const (
	pathTracerMaxDepth  = 2
	pathTracerContinueP = 0.5
)

// PathTracer is the core shader: Monte-Carlo path tracing with
// next-event estimation at every diffuse vertex and Russian-roulette
// termination beyond pathTracerMaxDepth.
type PathTracer struct {
	Background vecmath.Vec3
}

// Shade implements Shader.
func (pt PathTracer) Shade(ray vecmath.Ray, scene *scenegraph.Scene, depth int, rng *rand.Rand) vecmath.Vec3 {
	hit, ok := scene.Trace(ray)
	if !ok {
		return pt.Background
	}
	return pt.shadeHit(ray, scene, hit, depth, rng)
}

// shadeHit implements steps 2-5 of the algorithm for an already-traced
// intersection, letting the diffuse bounce re-enter here directly once it
// has already checked (and discarded) a light hit, without tracing twice.
func (pt PathTracer) shadeHit(ray vecmath.Ray, scene *scenegraph.Scene, hit scenegraph.Intersection, depth int, rng *rand.Rand) vecmath.Vec3 {
	if hit.IsLight() {
		return hit.LightIntensity
	}
	if hit.Material == nil {
		return vecmath.Vec3{}
	}
	mat := hit.Material

	var indirect vecmath.Vec3
	continuing := depth < pathTracerMaxDepth
	rrCompensate := false
	if !continuing && rng.Float64() < pathTracerContinueP {
		continuing = true
		rrCompensate = true
	}

	if continuing {
		indirect = pt.scatter(scene, hit, mat, depth, rng)
		if rrCompensate {
			indirect = indirect.Scale(1.0 / pathTracerContinueP)
		}
	}

	direct := pt.directLighting(scene, hit, mat, rng)
	return indirect.Add(direct)
}

// scatter implements step 4 of the algorithm: choose between a specular
// reflection bounce and a cosine-weighted diffuse bounce, weighted by the
// luminance-proxy ratio s_p = specular.y / (specular.y + diffuse.y).
func (pt PathTracer) scatter(scene *scenegraph.Scene, hit scenegraph.Intersection, mat *scenegraph.Material, depth int, rng *rand.Rand) vecmath.Vec3 {
	const eps = 1e-4
	denom := mat.Specular.Y + mat.Diffuse.Y
	sp := 0.0
	if denom > 0 {
		sp = mat.Specular.Y / denom
	}

	rndSpec := rng.Float64()
	if rndSpec <= sp || sp >= 1-eps {
		r := reflect(hit.WOutgoing, hit.ShadingNormal)
		reflectedRay := vecmath.NewRay(hit.Point, r).AdjustOrigin(hit.ShadingNormal)
		incoming := pt.Shade(reflectedRay, scene, depth+1, rng)
		return mat.Specular.Mul(incoming).Scale(1.0 / sp)
	}

	return pt.diffuseBounce(scene, hit, mat, depth, rng, 1-sp)
}

// diffuseBounce draws a cosine-weighted direction in the local frame built
// from the shading normal, recurses, and discards the contribution if the
// bounce itself hits a light — next-event estimation already accounts for
// direct emission, so counting it again here would double it.
func (pt PathTracer) diffuseBounce(scene *scenegraph.Scene, hit scenegraph.Intersection, mat *scenegraph.Material, depth int, rng *rand.Rand, oneMinusSp float64) vecmath.Vec3 {
	r0, r1 := rng.Float64(), rng.Float64()
	cosTheta := math.Sqrt(r1)
	sinTheta := math.Sqrt(1 - r1)
	local := vecmath.NewVec3(math.Cos(2*math.Pi*r0)*sinTheta, math.Sin(2*math.Pi*r0)*sinTheta, cosTheta)

	frame := vecmath.LocalFrame(hit.ShadingNormal)
	worldDir := frame.MulVec(local)

	pdf := cosTheta / math.Pi
	if pdf <= 0 {
		return vecmath.Vec3{}
	}

	bounceRay := vecmath.NewRay(hit.Point, worldDir).AdjustOrigin(hit.ShadingNormal)
	bounceHit, ok := scene.Trace(bounceRay)

	var incoming vecmath.Vec3
	switch {
	case !ok:
		incoming = pt.Background
	case bounceHit.IsLight():
		return vecmath.Vec3{}
	default:
		incoming = pt.shadeHit(bounceRay, scene, bounceHit, depth+1, rng)
	}

	contribution := mat.Diffuse.Scale(cosTheta / pdf).Mul(incoming)
	return contribution.Scale(1.0 / oneMinusSp)
}

// directLighting implements next-event estimation: ambient contribution
// plus one sampled light's contribution, shadow-tested, when the surface
// has an active diffuse lobe.
func (pt PathTracer) directLighting(scene *scenegraph.Scene, hit scenegraph.Intersection, mat *scenegraph.Material, rng *rand.Rand) vecmath.Vec3 {
	color := scene.Sampler.AmbientContribution(mat.Ambient)
	if !mat.ActiveDiffuse() {
		return color
	}

	selection, ok := scene.Sampler.Sample(hit.Point, hit.ShadingNormal, rng)
	if !ok {
		return color
	}
	sample := selection.Sample
	if sample.Cos <= 0 {
		return color
	}

	shadowRay := vecmath.NewRay(hit.Point, sample.LightDir).AdjustOrigin(hit.ShadingNormal)
	if !scene.Visibility(shadowRay, sample.Distance) {
		return color
	}

	contribution := mat.Diffuse.Mul(sample.Color).Scale(sample.Cos / selection.SelectionPDF)
	if _, isArea := selection.Light.(lighting.AreaLight); isArea {
		contribution = contribution.Scale(1.0 / sample.PDF)
	}

	return color.Add(contribution)
}
