package lighting

import (
	"math/rand"

	"github.com/rngbrew/pathtracer/pkg/vecmath"
)

// Selection is the outcome of a Sampler.Sample call: the chosen light, the
// probability of having selected it, and the (already enriched) per-sample
// geometric record.
type Selection struct {
	Light        Light
	SelectionPDF float64
	Sample       SampleLightResult
}

// Sampler partitions a scene's lights into ambient vs positional and
// selects one positional light per shading query, using either a uniform
// or a power-weighted strategy.
type Sampler struct {
	ambient    []AmbientLight
	positional []Light
	powerMode  bool
}

// NewUniformSampler builds a sampler that selects among positional lights
// with equal probability 1/N.
func NewUniformSampler(lights []Light) *Sampler {
	return newSampler(lights, false)
}

// NewPowerSampler builds a sampler that weights each positional light by
// w_i = power_gs_i * cos_i / distance_i^2, normalised into a cumulative
// distribution evaluated fresh for each shading query (the weights depend
// on the query's position and normal).
func NewPowerSampler(lights []Light) *Sampler {
	return newSampler(lights, true)
}

func newSampler(lights []Light, powerMode bool) *Sampler {
	s := &Sampler{powerMode: powerMode}
	for _, l := range lights {
		if al, ok := l.(AmbientLight); ok {
			s.ambient = append(s.ambient, al)
			continue
		}
		s.positional = append(s.positional, l)
	}
	return s
}

// AmbientContribution sums, over all ambient lights, the component-wise
// product of materialAmbient and the light's color.
func (s *Sampler) AmbientContribution(materialAmbient vecmath.Vec3) vecmath.Vec3 {
	sum := vecmath.Vec3{}
	for _, a := range s.ambient {
		sum = sum.Add(materialAmbient.Mul(a.Color))
	}
	return sum
}

// GeometricLights returns every AreaLight in the scene's light list so the
// scene can intersect against them as geometry.
func (s *Sampler) GeometricLights() []AreaLight {
	var out []AreaLight
	for _, l := range s.positional {
		if al, ok := l.(AreaLight); ok {
			out = append(out, al)
		}
	}
	return out
}

// PointLights returns every PointLight in the scene's light list, for
// shaders (Whitted, Distributed) that visit every point light directly
// rather than going through the sampler.
func (s *Sampler) PointLights() []PointLight {
	var out []PointLight
	for _, l := range s.positional {
		if pl, ok := l.(PointLight); ok {
			out = append(out, pl)
		}
	}
	return out
}

// HasPositionalLights reports whether there is at least one light Sample
// could select (SamplingEmpty otherwise — not an error, just a zero direct
// contribution).
func (s *Sampler) HasPositionalLights() bool { return len(s.positional) > 0 }

// Sample selects one positional light relative to a shading point
// (hitPoint, shadingN), already enriched against that point. Returns false
// if there are no positional lights or, in power mode, if every computed
// weight is zero.
func (s *Sampler) Sample(hitPoint, shadingN vecmath.Vec3, rng *rand.Rand) (Selection, bool) {
	n := len(s.positional)
	if n == 0 {
		return Selection{}, false
	}

	if !s.powerMode {
		idx := rng.Intn(n)
		light := s.positional[idx]
		sample := SamplePoint(light, rng).Enrich(light, hitPoint, shadingN)
		return Selection{Light: light, SelectionPDF: 1.0 / float64(n), Sample: sample}, true
	}

	samples := make([]SampleLightResult, n)
	weights := make([]float64, n)
	for i, light := range s.positional {
		sample := SamplePoint(light, rng).Enrich(light, hitPoint, shadingN)
		samples[i] = sample
		if sample.Distance <= 0 || sample.Cos <= 0 {
			weights[i] = 0
			continue
		}
		weights[i] = sample.PowerGS * sample.Cos / (sample.Distance * sample.Distance)
	}

	dist := NewCumulativeDistribution(weights)
	if dist.Total() <= 0 {
		return Selection{}, false
	}
	idx, ok := dist.Sample(rng.Float64())
	if !ok {
		return Selection{}, false
	}
	selectionPDF := weights[idx] / dist.Total()
	return Selection{Light: s.positional[idx], SelectionPDF: selectionPDF, Sample: samples[idx]}, true
}
