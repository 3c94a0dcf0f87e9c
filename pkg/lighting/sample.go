package lighting

import (
	"math"
	"math/rand"

	"github.com/rngbrew/pathtracer/pkg/vecmath"
)

// SampleLightResult is the per-sample record produced by a light, starting
// with only emission data and optionally enriched with per-intersection
// geometry (distance, cosine, direction toward the light) once a shading
// point is known.
type SampleLightResult struct {
	Color    vecmath.Vec3
	Point    vecmath.Vec3
	HasPoint bool
	PDF      float64
	HasPDF   bool
	Distance float64
	Cos      float64
	LightDir vecmath.Vec3
	Enriched bool
	PowerGS  float64
}

// SamplePoint draws emission-only sample data from a light: for a point
// light this is just its color and position; for an area light, a
// uniformly sampled surface point via the barycentric formula in §4.5;
// ambient lights are not positional and are not sampled this way.
func SamplePoint(light Light, rng *rand.Rand) SampleLightResult {
	switch l := light.(type) {
	case PointLight:
		return SampleLightResult{Color: l.Color, Point: l.Position, HasPoint: true, PowerGS: l.powerGS}
	case AreaLight:
		r0, r1 := rng.Float64(), rng.Float64()
		sqrtR0 := math.Sqrt(r0)
		alpha := 1 - sqrtR0
		beta := (1 - r1) * sqrtR0
		gamma := r1 * sqrtR0
		point := l.V0.Scale(alpha).Add(l.V1.Scale(beta)).Add(l.V2.Scale(gamma))
		return SampleLightResult{
			Color: l.Intensity, Point: point, HasPoint: true,
			PDF: l.PDF, HasPDF: true, PowerGS: l.powerGS,
		}
	default:
		return SampleLightResult{}
	}
}

// Enrich fills in the per-intersection fields (LightDir, Distance, Cos)
// relative to the shading point hitPoint with shading normal shadingN.
// Ambient lights are never enriched (never positional).
func (s SampleLightResult) Enrich(light Light, hitPoint, shadingN vecmath.Vec3) SampleLightResult {
	if !s.HasPoint {
		return s
	}
	toLight := s.Point.Sub(hitPoint)
	distance := toLight.Length()
	lightDir := toLight.Normalize()
	s.Distance = distance
	s.LightDir = lightDir
	s.Enriched = true

	switch l := light.(type) {
	case PointLight:
		s.Cos = lightDir.Dot(shadingN)
	case AreaLight:
		cos := lightDir.Dot(shadingN)
		if cos > 0 && lightDir.Dot(l.Normal) <= 0 {
			s.Cos = cos
		} else {
			s.Cos = 0
		}
	}
	return s
}
