// Package lighting holds the Light variants, per-sample geometry
// enrichment, and the light-selection strategies (uniform and
// power-weighted).
package lighting

import "github.com/rngbrew/pathtracer/pkg/vecmath"

// Kind distinguishes the Light variants. Light is a tagged sum type: a
// single interface with exhaustive type switches at each call site, not an
// inheritance hierarchy.
type Kind string

const (
	KindAmbient Kind = "ambient"
	KindPoint   Kind = "point"
	KindArea    Kind = "area"
)

// Light is implemented by AmbientLight, PointLight and AreaLight.
type Light interface {
	Kind() Kind
}

// AmbientLight contributes uniformly regardless of position; it is never
// selected by a LightSampler (it is not positional).
type AmbientLight struct {
	Color vecmath.Vec3
}

// Kind implements Light.
func (AmbientLight) Kind() Kind { return KindAmbient }

// PointLight emits Color from a fixed Position. Its contribution to a
// shaded point has no distance falloff; distance enters only the
// power-weighted sampler's selection weights.
type PointLight struct {
	Color    vecmath.Vec3
	Position vecmath.Vec3
	powerGS  float64
}

// NewPointLight builds a PointLight, precomputing its grayscale power.
func NewPointLight(color, position vecmath.Vec3) PointLight {
	return PointLight{Color: color, Position: position, powerGS: color.GrayScale()}
}

// Kind implements Light.
func (PointLight) Kind() Kind { return KindPoint }

// PowerGS returns the precomputed grayscale power used by the
// power-weighted sampler.
func (p PointLight) PowerGS() float64 { return p.powerGS }

// AreaLight is an emissive triangle: both a light (sampled for direct
// illumination) and a piece of geometry (intersected directly by camera
// and indirect rays, terminating the path with its emission).
type AreaLight struct {
	V0, V1, V2    vecmath.Vec3
	Normal        vecmath.Vec3
	EmittedPower  vecmath.Vec3
	Area          float64
	PDF           float64 // 1/Area
	Intensity     vecmath.Vec3 // EmittedPower / Area
	powerGS       float64
}

// NewAreaLight builds an AreaLight from its three vertices, a normal, and
// the total emitted power. Area, PDF and Intensity are all derived and
// cached: PDF = 1/area (positive by construction — callers must not pass a
// degenerate triangle), Intensity = power/area, power_gs = grayscale of
// Intensity.
func NewAreaLight(v0, v1, v2, normal, emittedPower vecmath.Vec3) AreaLight {
	edge1 := v1.Sub(v0)
	edge2 := v2.Sub(v0)
	area := 0.5 * edge1.Cross(edge2).Length()
	pdf := 1.0 / area
	intensity := emittedPower.Scale(pdf)
	return AreaLight{
		V0: v0, V1: v1, V2: v2,
		Normal:       normal.Normalize(),
		EmittedPower: emittedPower,
		Area:         area,
		PDF:          pdf,
		Intensity:    intensity,
		powerGS:      intensity.GrayScale(),
	}
}

// Kind implements Light.
func (AreaLight) Kind() Kind { return KindArea }

// PowerGS returns the precomputed grayscale intensity used by the
// power-weighted sampler.
func (a AreaLight) PowerGS() float64 { return a.powerGS }

// Centroid returns the mean of the light's three vertices.
func (a AreaLight) Centroid() vecmath.Vec3 {
	return a.V0.Add(a.V1).Add(a.V2).Scale(1.0 / 3.0)
}
