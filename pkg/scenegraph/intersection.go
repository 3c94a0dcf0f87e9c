package scenegraph

import "github.com/rngbrew/pathtracer/pkg/vecmath"

// Intersection is the result of Scene.Trace: either a geometry hit (with a
// Material reference) or a light hit (with LightIntensity set and no
// material, per IsLight).
type Intersection struct {
	Point            vecmath.Vec3
	GeometricNormal  vecmath.Vec3
	ShadingNormal    vecmath.Vec3
	WOutgoing        vecmath.Vec3
	Depth            float64 // t along the ray
	Material         *Material
	HasLightIntensity bool
	LightIntensity   vecmath.Vec3
}

// IsLight reports whether this intersection hit an emissive light surface
// rather than ordinary geometry.
func (i Intersection) IsLight() bool { return i.HasLightIntensity }
