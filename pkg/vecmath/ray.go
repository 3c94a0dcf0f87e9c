package vecmath

// Epsilon is the module-wide tolerance used for self-intersection offsets,
// ray-triangle acceptance, and the visibility shadow-ray margin.
const Epsilon = 1e-4

// Ray is a parametric ray with unit-length Direction.
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay creates a ray; Direction is expected to already be unit length.
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// AdjustOrigin offsets the ray's origin along n by epsilon, signed so the
// offset moves to the same side of the surface that Direction points into
// (or, for a shadow ray toward a normal, the side the caller intends). Each
// call adds another epsilon-sized offset on top of the current origin, so
// it is meant to be applied once per ray, right after construction.
func (r Ray) AdjustOrigin(n Vec3) Ray {
	sign := 1.0
	if r.Direction.Dot(n) < 0 {
		sign = -1.0
	}
	return Ray{Origin: r.Origin.Add(n.Scale(Epsilon * sign)), Direction: r.Direction}
}
