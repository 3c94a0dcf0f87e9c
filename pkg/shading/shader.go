// Package shading implements the four shading strategies: ambient,
// Whitted, distributed, and the Monte-Carlo path tracer with next-event
// estimation and Russian-roulette termination.
package shading

import (
	"math/rand"

	"github.com/rngbrew/pathtracer/pkg/scenegraph"
	"github.com/rngbrew/pathtracer/pkg/vecmath"
)

// Shader is the shading contract every strategy implements. Depth starts
// at 0 for the camera ray; a miss returns the shader's background color.
type Shader interface {
	Shade(ray vecmath.Ray, scene *scenegraph.Scene, depth int, rng *rand.Rand) vecmath.Vec3
}

// reflect computes the mirror reflection of wo about normal n:
// r = 2(n.wo)n - wo.
func reflect(wo, n vecmath.Vec3) vecmath.Vec3 {
	return n.Scale(2 * n.Dot(wo)).Sub(wo)
}
