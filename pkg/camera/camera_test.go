package camera

import (
	"math"
	"testing"

	"github.com/rngbrew/pathtracer/pkg/vecmath"
	"github.com/stretchr/testify/assert"
)

func TestGetRayCenterParallelToForward(t *testing.T) {
	cam := New(
		vecmath.NewVec3(0, 0, 0),
		vecmath.NewVec3(0, 0, 1),
		vecmath.NewVec3(0, 1, 0),
		200, 100,
		math.Pi/3, math.Pi/4,
	)

	// The image centre is the corner shared by the four middle pixels:
	// x = 100 + 0 and Height-y-1 + jy = 50 with y = 49, jy = 0.
	ray := cam.GetRay(100, 49, 0, 0)
	cross := ray.Direction.Cross(cam.Forward)
	assert.InDelta(t, 0.0, cross.Length(), 1e-9)
	assert.Greater(t, ray.Direction.Dot(cam.Forward), 0.0)
}

func TestGetRayOriginIsPosition(t *testing.T) {
	pos := vecmath.NewVec3(1, 2, 3)
	cam := New(pos, vecmath.NewVec3(1, 2, 10), vecmath.NewVec3(0, 1, 0), 64, 64, 1.0, 1.0)
	ray := cam.GetRay(0, 0, 0, 0)
	assert.Equal(t, pos, ray.Origin)
}
