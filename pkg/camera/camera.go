// Package camera implements the pinhole camera ray generator.
package camera

import (
	"math"

	"github.com/rngbrew/pathtracer/pkg/vecmath"
)

// Camera is a pinhole camera: a position, orientation and a pixel grid,
// precomputing the camera-to-world basis and the half-angle tangents used
// by every ray it generates.
type Camera struct {
	Position, LookAt, Up vecmath.Vec3
	Forward, Right       vecmath.Vec3
	Width, Height        int
	halfTanX, halfTanY   float64
	cameraToWorld        vecmath.Mat3
}

// New builds a Camera from its description. angleX/angleY are the full
// horizontal/vertical field-of-view angles, in radians.
func New(position, lookAt, up vecmath.Vec3, width, height int, angleX, angleY float64) Camera {
	forward := lookAt.Sub(position).Normalize()
	right := forward.Cross(up).Normalize()
	trueUp := right.Cross(forward)

	return Camera{
		Position: position, LookAt: lookAt, Up: up,
		Forward: forward, Right: right,
		Width: width, Height: height,
		halfTanX:      math.Tan(angleX / 2),
		halfTanY:      math.Tan(angleY / 2),
		cameraToWorld: vecmath.NewMat3FromColumns(right, trueUp, forward),
	}
}

// GetRay generates the camera ray for pixel (x, y) with sub-pixel jitter
// (jx, jy) in [0, 1)^2. Image row 0 is the top row.
func (c Camera) GetRay(x, y int, jx, jy float64) vecmath.Ray {
	xs := 2*(float64(x)+jx)/float64(c.Width) - 1
	ys := 2*(float64(c.Height-y-1)+jy)/float64(c.Height) - 1

	xc := xs * c.halfTanX
	yc := ys * c.halfTanY

	local := vecmath.NewVec3(xc, yc, 1).Normalize()
	direction := c.cameraToWorld.MulVec(local)

	return vecmath.NewRay(c.Position, direction)
}
