package vecmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec3Normalize(t *testing.T) {
	v := NewVec3(3, 0, 4)
	n := v.Normalize()
	assert.InDelta(t, 1.0, n.Length(), 1e-12)
	assert.InDelta(t, 0.6, n.X, 1e-12)
	assert.InDelta(t, 0.8, n.Z, 1e-12)
}

func TestVec3NormalizeZero(t *testing.T) {
	assert.Equal(t, Vec3{}, Vec3{}.Normalize())
}

func TestVec3CrossOrthogonal(t *testing.T) {
	x := NewVec3(1, 0, 0)
	y := NewVec3(0, 1, 0)
	z := x.Cross(y)
	assert.InDelta(t, 0.0, z.Dot(x), 1e-12)
	assert.InDelta(t, 0.0, z.Dot(y), 1e-12)
	assert.InDelta(t, 1.0, z.Z, 1e-12)
}

func TestVec3FaceForward(t *testing.T) {
	n := NewVec3(0, 0, 1)
	wo := NewVec3(0, 0, -1)
	flipped := n.FaceForward(wo)
	assert.InDelta(t, -1.0, flipped.Z, 1e-12)

	wo2 := NewVec3(0, 0, 1)
	same := n.FaceForward(wo2)
	assert.InDelta(t, 1.0, same.Z, 1e-12)
}

func TestVec3GrayScale(t *testing.T) {
	c := NewVec3(1, 1, 1)
	assert.InDelta(t, 1.0, c.GrayScale(), 1e-12)
	assert.InDelta(t, 0.299, NewVec3(1, 0, 0).GrayScale(), 1e-12)
}

func TestLocalFrameOrthonormal(t *testing.T) {
	normals := []Vec3{
		NewVec3(0, 0, 1),
		NewVec3(1, 0, 0),
		NewVec3(0, 1, 0),
		NewVec3(1, 1, 1).Normalize(),
		NewVec3(-0.3, 0.8, 0.1).Normalize(),
	}
	for _, n := range normals {
		frame := LocalFrame(n)
		rx, ry := frame.Col0, frame.Col1
		assert.InDelta(t, 1.0, rx.Length(), 1e-9)
		assert.InDelta(t, 1.0, ry.Length(), 1e-9)
		assert.InDelta(t, 1.0, n.Length(), 1e-9)
		assert.InDelta(t, 0.0, rx.Dot(ry), 1e-9)
		assert.InDelta(t, 0.0, rx.Dot(n), 1e-9)
		assert.InDelta(t, 0.0, ry.Dot(n), 1e-9)
	}
}

func TestMat3MulVecIdentityLikeFrame(t *testing.T) {
	n := NewVec3(0, 0, 1)
	frame := LocalFrame(n)
	// local z-axis (0,0,1) must rotate into world n.
	world := frame.MulVec(NewVec3(0, 0, 1))
	assert.InDelta(t, n.X, world.X, 1e-12)
	assert.InDelta(t, n.Y, world.Y, 1e-12)
	assert.InDelta(t, n.Z, world.Z, 1e-12)
}

func TestAABBUnionIdentity(t *testing.T) {
	empty := EmptyAABB()
	p := NewVec3(1, 2, 3)
	u := empty.UnionPoint(p)
	assert.Equal(t, p, u.Min)
	assert.Equal(t, p, u.Max)
}

func TestAABBUnionCommutativeAssociative(t *testing.T) {
	a := NewAABB(NewVec3(0, 0, 0), NewVec3(1, 1, 1))
	b := NewAABB(NewVec3(-1, 2, 0), NewVec3(3, 3, 3))
	c := NewAABB(NewVec3(5, -2, -2), NewVec3(6, -1, -1))

	assert.Equal(t, a.Union(b), b.Union(a))
	assert.Equal(t, a.Union(b).Union(c), a.Union(b.Union(c)))
}

func TestAABBSlabHit(t *testing.T) {
	box := NewAABB(NewVec3(0, 0, 0), NewVec3(1, 1, 1))
	ray := NewRay(NewVec3(2, 2, -1), NewVec3(0, 0, 1))
	assert.False(t, box.Hit(ray, 0, math.Inf(1)))

	hitRay := NewRay(NewVec3(0.5, 0.5, -1), NewVec3(0, 0, 1))
	assert.True(t, hitRay.Direction.Length() > 0)
	assert.True(t, box.Hit(hitRay, 0, math.Inf(1)))
}

func TestRayAdjustOriginSign(t *testing.T) {
	n := NewVec3(0, 0, 1)
	r := NewRay(NewVec3(0, 0, 0), NewVec3(0, 0, 1))
	adjusted := r.AdjustOrigin(n)
	assert.Greater(t, adjusted.Origin.Z, 0.0)

	rInward := NewRay(NewVec3(0, 0, 0), NewVec3(0, 0, -1))
	adjustedInward := rInward.AdjustOrigin(n)
	assert.Less(t, adjustedInward.Origin.Z, 0.0)
}
