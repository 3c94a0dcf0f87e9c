package vecmath

import "math"

// Mat3 is a 3x3 matrix stored as three column vectors. It is used as a
// change-of-basis matrix: camera-to-world, or a local shading frame built
// from a surface normal.
type Mat3 struct {
	Col0, Col1, Col2 Vec3
}

// NewMat3FromColumns builds a Mat3 from three column vectors.
func NewMat3FromColumns(col0, col1, col2 Vec3) Mat3 {
	return Mat3{Col0: col0, Col1: col1, Col2: col2}
}

// MulVec applies the matrix to a column vector: result = M * v.
func (m Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		X: m.Col0.X*v.X + m.Col1.X*v.Y + m.Col2.X*v.Z,
		Y: m.Col0.Y*v.X + m.Col1.Y*v.Y + m.Col2.Y*v.Z,
		Z: m.Col0.Z*v.X + m.Col1.Z*v.Y + m.Col2.Z*v.Z,
	}
}

// LocalFrame builds an orthonormal basis (rx, ry, n) from a unit normal n,
// following the branch that avoids near-degenerate cross products. The
// returned Mat3's columns are [rx, ry, n]; multiplying a local-space vector
// by it rotates that vector into world space.
func LocalFrame(n Vec3) Mat3 {
	var rx Vec3
	if math.Abs(n.X) > math.Abs(n.Y) {
		rx = Vec3{-n.Z, 0, n.X}.Scale(1 / math.Sqrt(n.X*n.X+n.Z*n.Z))
	} else {
		rx = Vec3{0, n.Z, -n.Y}.Scale(1 / math.Sqrt(n.Y*n.Y+n.Z*n.Z))
	}
	ry := n.Cross(rx)
	return NewMat3FromColumns(rx, ry, n)
}
