package geom

import "github.com/rngbrew/pathtracer/pkg/vecmath"

// Mesh owns a sequence of faces sharing a default material id, plus the
// bounding box covering them all.
type Mesh struct {
	Faces             []Face
	DefaultMaterialID int
	bounds            vecmath.AABB
}

// NewMesh builds a Mesh from a set of faces, dropping degenerate
// (near-zero-area) ones; the drop count is returned so the caller can log
// it rather than fail the load.
func NewMesh(faces []Face, defaultMaterialID int) (mesh Mesh, dropped int) {
	bounds := vecmath.EmptyAABB()
	kept := make([]Face, 0, len(faces))
	for _, f := range faces {
		if f.IsDegenerate() {
			dropped++
			continue
		}
		bounds = bounds.Union(f.Bounds())
		kept = append(kept, f)
	}
	return Mesh{Faces: kept, DefaultMaterialID: defaultMaterialID, bounds: bounds}, dropped
}

// Bounds returns the mesh's cached bounding box.
func (m Mesh) Bounds() vecmath.AABB { return m.bounds }
