package sceneio

import (
	"fmt"
	"strings"

	"github.com/g3n/engine/loader/obj"

	"github.com/rngbrew/pathtracer/pkg/geom"
	"github.com/rngbrew/pathtracer/pkg/scenegraph"
	"github.com/rngbrew/pathtracer/pkg/tracelog"
	"github.com/rngbrew/pathtracer/pkg/vecmath"
)

// LoadMeshes parses an OBJ file (and its companion MTL, resolved by the
// decoder from the OBJ's mtllib directive) into the data model of this
// module: one geom.Mesh per OBJ object, and the flat material table each
// face's material id indexes into.
func LoadMeshes(objPath string, logger tracelog.Logger) ([]geom.Mesh, []scenegraph.Material, error) {
	dec, err := obj.Decode(objPath, "")
	if err != nil {
		return nil, nil, fmt.Errorf("%w: decoding %s: %v", ErrAssetLoad, objPath, err)
	}

	materials, materialIndex := convertMaterials(dec)

	var meshes []geom.Mesh
	totalDropped := 0
	for _, object := range dec.Objects {
		faces, err := convertFaces(dec, &object, materialIndex)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: object %s in %s: %v", ErrAssetLoad, object.Name, objPath, err)
		}

		mesh, dropped := geom.NewMesh(faces, defaultMaterialID(materialIndex, object.Name))
		totalDropped += dropped
		meshes = append(meshes, mesh)
	}

	if totalDropped > 0 && logger != nil {
		logger.Warnw("dropped degenerate faces during mesh load", "count", totalDropped, "path", objPath)
	}

	return meshes, materials, nil
}

// convertMaterials flattens the decoder's named-material map into an
// index-addressable slice, carrying only the ambient/diffuse/specular
// color triples into scenegraph.Material (texture maps are a Non-goal).
func convertMaterials(dec *obj.Decoder) ([]scenegraph.Material, map[string]int) {
	index := make(map[string]int, len(dec.Materials))
	materials := make([]scenegraph.Material, 0, len(dec.Materials))
	for name, mat := range dec.Materials {
		index[name] = len(materials)
		materials = append(materials, scenegraph.Material{
			Ambient:  vecmath.NewVec3(float64(mat.Ambient.R), float64(mat.Ambient.G), float64(mat.Ambient.B)),
			Diffuse:  vecmath.NewVec3(float64(mat.Diffuse.R), float64(mat.Diffuse.G), float64(mat.Diffuse.B)),
			Specular: vecmath.NewVec3(float64(mat.Specular.R), float64(mat.Specular.G), float64(mat.Specular.B)),
		})
	}
	return materials, index
}

func defaultMaterialID(index map[string]int, objectName string) int {
	if id, ok := index[objectName]; ok {
		return id
	}
	return 0
}

// convertFaces walks the decoder's flat position/index/material-name
// buffers for one object and builds Face values, letting geom.NewFace
// derive the normal from winding order (OBJ per-face normals are not
// carried through — this module's geometry is purely the triangle's own
// plane normal).
func convertFaces(dec *obj.Decoder, object *obj.Object, materialIndex map[string]int) ([]geom.Face, error) {
	faces := make([]geom.Face, 0, len(object.Faces))
	for _, f := range object.Faces {
		if len(f.Vertices) != 3 {
			return nil, fmt.Errorf("non-triangular face with %d vertices (mesh must be triangulated)", len(f.Vertices))
		}
		v0 := vertexAt(dec, f.Vertices[0])
		v1 := vertexAt(dec, f.Vertices[1])
		v2 := vertexAt(dec, f.Vertices[2])

		materialID := defaultMaterialID(materialIndex, object.Name)
		if id, ok := materialIndex[strings.TrimSpace(f.Material)]; ok {
			materialID = id
		}
		faces = append(faces, geom.NewFace(v0, v1, v2, materialID))
	}
	return faces, nil
}

func vertexAt(dec *obj.Decoder, index int) vecmath.Vec3 {
	base := index * 3
	return vecmath.NewVec3(
		float64(dec.Vertices[base]),
		float64(dec.Vertices[base+1]),
		float64(dec.Vertices[base+2]),
	)
}
