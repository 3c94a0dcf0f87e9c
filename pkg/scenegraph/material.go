// Package scenegraph owns the scene-level data: materials, meshes, lights,
// the BVH over all faces, and the trace/visibility queries shaders issue
// against it.
package scenegraph

import "github.com/rngbrew/pathtracer/pkg/vecmath"

// Material is the three-lobe (ambient/diffuse/specular) BRDF
// approximation. A component is "active" iff it is present and not
// exactly the zero vector — materials parsed from an OBJ/MTL file that
// never declare a specular term simply leave Specular at its zero value.
type Material struct {
	Ambient, Diffuse, Specular vecmath.Vec3
}

// ActiveSpecular reports whether the specular lobe contributes.
func (m Material) ActiveSpecular() bool { return !m.Specular.IsZero() }

// ActiveDiffuse reports whether the diffuse lobe contributes.
func (m Material) ActiveDiffuse() bool { return !m.Diffuse.IsZero() }
