package scenegraph

import (
	"math"

	"github.com/rngbrew/pathtracer/pkg/bvh"
	"github.com/rngbrew/pathtracer/pkg/camera"
	"github.com/rngbrew/pathtracer/pkg/geom"
	"github.com/rngbrew/pathtracer/pkg/lighting"
	"github.com/rngbrew/pathtracer/pkg/vecmath"
)

// Scene owns every piece of static, read-only state a render pass needs:
// meshes, materials, lights, the BVH over all faces, the extracted area
// lights, the camera, and the light sampler built from the lights. Once
// built, a Scene is immutable and safe to share across render workers.
type Scene struct {
	Meshes    []geom.Mesh
	Materials []Material
	Camera    camera.Camera
	Sampler   *lighting.Sampler

	faces          []geom.Face // flattened, index-aligned with faceBVH's input
	faceBVH        *bvh.BVH
	areaLights     []lighting.AreaLight
	areaLightFaces []geom.Face // precomputed once, index-aligned with areaLights
}

// Build assembles a Scene from its loaded parts, flattening all mesh faces
// into a single BVH and extracting the area-light geometry for direct
// intersection.
func Build(meshes []geom.Mesh, materials []Material, lights []lighting.Light, cam camera.Camera, usePowerSampling bool) *Scene {
	var faces []geom.Face
	for _, m := range meshes {
		faces = append(faces, m.Faces...)
	}

	bounds := make([]vecmath.AABB, len(faces))
	for i, f := range faces {
		bounds[i] = f.Bounds()
	}

	var sampler *lighting.Sampler
	if usePowerSampling {
		sampler = lighting.NewPowerSampler(lights)
	} else {
		sampler = lighting.NewUniformSampler(lights)
	}

	areaLights := sampler.GeometricLights()
	areaLightFaces := make([]geom.Face, len(areaLights))
	for i, light := range areaLights {
		areaLightFaces[i] = geom.NewFaceWithNormal(light.V0, light.V1, light.V2, light.Normal, 0)
	}

	return &Scene{
		Meshes:         meshes,
		Materials:      materials,
		Camera:         cam,
		Sampler:        sampler,
		faces:          faces,
		faceBVH:        bvh.Build(bounds),
		areaLights:     areaLights,
		areaLightFaces: areaLightFaces,
	}
}

// materialFor resolves a face's material reference, falling back to the
// mesh's default material id convention by storing the resolved id
// directly on the face at load time (see sceneio).
func (s *Scene) materialFor(materialID int) *Material {
	if materialID < 0 || materialID >= len(s.Materials) {
		return nil
	}
	return &s.Materials[materialID]
}

// Trace computes the nearest intersection along ray, considering both
// ordinary geometry (via the BVH) and the scene's area lights directly
// (they are both geometry and light). The closer of the two wins; ties
// resolve to geometry's resolved material rather than the light.
func (s *Scene) Trace(ray vecmath.Ray) (Intersection, bool) {
	bestT := math.Inf(1)
	var bestHit geom.Hit
	bestFaceIdx := -1

	for _, r := range s.faceBVH.Candidates(ray) {
		for i := r.Start; i < r.End; i++ {
			faceIdx := s.faceBVH.OrderedPrims[i]
			hit, ok := s.faces[faceIdx].Intersect(ray)
			if ok && hit.T < bestT {
				bestT = hit.T
				bestHit = hit
				bestFaceIdx = faceIdx
			}
		}
	}

	bestLightT := math.Inf(1)
	var bestLightHit geom.Hit
	bestLightIdx := -1
	for idx, face := range s.areaLightFaces {
		hit, ok := face.Intersect(ray)
		if ok && hit.T < bestLightT {
			bestLightT = hit.T
			bestLightHit = hit
			bestLightIdx = idx
		}
	}

	if bestFaceIdx == -1 && bestLightIdx == -1 {
		return Intersection{}, false
	}

	if bestLightIdx != -1 && bestLightT < bestT {
		return Intersection{
			Point:             bestLightHit.Point,
			GeometricNormal:   bestLightHit.GeometricNormal,
			ShadingNormal:     bestLightHit.ShadingNormal,
			WOutgoing:         ray.Direction.Negate(),
			Depth:             bestLightT,
			HasLightIntensity: true,
			LightIntensity:    s.areaLights[bestLightIdx].EmittedPower,
		}, true
	}

	face := s.faces[bestFaceIdx]
	return Intersection{
		Point:           bestHit.Point,
		GeometricNormal: bestHit.GeometricNormal,
		ShadingNormal:   bestHit.ShadingNormal,
		WOutgoing:       ray.Direction.Negate(),
		Depth:           bestT,
		Material:        s.materialFor(face.MaterialID),
	}, true
}

// Visibility reports whether ray is unobstructed over (epsilon, maxT).
// Area lights are deliberately NOT tested here — a shadow ray aimed at a
// light is meant to reach it, not be occluded by the light's own surface.
func (s *Scene) Visibility(ray vecmath.Ray, maxT float64) bool {
	limit := maxT - vecmath.Epsilon
	for _, r := range s.faceBVH.Candidates(ray) {
		for i := r.Start; i < r.End; i++ {
			faceIdx := s.faceBVH.OrderedPrims[i]
			if hit, ok := s.faces[faceIdx].Intersect(ray); ok && hit.T < limit {
				return false
			}
		}
	}
	return true
}
