package sceneio

import "errors"

// Error kinds, wrapped with fmt.Errorf("%w: ...", ErrX) at the call sites
// that detect them. ConfigLoad, AssetLoad and InvalidOutput are fatal and
// propagate to main as values; GeometryDegenerate is not an error value:
// such faces are dropped by geom.NewMesh and the count is logged by
// LoadMeshes; SamplingEmpty is not an error at all —
// the light sampler simply reports no positional lights.
var (
	ErrConfigLoad    = errors.New("config load")
	ErrAssetLoad     = errors.New("asset load")
	ErrInvalidOutput = errors.New("invalid output")
)
