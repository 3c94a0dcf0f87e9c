package sceneio

import (
	"fmt"

	"github.com/rngbrew/pathtracer/pkg/lighting"
	"github.com/rngbrew/pathtracer/pkg/vecmath"
)

// BuildLights converts the configuration document's tagged-union light
// list into concrete lighting.Light values.
func BuildLights(configs []LightConfig) ([]lighting.Light, error) {
	lights := make([]lighting.Light, 0, len(configs))
	for i, lc := range configs {
		light, err := buildLight(lc)
		if err != nil {
			return nil, fmt.Errorf("%w: light %d: %v", ErrConfigLoad, i, err)
		}
		lights = append(lights, light)
	}
	return lights, nil
}

func buildLight(lc LightConfig) (lighting.Light, error) {
	switch lc.Type {
	case "ambient":
		return lighting.AmbientLight{Color: toVec3(lc.Color)}, nil
	case "point":
		return lighting.NewPointLight(toVec3(lc.Color), toVec3(lc.Pos)), nil
	case "area":
		v0 := toVec3(lc.Vertex[0])
		v1 := toVec3(lc.Vertex[1])
		v2 := toVec3(lc.Vertex[2])
		return lighting.NewAreaLight(v0, v1, v2, toVec3(lc.Normal), toVec3(lc.Power)), nil
	default:
		return nil, fmt.Errorf("unknown light type %q", lc.Type)
	}
}

func toVec3(v Vec3Config) vecmath.Vec3 {
	return vecmath.NewVec3(v.X, v.Y, v.Z)
}
