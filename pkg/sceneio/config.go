// Package sceneio is the set of external collaborators this module treats
// as loaders/sinks: configuration, mesh/material parsing, and image
// encoding.
package sceneio

import (
	"fmt"

	"github.com/spf13/viper"
)

// Vec3Config is the JSON shape of a 3-component vector in the
// configuration document.
type Vec3Config struct {
	X, Y, Z float64
}

// CameraConfig mirrors the configuration document's camera block.
type CameraConfig struct {
	Width, Height int
	AngleX        float64 `mapstructure:"angle_x"`
	AngleY        float64 `mapstructure:"angle_y"`
	Position      Vec3Config
	Up            Vec3Config
	LookAt        Vec3Config `mapstructure:"look_at"`
}

// LightConfig is the tagged-union shape of one entry in the lights list.
// Only the fields relevant to Type are populated by the loader.
type LightConfig struct {
	Type   string
	Color  Vec3Config
	Pos    Vec3Config
	Vertex [3]Vec3Config
	Power  Vec3Config
	Normal Vec3Config
}

// Configuration is the top-level document described in the external
// interfaces section: model file, sample count, camera, lights, output.
type Configuration struct {
	ModelFile       string `mapstructure:"model_file"`
	SamplesPerPixel int    `mapstructure:"samples_per_pixel"`
	Camera          CameraConfig
	Lights          []LightConfig
	OutputFile      string `mapstructure:"output_file"`
}

const defaultOutputFile = "output.png"

// LoadConfiguration reads and unmarshals the configuration document at
// path using viper (JSON/YAML/TOML auto-detected by extension). Returns a
// ConfigLoad-kind error wrapping the underlying cause.
func LoadConfiguration(path string) (Configuration, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("output_file", defaultOutputFile)

	if err := v.ReadInConfig(); err != nil {
		return Configuration{}, fmt.Errorf("%w: reading %s: %v", ErrConfigLoad, path, err)
	}

	var cfg Configuration
	if err := v.Unmarshal(&cfg); err != nil {
		return Configuration{}, fmt.Errorf("%w: decoding %s: %v", ErrConfigLoad, path, err)
	}
	if cfg.OutputFile == "" {
		cfg.OutputFile = defaultOutputFile
	}
	if cfg.SamplesPerPixel <= 0 {
		return Configuration{}, fmt.Errorf("%w: samples_per_pixel must be positive, got %d", ErrConfigLoad, cfg.SamplesPerPixel)
	}

	return cfg, nil
}
