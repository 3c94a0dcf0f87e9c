package sceneio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `{
	"model_file": "scene.obj",
	"samples_per_pixel": 64,
	"camera": {
		"width": 640,
		"height": 480,
		"angle_x": 1.0471975512,
		"angle_y": 0.8726646259,
		"position": {"x": 0, "y": 1, "z": 5},
		"up": {"x": 0, "y": 1, "z": 0},
		"look_at": {"x": 0, "y": 0, "z": 0}
	},
	"lights": [
		{"type": "ambient", "color": {"x": 0.1, "y": 0.1, "z": 0.1}}
	],
	"output_file": "render.png"
}`

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "configuration.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestLoadConfigurationBindsSnakeCaseKeys(t *testing.T) {
	path := writeConfig(t, sampleConfig)

	cfg, err := LoadConfiguration(path)
	require.NoError(t, err)

	assert.Equal(t, "scene.obj", cfg.ModelFile)
	assert.Equal(t, 64, cfg.SamplesPerPixel)
	assert.Equal(t, 1.0471975512, cfg.Camera.AngleX)
	assert.Equal(t, 0.8726646259, cfg.Camera.AngleY)
	assert.Equal(t, 0.0, cfg.Camera.LookAt.X)
	assert.Equal(t, 5.0, cfg.Camera.Position.Z)
	assert.Equal(t, "render.png", cfg.OutputFile)
}

func TestLoadConfigurationDefaultsOutputFile(t *testing.T) {
	path := writeConfig(t, `{
		"model_file": "scene.obj",
		"samples_per_pixel": 1,
		"camera": {"width": 1, "height": 1, "angle_x": 1, "angle_y": 1}
	}`)

	cfg, err := LoadConfiguration(path)
	require.NoError(t, err)
	assert.Equal(t, defaultOutputFile, cfg.OutputFile)
}

func TestLoadConfigurationRejectsNonPositiveSamples(t *testing.T) {
	path := writeConfig(t, `{
		"model_file": "scene.obj",
		"samples_per_pixel": 0,
		"camera": {"width": 1, "height": 1, "angle_x": 1, "angle_y": 1}
	}`)

	_, err := LoadConfiguration(path)
	assert.ErrorIs(t, err, ErrConfigLoad)
}
