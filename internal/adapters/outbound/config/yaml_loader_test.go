package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appconfig "github.com/gdnkit/gdnkit/internal/adapters/outbound/config"
	"github.com/gdnkit/gdnkit/internal/domain"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".gdnkit.yaml"), []byte(content), 0644))
}

func TestYAMLLoader_MissingFileReturnsZeroConfig(t *testing.T) {
	dir := t.TempDir()

	cfg, err := appconfig.New().Load(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.FileConfig{}, cfg)
}

func TestYAMLLoader_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
lib_name: my-lib
target_dir: /build/target
output_dir: godot/native
profile: release
exclude_paths:
  - examples
`)

	cfg, err := appconfig.New().Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "my-lib", cfg.LibName)
	assert.Equal(t, "/build/target", cfg.TargetDir)
	assert.Equal(t, "godot/native", cfg.OutputDir)
	assert.Equal(t, "release", cfg.Profile)
	assert.Equal(t, []string{"examples"}, cfg.ExcludePaths)
}

func TestYAMLLoader_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{{{invalid yaml`)

	_, err := appconfig.New().Load(dir)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parsing .gdnkit.yaml")
}

func TestYAMLLoader_InvalidProfile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `profile: bench`)

	_, err := appconfig.New().Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid .gdnkit.yaml")
	assert.Contains(t, err.Error(), "bench")
}
