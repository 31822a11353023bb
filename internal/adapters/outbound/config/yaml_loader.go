package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/gdnkit/gdnkit/internal/domain"
)

const fileName = ".gdnkit.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .gdnkit.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .gdnkit.yaml from projectPath. A missing file yields a zero
// config: every key can also come from flags or the environment.
func (l *YAMLLoader) Load(projectPath string) (domain.FileConfig, error) {
	data, err := os.ReadFile(filepath.Join(projectPath, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.FileConfig{}, nil
		}
		return domain.FileConfig{}, err
	}

	var cfg domain.FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.FileConfig{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}

	if err := cfg.Validate(); err != nil {
		return domain.FileConfig{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}

	return cfg, nil
}
