package domain

import "path/filepath"

// Manifest and descriptor file extensions understood by the editor.
const (
	ManifestExt   = ".gdnlib"
	DescriptorExt = ".gdns"
)

// Config holds the raw, pre-canonicalization configuration of a
// generation run. Values come from flags overlaid on the project config
// file overlaid on environment fallbacks (see application.ResolveLayout).
type Config struct {
	ProjectRoot  string
	OutputDir    string // empty: defaults to <ProjectRoot>/native
	ArtifactRoot string
	LibName      string
	Profile      string
}

// FileConfig is the subset of configuration a project may pin in its
// .gdnkit.yaml file.
type FileConfig struct {
	LibName      string   `yaml:"lib_name"`
	TargetDir    string   `yaml:"target_dir"`
	OutputDir    string   `yaml:"output_dir"`
	Profile      string   `yaml:"profile"`
	ExcludePaths []string `yaml:"exclude_paths"`
}

// Validate checks the fields a file config is allowed to constrain.
func (c FileConfig) Validate() error {
	if c.Profile != "" {
		if _, err := ParseProfile(c.Profile); err != nil {
			return err
		}
	}
	return nil
}

// ManifestPath returns the manifest's target path inside the output
// directory. The configured library name is used verbatim; only binary
// filenames get hyphen normalization.
func (l ProjectLayout) ManifestPath() string {
	return filepath.Join(l.OutputDir, l.LibName+ManifestExt)
}

// DescriptorPath returns the class descriptor's target path for name.
func (l ProjectLayout) DescriptorPath(name string) string {
	return filepath.Join(l.OutputDir, name+DescriptorExt)
}
