package application

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/gdnkit/gdnkit/internal/domain"
)

// Env looks up an environment variable, reporting whether it was set.
// Injected so configuration fallbacks are testable.
type Env func(key string) (string, bool)

// GenerateService resolves configuration and synchronizes the manifest
// and class descriptor files to disk. It is the only component with side
// effects.
type GenerateService struct {
	store  domain.ResourceStore
	lookup Env
}

func NewGenerateService(store domain.ResourceStore, lookup Env) *GenerateService {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	return &GenerateService{store: store, lookup: lookup}
}

// ResolveLayout turns raw configuration into a canonical ProjectLayout.
// Fallback order per key: explicit value, then environment. Required
// keys without a fallback hit are fatal configuration errors.
func (g *GenerateService) ResolveLayout(cfg domain.Config) (domain.ProjectLayout, error) {
	var layout domain.ProjectLayout

	if cfg.ProjectRoot == "" {
		return layout, &domain.ConfigError{Key: "project_root", Reason: "not set"}
	}
	root, err := canonicalize(cfg.ProjectRoot)
	if err != nil {
		return layout, err
	}

	libName := cfg.LibName
	if libName == "" {
		libName, _ = g.lookup("CARGO_PKG_NAME")
	}
	if libName == "" {
		return layout, &domain.ConfigError{Key: "lib_name", Reason: "not set and CARGO_PKG_NAME is unset"}
	}

	artifact := cfg.ArtifactRoot
	if artifact == "" {
		artifact, _ = g.lookup("CARGO_TARGET_DIR")
	}
	if artifact == "" {
		// Under a build script, OUT_DIR is <target>/<profile>/build/<crate>/out.
		if outDir, ok := g.lookup("OUT_DIR"); ok {
			artifact = filepath.Join(outDir, "..", "..", "..", "..")
		}
	}
	if artifact == "" {
		return layout, &domain.ConfigError{Key: "target_dir", Reason: "not set and neither CARGO_TARGET_DIR nor OUT_DIR is set"}
	}
	if !filepath.IsAbs(artifact) {
		artifact = filepath.Join(root, artifact)
	}
	artifactRoot, err := canonicalize(artifact)
	if err != nil {
		return layout, err
	}

	profileStr := cfg.Profile
	if profileStr == "" {
		profileStr, _ = g.lookup("PROFILE")
	}
	if profileStr == "" {
		return layout, &domain.ConfigError{Key: "profile", Reason: "not set and PROFILE is unset"}
	}
	profile, err := domain.ParseProfile(profileStr)
	if err != nil {
		return layout, err
	}

	outputDir := cfg.OutputDir
	if outputDir == "" {
		outputDir = filepath.Join(root, "native")
	} else if !filepath.IsAbs(outputDir) {
		outputDir = filepath.Join(root, outputDir)
	}

	layout = domain.ProjectLayout{
		ProjectRoot:  root,
		OutputDir:    outputDir,
		ArtifactRoot: artifactRoot,
		LibName:      libName,
		Profile:      profile,
	}
	return layout, nil
}

// Generate writes the manifest and one descriptor per discovered class.
// Existing files are left untouched so user edits survive regeneration.
// Writes are independent; the first I/O failure is surfaced without
// rolling back earlier writes, and a rerun completes the remainder.
func (g *GenerateService) Generate(layout domain.ProjectLayout, classes domain.ClassSet) (*domain.GenerateReport, error) {
	if err := g.store.MkdirAll(layout.OutputDir); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrWrite, layout.OutputDir, err)
	}
	// The output dir exists now; canonicalize so descriptor paths
	// relativize cleanly against the project root.
	outputDir, err := canonicalize(layout.OutputDir)
	if err != nil {
		return nil, err
	}
	layout.OutputDir = outputDir

	report := &domain.GenerateReport{Manifest: layout.ManifestPath()}

	if !g.store.Exists(report.Manifest) {
		prefix, artifactPath := domain.Relativize(layout.ArtifactRoot, layout.ProjectRoot)
		binaries := domain.BinaryPaths(artifactPath, layout.Profile, layout.LibName)
		content := domain.RenderManifest(prefix, binaries)
		if err := g.store.WriteFile(report.Manifest, []byte(content)); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", domain.ErrWrite, report.Manifest, err)
		}
		report.ManifestWritten = true
	}

	prefix, manifestPath := domain.Relativize(report.Manifest, layout.ProjectRoot)

	names := make([]string, 0, len(classes))
	for name := range classes {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		result := domain.DescriptorResult{Class: name, Path: layout.DescriptorPath(name)}
		if !g.store.Exists(result.Path) {
			content := domain.RenderClassDescriptor(prefix, manifestPath, name)
			if err := g.store.WriteFile(result.Path, []byte(content)); err != nil {
				return nil, fmt.Errorf("%w: %s: %v", domain.ErrWrite, result.Path, err)
			}
			result.Written = true
		}
		report.Descriptors = append(report.Descriptors, result)
	}

	return report, nil
}

func canonicalize(p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", domain.ErrCanonicalize, p, err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", domain.ErrCanonicalize, abs, err)
	}
	return resolved, nil
}
