package domain

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"
)

// ResPrefix is the root-relative URI prefix the editor resolves against
// its own project root.
const ResPrefix = "res://"

// BuildProfile selects the artifact subdirectory of a build.
type BuildProfile string

const (
	ProfileDebug   BuildProfile = "debug"
	ProfileRelease BuildProfile = "release"
)

// ParseProfile converts a profile string to a BuildProfile. Anything
// other than "debug" or "release" is a configuration error.
func ParseProfile(s string) (BuildProfile, error) {
	switch s {
	case string(ProfileDebug):
		return ProfileDebug, nil
	case string(ProfileRelease):
		return ProfileRelease, nil
	default:
		return "", &ConfigError{Key: "profile", Reason: fmt.Sprintf("unrecognized value %q (want debug or release)", s)}
	}
}

// ProjectLayout is the resolved, canonicalized set of paths a generation
// run operates on. All paths are absolute with symlinks resolved.
type ProjectLayout struct {
	ProjectRoot  string
	OutputDir    string
	ArtifactRoot string
	LibName      string
	Profile      BuildProfile
}

// Relativize computes how base should be referenced from the project
// root at against. If base is contained in against, the result is the
// res:// prefix and the relative path; otherwise the prefix is empty and
// the path is base itself. The returned path always uses forward
// slashes, since the descriptor formats are OS-independent text.
func Relativize(base, against string) (prefix, p string) {
	rel, err := filepath.Rel(against, base)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", filepath.ToSlash(base)
	}
	return ResPrefix, filepath.ToSlash(rel)
}

// BinarySet maps each supported platform to the path of its compiled
// binary.
type BinarySet struct {
	X11           string
	OSX           string
	Windows       string
	AndroidArmv7  string
	AndroidArm64  string
	AndroidX86    string
	AndroidX86_64 string
}

// Android target triples, in the order the manifest lists them.
const (
	tripleAndroidArmv7 = "armv7-linux-androideabi"
	tripleAndroidArm64 = "aarch64-linux-android"
	tripleAndroidX86   = "i686-linux-android"
	tripleAndroidX8664 = "x86_64-linux-android"
)

// BinaryPaths returns the per-platform binary paths under artifactBase
// for the given profile. Hyphens in the library name are replaced with
// underscores, matching the toolchain's mangling of artifact filenames.
// artifactBase is expected to be slash-separated (see Relativize).
func BinaryPaths(artifactBase string, profile BuildProfile, libName string) BinarySet {
	name := strings.ReplaceAll(libName, "-", "_")
	mode := string(profile)

	so := fmt.Sprintf("lib%s.so", name)

	return BinarySet{
		X11:           path.Join(artifactBase, mode, so),
		OSX:           path.Join(artifactBase, mode, fmt.Sprintf("lib%s.dylib", name)),
		Windows:       path.Join(artifactBase, mode, fmt.Sprintf("%s.dll", name)),
		AndroidArmv7:  path.Join(artifactBase, tripleAndroidArmv7, mode, so),
		AndroidArm64:  path.Join(artifactBase, tripleAndroidArm64, mode, so),
		AndroidX86:    path.Join(artifactBase, tripleAndroidX86, mode, so),
		AndroidX86_64: path.Join(artifactBase, tripleAndroidX8664, mode, so),
	}
}
