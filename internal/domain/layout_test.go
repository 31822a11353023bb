package domain_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gdnkit/gdnkit/internal/domain"
)

func TestParseProfile(t *testing.T) {
	debug, err := domain.ParseProfile("debug")
	require.NoError(t, err)
	assert.Equal(t, domain.ProfileDebug, debug)

	release, err := domain.ParseProfile("release")
	require.NoError(t, err)
	assert.Equal(t, domain.ProfileRelease, release)

	_, err = domain.ParseProfile("bench")
	require.Error(t, err)
	var cfgErr *domain.ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "profile", cfgErr.Key)
	assert.Contains(t, err.Error(), "bench")
}

func TestRelativize_InsideRoot(t *testing.T) {
	root := filepath.Join("/proj")
	target := filepath.Join("/proj", "target")

	prefix, p := domain.Relativize(target, root)

	assert.Equal(t, domain.ResPrefix, prefix)
	assert.Equal(t, "target", p)
}

func TestRelativize_NestedInsideRoot(t *testing.T) {
	root := filepath.Join("/proj")
	target := filepath.Join("/proj", "native", "out")

	prefix, p := domain.Relativize(target, root)

	assert.Equal(t, domain.ResPrefix, prefix)
	assert.Equal(t, "native/out", p)
}

func TestRelativize_OutsideRoot(t *testing.T) {
	root := filepath.Join("/proj")
	target := filepath.Join("/tmp", "xyz", "target")

	prefix, p := domain.Relativize(target, root)

	assert.Equal(t, "", prefix)
	assert.Equal(t, "/tmp/xyz/target", p)
}

func TestRelativize_SiblingWithSharedNamePrefix(t *testing.T) {
	// /proj-extra is not inside /proj even though the name overlaps.
	prefix, p := domain.Relativize(filepath.Join("/proj-extra", "target"), filepath.Join("/proj"))

	assert.Equal(t, "", prefix)
	assert.Equal(t, "/proj-extra/target", p)
}

func TestRelativize_RootItself(t *testing.T) {
	prefix, p := domain.Relativize(filepath.Join("/proj"), filepath.Join("/proj"))

	assert.Equal(t, domain.ResPrefix, prefix)
	assert.Equal(t, ".", p)
}

func TestBinaryPaths_DesktopPlatforms(t *testing.T) {
	b := domain.BinaryPaths("target", domain.ProfileDebug, "generator_test")

	assert.Equal(t, "target/debug/libgenerator_test.so", b.X11)
	assert.Equal(t, "target/debug/libgenerator_test.dylib", b.OSX)
	assert.Equal(t, "target/debug/generator_test.dll", b.Windows)
}

func TestBinaryPaths_AndroidTriples(t *testing.T) {
	b := domain.BinaryPaths("target", domain.ProfileRelease, "mylib")

	assert.Equal(t, "target/armv7-linux-androideabi/release/libmylib.so", b.AndroidArmv7)
	assert.Equal(t, "target/aarch64-linux-android/release/libmylib.so", b.AndroidArm64)
	assert.Equal(t, "target/i686-linux-android/release/libmylib.so", b.AndroidX86)
	assert.Equal(t, "target/x86_64-linux-android/release/libmylib.so", b.AndroidX86_64)
}

func TestBinaryPaths_HyphenNormalization(t *testing.T) {
	b := domain.BinaryPaths("target", domain.ProfileDebug, "my-lib")

	assert.Equal(t, "target/debug/libmy_lib.so", b.X11)
	assert.Equal(t, "target/debug/my_lib.dll", b.Windows)
}

func TestBinaryPaths_AbsoluteBase(t *testing.T) {
	b := domain.BinaryPaths("/tmp/xyz/target", domain.ProfileDebug, "generator_test")

	assert.Equal(t, "/tmp/xyz/target/debug/libgenerator_test.so", b.X11)
}
