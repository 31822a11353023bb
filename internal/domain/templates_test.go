package domain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gdnkit/gdnkit/internal/domain"
)

func TestRenderManifest(t *testing.T) {
	binaries := domain.BinaryPaths("target", domain.ProfileDebug, "generator_test")
	manifest := domain.RenderManifest(domain.ResPrefix, binaries)

	assert.Contains(t, manifest, `X11.64="res://target/debug/libgenerator_test.so"`)
	assert.Contains(t, manifest, `OSX.64="res://target/debug/libgenerator_test.dylib"`)
	assert.Contains(t, manifest, `Windows.64="res://target/debug/generator_test.dll"`)
	assert.Contains(t, manifest, `Android.arm64-v8a="res://target/aarch64-linux-android/debug/libgenerator_test.so"`)

	assert.Contains(t, manifest, "[entry]")
	assert.Contains(t, manifest, "[dependencies]")
	assert.Contains(t, manifest, "[general]")
	assert.Contains(t, manifest, "singleton=false")
	assert.Contains(t, manifest, "load_once=true")
	assert.Contains(t, manifest, `symbol_prefix="godot_"`)
	assert.Contains(t, manifest, "reloadable=true")
}

func TestRenderManifest_EmptyPrefixKeepsAbsolutePaths(t *testing.T) {
	binaries := domain.BinaryPaths("/tmp/xyz/target", domain.ProfileDebug, "generator_test")
	manifest := domain.RenderManifest("", binaries)

	assert.Contains(t, manifest, `X11.64="/tmp/xyz/target/debug/libgenerator_test.so"`)
	assert.NotContains(t, manifest, "res://")
}

func TestRenderClassDescriptor(t *testing.T) {
	content := domain.RenderClassDescriptor(domain.ResPrefix, "native/mylib.gdnlib", "Player")

	assert.Contains(t, content, `[gd_resource type="NativeScript" load_steps=2 format=2]`)
	assert.Contains(t, content, `[ext_resource path="res://native/mylib.gdnlib" type="GDNativeLibrary" id=1]`)
	assert.Contains(t, content, `class_name = "Player"`)
	assert.Contains(t, content, `script_class_name = "Player"`)
	assert.Contains(t, content, "library = ExtResource( 1 )")
	assert.True(t, strings.HasSuffix(content, "\n"))
}

func TestRenderDeterministic(t *testing.T) {
	binaries := domain.BinaryPaths("target", domain.ProfileRelease, "a-b")

	assert.Equal(t,
		domain.RenderManifest(domain.ResPrefix, binaries),
		domain.RenderManifest(domain.ResPrefix, binaries))
	assert.Equal(t,
		domain.RenderClassDescriptor("", "/abs/native/a-b.gdnlib", "Test"),
		domain.RenderClassDescriptor("", "/abs/native/a-b.gdnlib", "Test"))
}
