package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gdnkit/gdnkit/internal/adapters/inbound/cli"
)

// newProject creates a minimal crate with one NativeClass type and a
// target directory, returning the root.
func newProject(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "target"), 0755))
	source := `
#[derive(NativeClass)]
pub struct Player;

#[derive(Debug)]
struct Plain;
`
	require.NoError(t, os.WriteFile(filepath.Join(root, "src", "lib.rs"), []byte(source), 0644))
	return root
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestScanCommand_JSON(t *testing.T) {
	root := newProject(t)

	out, err := run(t, "scan", root, "--json")
	require.NoError(t, err)

	assert.Contains(t, out, `"Player"`)
	assert.NotContains(t, out, `"Plain"`)
}

func TestScanCommand_DefaultTUI(t *testing.T) {
	root := newProject(t)

	out, err := run(t, "scan", root)
	require.NoError(t, err)

	assert.Contains(t, out, "Player")
	assert.Contains(t, out, "1 class(es)")
}

func TestScanCommand_ParseErrorFailsBuild(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "lib.rs"), []byte("fn broken( {"), 0644))

	_, err := run(t, "scan", root)
	assert.Error(t, err)
}

func TestGenerateCommand_WritesDescriptors(t *testing.T) {
	root := newProject(t)

	out, err := run(t, "generate", root,
		"--lib-name", "my-lib",
		"--target-dir", filepath.Join(root, "target"),
		"--profile", "debug")
	require.NoError(t, err)

	assert.Contains(t, out, "my-lib.gdnlib")
	assert.Contains(t, out, "Player.gdns")

	manifest, err := os.ReadFile(filepath.Join(root, "native", "my-lib.gdnlib"))
	require.NoError(t, err)
	assert.Contains(t, string(manifest), "res://target/debug/libmy_lib.so")

	descriptor, err := os.ReadFile(filepath.Join(root, "native", "Player.gdns"))
	require.NoError(t, err)
	assert.Contains(t, string(descriptor), `class_name = "Player"`)
}

func TestGenerateCommand_JSONReport(t *testing.T) {
	root := newProject(t)

	out, err := run(t, "generate", root,
		"--lib-name", "my-lib",
		"--target-dir", filepath.Join(root, "target"),
		"--profile", "debug",
		"--json")
	require.NoError(t, err)

	assert.Contains(t, out, `"manifest_written": true`)
	assert.Contains(t, out, `"class": "Player"`)
}

func TestGenerateCommand_MissingProfileFails(t *testing.T) {
	root := newProject(t)
	// No --profile flag, no .gdnkit.yaml, and PROFILE must not leak in
	// from the test environment.
	t.Setenv("PROFILE", "")
	os.Unsetenv("PROFILE")

	_, err := run(t, "generate", root,
		"--lib-name", "my-lib",
		"--target-dir", filepath.Join(root, "target"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "profile")
}

func TestGenerateCommand_ConfigFileSuppliesDefaults(t *testing.T) {
	root := newProject(t)
	cfgContent := "lib_name: cfg-lib\ntarget_dir: target\nprofile: release\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, ".gdnkit.yaml"), []byte(cfgContent), 0644))

	_, err := run(t, "generate", root)
	require.NoError(t, err)

	manifest, err := os.ReadFile(filepath.Join(root, "native", "cfg-lib.gdnlib"))
	require.NoError(t, err)
	assert.Contains(t, string(manifest), "res://target/release/libcfg_lib.so")
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "gdnkit")
}
