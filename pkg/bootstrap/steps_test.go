package bootstrap

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/entrhq/pageshot/pkg/shellrc"
)

// installRecorder stubs playwright.Install and records every invocation.
type installRecorder struct {
	calls  []*playwright.RunOptions
	errOn  int // 1-based call index to fail on, 0 means never
	errVal error
}

func (r *installRecorder) install(options ...*playwright.RunOptions) error {
	var opts *playwright.RunOptions
	if len(options) > 0 {
		opts = options[0]
	}
	r.calls = append(r.calls, opts)
	if r.errOn > 0 && len(r.calls) == r.errOn {
		return r.errVal
	}
	return nil
}

type testEnv struct {
	baseDir string
	rcPath  string
	exe     string
	stdout  *bytes.Buffer
}

func newTestBootstrapper(t *testing.T, recorder *installRecorder) (*Bootstrapper, *testEnv) {
	t.Helper()

	baseDir := t.TempDir()
	env := &testEnv{
		baseDir: baseDir,
		rcPath:  filepath.Join(t.TempDir(), ".bashrc"),
		exe:     filepath.Join(baseDir, "pageshot"),
		stdout:  &bytes.Buffer{},
	}

	b := New(Options{
		BaseDir:    baseDir,
		Executable: env.exe,
		RCFile:     env.rcPath,
		Stdout:     env.stdout,
	})
	b.install = recorder.install
	return b, env
}

func writeTestManifest(t *testing.T, baseDir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(baseDir, ManifestFileName), []byte(content), 0o644))
}

func TestBootstrapSuccess(t *testing.T) {
	recorder := &installRecorder{}
	b, env := newTestBootstrapper(t, recorder)
	writeTestManifest(t, env.baseDir, "browsers: [chromium]\n")

	err := b.Run(context.Background(), nil)
	require.NoError(t, err)

	// Environment directory created under the base directory
	envDir := filepath.Join(env.baseDir, DefaultEnvDir)
	info, err := os.Stat(envDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Driver install first (browsers skipped), then the engine install,
	// both scoped to the environment directory
	require.Len(t, recorder.calls, 2)
	assert.Equal(t, envDir, recorder.calls[0].DriverDirectory)
	assert.True(t, recorder.calls[0].SkipInstallBrowsers)
	assert.Equal(t, envDir, recorder.calls[1].DriverDirectory)
	assert.False(t, recorder.calls[1].SkipInstallBrowsers)
	assert.Equal(t, []string{"chromium"}, recorder.calls[1].Browsers)

	// Alias expands to the absolute binary path plus the run subcommand
	store, err := shellrc.NewStore(env.rcPath)
	require.NoError(t, err)
	command, err := store.Get(DefaultAlias)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("%s run", env.exe), command)
	assert.True(t, filepath.IsAbs(strings.Fields(command)[0]))

	// Activation notice names the rc file
	assert.Contains(t, env.stdout.String(), "source "+env.rcPath)
}

func TestBootstrapRerunReusesEnvironmentAndUpdatesAlias(t *testing.T) {
	recorder := &installRecorder{}
	b, env := newTestBootstrapper(t, recorder)
	writeTestManifest(t, env.baseDir, "browsers: [chromium]\n")

	require.NoError(t, b.Run(context.Background(), nil))

	// Drop a marker into the environment to prove it is not recreated
	marker := filepath.Join(env.baseDir, DefaultEnvDir, "marker")
	require.NoError(t, os.WriteFile(marker, []byte("keep"), 0o644))

	second := New(Options{
		BaseDir:    env.baseDir,
		Executable: env.exe,
		RCFile:     env.rcPath,
		Stdout:     env.stdout,
	})
	second.install = recorder.install
	require.NoError(t, second.Run(context.Background(), nil))

	_, err := os.Stat(marker)
	assert.NoError(t, err, "environment directory must be reused, not recreated")

	// Exactly one alias line after two runs
	data, err := os.ReadFile(env.rcPath)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), "alias "+DefaultAlias+"="))
	assert.Contains(t, env.stdout.String(), "updated in")
}

func TestBootstrapMissingManifest(t *testing.T) {
	recorder := &installRecorder{}
	b, env := newTestBootstrapper(t, recorder)
	// no manifest written

	err := b.Run(context.Background(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrManifestMissing)

	// Precondition failure: nothing installed, no alias, no environment
	assert.Empty(t, recorder.calls)
	assert.NoFileExists(t, env.rcPath)
	assert.NoDirExists(t, filepath.Join(env.baseDir, DefaultEnvDir))
}

func TestBootstrapDriverInstallFailure(t *testing.T) {
	boom := errors.New("download failed")
	recorder := &installRecorder{errOn: 1, errVal: boom}
	b, env := newTestBootstrapper(t, recorder)
	writeTestManifest(t, env.baseDir, "")

	err := b.Run(context.Background(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "install driver")

	// Fail-fast: engine install never attempted, alias never written
	assert.Len(t, recorder.calls, 1)
	assert.NoFileExists(t, env.rcPath)

	// Partial state is left in place, not rolled back
	assert.DirExists(t, filepath.Join(env.baseDir, DefaultEnvDir))
}

func TestBootstrapBrowserInstallFailure(t *testing.T) {
	boom := errors.New("network unreachable")
	recorder := &installRecorder{errOn: 2, errVal: boom}
	b, env := newTestBootstrapper(t, recorder)
	writeTestManifest(t, env.baseDir, "")

	err := b.Run(context.Background(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)

	assert.Len(t, recorder.calls, 2)
	assert.NoFileExists(t, env.rcPath)
}

func TestBootstrapUnwritableRCFile(t *testing.T) {
	recorder := &installRecorder{}
	b, env := newTestBootstrapper(t, recorder)
	writeTestManifest(t, env.baseDir, "")

	// An rc path that is a directory makes the alias write fail after the
	// environment has been fully provisioned
	require.NoError(t, os.MkdirAll(env.rcPath, 0o755))

	err := b.Run(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "register alias")

	// Usable-but-incomplete: installs completed, alias absent
	assert.Len(t, recorder.calls, 2)
	assert.DirExists(t, filepath.Join(env.baseDir, DefaultEnvDir))
}

func TestBootstrapStepOrderReported(t *testing.T) {
	recorder := &installRecorder{}
	b, env := newTestBootstrapper(t, recorder)
	writeTestManifest(t, env.baseDir, "")

	var names []string
	err := b.Run(context.Background(), func(r StepResult) { names = append(names, r.Name) })
	require.NoError(t, err)

	assert.Equal(t, []string{
		"resolve base directory",
		"load manifest",
		"prepare environment",
		"install driver",
		"install browsers",
		"register alias",
		"activation notice",
	}, names)
}

func TestBootstrapManifestAliasOverride(t *testing.T) {
	recorder := &installRecorder{}
	b, env := newTestBootstrapper(t, recorder)
	writeTestManifest(t, env.baseDir, "alias: shots\n")

	require.NoError(t, b.Run(context.Background(), nil))

	store, err := shellrc.NewStore(env.rcPath)
	require.NoError(t, err)
	command, err := store.Get("shots")
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("%s run", env.exe), command)
}
