package bootstrap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ManifestFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadManifestMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), ManifestFileName)

	_, err := LoadManifest(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrManifestMissing)
}

func TestLoadManifestDefaults(t *testing.T) {
	path := writeManifest(t, "")

	manifest, err := LoadManifest(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"chromium", "firefox"}, manifest.Browsers)
	assert.Equal(t, DefaultAlias, manifest.Alias)
	assert.Equal(t, DefaultEnvDir, manifest.EnvDir)
	assert.Empty(t, manifest.RCFile)
}

func TestLoadManifestExplicitValues(t *testing.T) {
	path := writeManifest(t, `
browsers:
  - chromium
alias: shots
rc_file: /home/user/.zshrc
env_dir: .playwright-env
`)

	manifest, err := LoadManifest(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"chromium"}, manifest.Browsers)
	assert.Equal(t, "shots", manifest.Alias)
	assert.Equal(t, "/home/user/.zshrc", manifest.RCFile)
	assert.Equal(t, ".playwright-env", manifest.EnvDir)
}

func TestLoadManifestUnknownBrowser(t *testing.T) {
	path := writeManifest(t, "browsers: [netscape]\n")

	_, err := LoadManifest(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "netscape")
}

func TestLoadManifestMalformed(t *testing.T) {
	path := writeManifest(t, "browsers: [unterminated\n")

	_, err := LoadManifest(path)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrManifestMissing)
}

func TestManifestValidate(t *testing.T) {
	tests := []struct {
		name     string
		browsers []string
		wantErr  bool
	}{
		{"all engines", []string{"chromium", "firefox", "webkit"}, false},
		{"single engine", []string{"webkit"}, false},
		{"unknown engine", []string{"chromium", "ie11"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &Manifest{Browsers: tt.browsers}
			err := m.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
