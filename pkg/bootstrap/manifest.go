package bootstrap

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ManifestFileName is the dependency manifest expected next to the binary.
const ManifestFileName = "pageshot.yaml"

// ErrManifestMissing reports an absent manifest file, a precondition failure
// that aborts the bootstrap before any install step runs.
var ErrManifestMissing = errors.New("bootstrap: manifest not found")

// Manifest declares what the bootstrapper installs and how the alias is
// registered. The file is read-only input; the bootstrapper never rewrites it.
type Manifest struct {
	// Browsers lists the browser engines to install, one per entry.
	Browsers []string `yaml:"browsers"`

	// Alias is the shell alias name registered for the run command.
	Alias string `yaml:"alias"`

	// RCFile overrides the shell rc file the alias is written to.
	// Empty means ~/.bashrc.
	RCFile string `yaml:"rc_file"`

	// EnvDir overrides the environment directory name under the base
	// directory. Empty means ".pwenv".
	EnvDir string `yaml:"env_dir"`
}

// Defaults applied when the manifest omits a field.
const (
	DefaultAlias  = "pageshot"
	DefaultEnvDir = ".pwenv"
)

var defaultBrowsers = []string{"chromium", "firefox"}

// LoadManifest reads and validates the manifest at path.
// Returns ErrManifestMissing when the file does not exist.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrManifestMissing, path)
	}
	if err != nil {
		return nil, fmt.Errorf("bootstrap: read manifest: %w", err)
	}

	manifest := &Manifest{}
	if err := yaml.Unmarshal(data, manifest); err != nil {
		return nil, fmt.Errorf("bootstrap: parse manifest %s: %w", path, err)
	}

	manifest.applyDefaults()
	if err := manifest.Validate(); err != nil {
		return nil, err
	}
	return manifest, nil
}

func (m *Manifest) applyDefaults() {
	if len(m.Browsers) == 0 {
		m.Browsers = append([]string(nil), defaultBrowsers...)
	}
	if m.Alias == "" {
		m.Alias = DefaultAlias
	}
	if m.EnvDir == "" {
		m.EnvDir = DefaultEnvDir
	}
}

// Validate checks the manifest for values the installer cannot act on.
func (m *Manifest) Validate() error {
	known := map[string]bool{
		"chromium": true,
		"firefox":  true,
		"webkit":   true,
	}
	for _, browser := range m.Browsers {
		if !known[browser] {
			return fmt.Errorf("bootstrap: unknown browser engine %q in manifest", browser)
		}
	}
	return nil
}
