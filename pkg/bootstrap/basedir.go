package bootstrap

import (
	"fmt"
	"os"
	"path/filepath"
)

// ResolveBaseDir returns the directory containing the running executable,
// with symlinks resolved. All bootstrap state (environment directory,
// manifest, fonts) lives relative to this directory, so invoking the binary
// via a relative path, a symlink, or an absolute path behaves identically
// regardless of the caller's working directory.
func ResolveBaseDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("bootstrap: resolve executable path: %w", err)
	}
	resolved, err := filepath.EvalSymlinks(exe)
	if err != nil {
		return "", fmt.Errorf("bootstrap: resolve symlinks for %s: %w", exe, err)
	}
	return filepath.Dir(resolved), nil
}

// ResolveExecutable returns the absolute, symlink-resolved path of the
// running binary. The registered alias embeds this path.
func ResolveExecutable() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("bootstrap: resolve executable path: %w", err)
	}
	resolved, err := filepath.EvalSymlinks(exe)
	if err != nil {
		return "", fmt.Errorf("bootstrap: resolve symlinks for %s: %w", exe, err)
	}
	return resolved, nil
}
