// Package shellrc manages alias definitions in a user's shell rc file.
//
// The rc file is treated as a line-oriented store keyed by alias name:
// setting an alias that already exists rewrites the existing definition in
// place instead of appending a duplicate, so repeated bootstrap runs leave
// exactly one definition per alias. All other lines pass through untouched.
package shellrc

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var ErrNotFound = errors.New("shellrc: alias not found")

// Store reads and writes alias lines in a single shell rc file.
type Store struct {
	path string
}

// NewStore creates a store for the given rc file path.
// If path is empty, defaults to ~/.bashrc.
func NewStore(path string) (*Store, error) {
	if path == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("shellrc: failed to get home directory: %w", err)
		}
		path = filepath.Join(homeDir, ".bashrc")
	}
	return &Store{path: path}, nil
}

// Path returns the rc file path this store operates on.
func (s *Store) Path() string {
	return s.path
}

// Set writes the alias definition for name, replacing any existing
// definitions of the same name in place. It reports whether an existing
// definition was updated (false means the line was appended).
//
// A missing rc file is created. Writes are atomic via a temp file rename.
func (s *Store) Set(name, command string) (updated bool, err error) {
	if err := validateName(name); err != nil {
		return false, err
	}
	if strings.ContainsRune(command, '\n') {
		return false, fmt.Errorf("shellrc: alias command must be a single line")
	}

	lines, hadTrailingNewline, err := s.readLines()
	if err != nil {
		return false, err
	}

	definition := formatAlias(name, command)

	replaced := false
	out := make([]string, 0, len(lines)+1)
	for _, line := range lines {
		aliasName, ok := parseAliasName(line)
		if ok && aliasName == name {
			if !replaced {
				out = append(out, definition)
				replaced = true
			}
			// Later duplicates of the same alias are dropped so the file
			// converges to a single definition.
			continue
		}
		out = append(out, line)
	}

	if !replaced {
		out = append(out, definition)
		hadTrailingNewline = true
	}

	if err := s.writeLines(out, hadTrailingNewline); err != nil {
		return false, err
	}
	return replaced, nil
}

// Get returns the command an alias expands to, or ErrNotFound.
func (s *Store) Get(name string) (string, error) {
	if err := validateName(name); err != nil {
		return "", err
	}

	lines, _, err := s.readLines()
	if err != nil {
		return "", err
	}

	for _, line := range lines {
		aliasName, ok := parseAliasName(line)
		if !ok || aliasName != name {
			continue
		}
		return parseAliasCommand(line)
	}
	return "", ErrNotFound
}

// Remove deletes every definition of the alias and reports whether any
// definition existed.
func (s *Store) Remove(name string) (bool, error) {
	if err := validateName(name); err != nil {
		return false, err
	}

	lines, hadTrailingNewline, err := s.readLines()
	if err != nil {
		return false, err
	}

	removed := false
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		aliasName, ok := parseAliasName(line)
		if ok && aliasName == name {
			removed = true
			continue
		}
		out = append(out, line)
	}

	if !removed {
		return false, nil
	}

	if err := s.writeLines(out, hadTrailingNewline); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Store) readLines() (lines []string, hadTrailingNewline bool, err error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, true, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("shellrc: read %s: %w", s.path, err)
	}

	content := string(data)
	if content == "" {
		return nil, true, nil
	}

	hadTrailingNewline = strings.HasSuffix(content, "\n")
	content = strings.TrimSuffix(content, "\n")
	return strings.Split(content, "\n"), hadTrailingNewline, nil
}

func (s *Store) writeLines(lines []string, trailingNewline bool) error {
	content := strings.Join(lines, "\n")
	if trailingNewline && content != "" {
		content += "\n"
	}

	// The rename must land in the real file, not replace a symlink, so
	// dotfile setups that link their rc file keep working.
	target, err := filepath.EvalSymlinks(s.path)
	if errors.Is(err, os.ErrNotExist) {
		target = s.path
	} else if err != nil {
		return fmt.Errorf("shellrc: resolve %s: %w", s.path, err)
	}

	mode := os.FileMode(0o644)
	if info, err := os.Stat(target); err == nil {
		mode = info.Mode().Perm()
	}

	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, []byte(content), mode); err != nil {
		return fmt.Errorf("shellrc: write temp file: %w", err)
	}
	// WriteFile honors the umask; the rewrite keeps the exact mode bits.
	if err := os.Chmod(tmp, mode); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("shellrc: chmod temp file: %w", err)
	}
	if err := os.Rename(tmp, target); err != nil {
		_ = os.Remove(tmp) // best-effort cleanup
		return fmt.Errorf("shellrc: atomic rename %s: %w", target, err)
	}
	return nil
}

// formatAlias renders an alias definition line with single-quoted expansion,
// escaping embedded single quotes the POSIX way.
func formatAlias(name, command string) string {
	escaped := strings.ReplaceAll(command, "'", `'\''`)
	return fmt.Sprintf("alias %s='%s'", name, escaped)
}

// parseAliasName extracts the alias name from a line of the form
// "alias <name>=<expansion>". Leading whitespace is tolerated.
func parseAliasName(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	rest, ok := strings.CutPrefix(trimmed, "alias ")
	if !ok {
		return "", false
	}
	name, _, ok := strings.Cut(rest, "=")
	if !ok {
		return "", false
	}
	name = strings.TrimSpace(name)
	if name == "" || strings.ContainsAny(name, " \t") {
		return "", false
	}
	return name, true
}

// parseAliasCommand extracts the expansion from an alias line, stripping one
// level of surrounding quotes and undoing single-quote escapes.
func parseAliasCommand(line string) (string, error) {
	trimmed := strings.TrimSpace(line)
	rest, ok := strings.CutPrefix(trimmed, "alias ")
	if !ok {
		return "", fmt.Errorf("shellrc: not an alias line: %q", line)
	}
	_, value, ok := strings.Cut(rest, "=")
	if !ok {
		return "", fmt.Errorf("shellrc: malformed alias line: %q", line)
	}

	if len(value) >= 2 && strings.HasPrefix(value, "'") && strings.HasSuffix(value, "'") {
		value = strings.TrimSuffix(strings.TrimPrefix(value, "'"), "'")
		value = strings.ReplaceAll(value, `'\''`, "'")
	} else if len(value) >= 2 && strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`) {
		value = strings.TrimSuffix(strings.TrimPrefix(value, `"`), `"`)
	}
	return value, nil
}

func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("shellrc: alias name is empty")
	}
	if strings.ContainsAny(name, " \t\n='\"") {
		return fmt.Errorf("shellrc: invalid alias name %q", name)
	}
	return nil
}
