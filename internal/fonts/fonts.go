package fonts

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Exts are the font file extensions raylib can load.
var Exts = []string{".ttf", ".otf"}

// ErrNotFound is returned when no font file matches the search term.
var ErrNotFound = errors.New("font not found")

// BaseDirs returns candidate font directories, so the demo finds its fonts whether
// run from the repo root or from cmd/demo.
func BaseDirs() []string {
	return []string{"assets/fonts", "../../assets/fonts"}
}

// ScanDir returns paths of all font files under dir relative to dir, with forward slashes.
// A missing dir yields no files and no error.
func ScanDir(dir string) ([]string, error) {
	var out []string
	dir = filepath.Clean(dir)
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if d.IsDir() || !isFont(path) {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		out = append(out, filepath.ToSlash(rel))
		return nil
	})
	return out, err
}

func isFont(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Exts {
		if ext == e {
			return true
		}
	}
	return false
}

// normalizeForMatch lowercases and removes spaces, dashes, and underscores for fuzzy matching.
func normalizeForMatch(s string) string {
	s = strings.ToLower(s)
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(s)
}

// Find returns the path of a font whose relative path contains search (fuzzy: case,
// spaces, dashes and underscores ignored). search may also be a direct file path.
// When several files match, one containing "regular" wins.
func Find(search string, dirs ...string) (string, error) {
	if search == "" {
		return "", fmt.Errorf("fonts: empty name: %w", ErrNotFound)
	}
	if isFont(search) {
		if _, err := os.Stat(search); err == nil {
			return search, nil
		}
	}
	norm := normalizeForMatch(strings.TrimSuffix(search, filepath.Ext(search)))
	var matches []string
	for _, base := range dirs {
		list, err := ScanDir(base)
		if err != nil {
			return "", fmt.Errorf("fonts: %w", err)
		}
		for _, rel := range list {
			if strings.Contains(normalizeForMatch(rel), norm) {
				matches = append(matches, filepath.Join(base, filepath.FromSlash(rel)))
			}
		}
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("fonts: %q: %w", search, ErrNotFound)
	}
	for _, m := range matches {
		if strings.Contains(strings.ToLower(filepath.Base(m)), "regular") {
			return m, nil
		}
	}
	return matches[0], nil
}
