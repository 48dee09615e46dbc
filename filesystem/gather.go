package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// GatherFiles returns the absolute paths of all files with one of the given extensions. Roots may
// name files or directories; directories are not descended into. Extensions are compared case
// insensitively and every path is reported once.
func GatherFiles(roots []string, extensions []string) ([]string, error) {
	hasExtension := func(name string) bool {
		return slices.Contains(extensions, strings.ToLower(filepath.Ext(name)))
	}

	var paths []string
	seen := make(map[string]bool)

	appendAbsPath := func(path string) error {
		path, err := filepath.Abs(path)
		if err != nil {
			return fmt.Errorf("absolute path: %w", err)
		}
		if !seen[path] {
			seen[path] = true
			paths = append(paths, path)
		}
		return nil
	}

	for _, root := range roots {
		fi, err := os.Stat(root)
		if err != nil {
			return nil, err
		}

		switch {
		case fi.Mode().IsRegular():
			if !hasExtension(fi.Name()) {
				continue
			}

			if err := appendAbsPath(root); err != nil {
				return nil, err
			}

		case fi.IsDir():
			entries, err := os.ReadDir(root)
			if err != nil {
				return nil, fmt.Errorf("read dir: %w", err)
			}

			for _, entry := range entries {
				if !entry.Type().IsRegular() || !hasExtension(entry.Name()) {
					continue
				}

				if err := appendAbsPath(filepath.Join(root, entry.Name())); err != nil {
					return nil, err
				}
			}

		default:
			return nil, fmt.Errorf("path '%s' neither directory nor file", root)
		}
	}

	return paths, nil
}
