package app

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/tacogips/stubgen/internal/stub/model"
)

// listDirectories returns the sorted names of the subdirectories of dir.
// Symbolic links to directories are included.
func listDirectories(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, model.NewFileSystemError("failed to read directory", dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
			continue
		}
		if e.Type()&os.ModeSymlink != 0 {
			if info, err := os.Stat(filepath.Join(dir, e.Name())); err == nil && info.IsDir() {
				names = append(names, e.Name())
			}
		}
	}
	sort.Strings(names)
	return names, nil
}

func parentDir(dir string) string {
	return filepath.Clean(filepath.Join(dir, ".."))
}

func displayPath(dir string) string {
	if abs, err := filepath.Abs(dir); err == nil {
		return abs
	}
	return dir
}
