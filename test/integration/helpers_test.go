package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tacogips/stubgen/internal/config"
)

// copyFixtureToTemp copies a fixture directory to a temp directory
// and returns the path of the copy.
func copyFixtureToTemp(t *testing.T, fixtureName string) string {
	t.Helper()

	fixtureDir, err := filepath.Abs(filepath.Join("../fixtures", fixtureName))
	if err != nil {
		t.Fatalf("failed to get fixture path: %v", err)
	}

	destDir := filepath.Join(t.TempDir(), fixtureName)
	if err := os.MkdirAll(destDir, 0755); err != nil {
		t.Fatalf("failed to create destination directory: %v", err)
	}

	err = filepath.Walk(fixtureDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(fixtureDir, path)
		if err != nil {
			return err
		}

		destPath := filepath.Join(destDir, relPath)

		if info.IsDir() {
			return os.MkdirAll(destPath, info.Mode())
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		return os.WriteFile(destPath, data, info.Mode())
	})

	if err != nil {
		t.Fatalf("failed to copy fixture: %v", err)
	}

	return destDir
}

// projectConfig returns a configuration pointing at a copied fixture project.
func projectConfig(projectDir string) *config.Config {
	cfg := config.DefaultConfig()
	cfg.Paths.StubsDir = filepath.Join(projectDir, "Stubs")
	cfg.Paths.UsersFile = filepath.Join(projectDir, "Users.txt")
	cfg.Paths.WorkDir = projectDir
	return cfg
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
