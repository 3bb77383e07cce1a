package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tacogips/stubgen/internal/config"
	"github.com/tacogips/stubgen/internal/stub/catalog"
	"github.com/tacogips/stubgen/internal/stub/model"
)

// setupProject creates a stub directory, a user list and a working directory.
func setupProject(t *testing.T) (*config.Config, string) {
	t.Helper()

	root := t.TempDir()
	stubs := filepath.Join(root, "Stubs")
	work := filepath.Join(root, "work")
	for _, dir := range []string{stubs, work} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("Failed to create %s: %v", dir, err)
		}
	}

	files := map[string]string{
		filepath.Join(stubs, "ClassStub.h"):   "// NAME\n// Insert description here...\nclass ClassStub {};\n",
		filepath.Join(stubs, "ClassStub.cpp"): "#include \"ClassStub.h\"\n",
		filepath.Join(stubs, ".DS_Store"):     "junk",
		filepath.Join(root, "Users.txt"):      "Jane Doe\r\nJohn Smith\n",
	}
	for path, content := range files {
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", path, err)
		}
	}

	cfg := config.DefaultConfig()
	cfg.Paths.StubsDir = stubs
	cfg.Paths.UsersFile = filepath.Join(root, "Users.txt")
	cfg.Paths.WorkDir = work
	return cfg, work
}

func TestRunSession(t *testing.T) {
	cfg, work := setupProject(t)

	in := strings.NewReader("0\n1\nPlayer\ny\nMoves things around.\n2\nFeature\ny\n")
	var out bytes.Buffer

	if err := RunSession(context.Background(), cfg, in, &out); err != nil {
		t.Fatalf("RunSession failed: %v", err)
	}

	header, err := os.ReadFile(filepath.Join(work, "Feature", "Player.h"))
	if err != nil {
		t.Fatalf("Player.h not relocated: %v", err)
	}
	if want := "// Jane Doe\n// Moves things around.\nclass Player {};\n"; string(header) != want {
		t.Errorf("Unexpected Player.h content:\n%s", header)
	}
	if _, err := os.Stat(filepath.Join(work, "Feature", "Player.cpp")); err != nil {
		t.Errorf("Player.cpp not relocated: %v", err)
	}
	if _, err := os.Stat(filepath.Join(work, "Player.h")); !os.IsNotExist(err) {
		t.Error("Player.h should no longer be in the working directory")
	}

	output := out.String()
	for _, want := range []string{"Select a user:", "1. Create a Class", ">> ", "Player.h created successfully."} {
		if !strings.Contains(output, want) {
			t.Errorf("Output missing %q", want)
		}
	}
	if strings.Contains(output, "\033[2J") {
		t.Error("Screen should not be cleared when output is not a terminal")
	}
}

func TestRunSession_EndOfInput(t *testing.T) {
	cfg, _ := setupProject(t)

	if err := RunSession(context.Background(), cfg, strings.NewReader(""), io.Discard); err != nil {
		t.Errorf("Closed input should end the session cleanly, got %v", err)
	}
}

func TestRunSession_MissingStubs(t *testing.T) {
	cfg, _ := setupProject(t)
	cfg.Paths.StubsDir = filepath.Join(t.TempDir(), "missing")

	err := RunSession(context.Background(), cfg, strings.NewReader(""), io.Discard)
	if err == nil {
		t.Fatal("Expected error for missing stub directory")
	}
	if !model.IsType(err, model.ConfigurationError) {
		t.Errorf("Expected ConfigurationError, got %v", err)
	}
}

func TestRunSession_MissingUsers(t *testing.T) {
	cfg, _ := setupProject(t)
	cfg.Paths.UsersFile = filepath.Join(t.TempDir(), "Users.txt")

	err := RunSession(context.Background(), cfg, strings.NewReader(""), io.Discard)
	if !model.IsType(err, model.ConfigurationError) {
		t.Errorf("Expected ConfigurationError, got %v", err)
	}
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	t.Run("defaults without config file", func(t *testing.T) {
		cfg, err := loadConfig("", false, pathOverrides{})
		if err != nil {
			t.Fatalf("loadConfig failed: %v", err)
		}
		if cfg.Paths.StubsDir != "Stubs" {
			t.Errorf("Expected default StubsDir, got %s", cfg.Paths.StubsDir)
		}
	})

	t.Run("explicit config must exist", func(t *testing.T) {
		_, err := loadConfig(filepath.Join(t.TempDir(), "none.json"), true, pathOverrides{})
		var cfgErr *config.ConfigError
		if !errors.As(err, &cfgErr) || cfgErr.Type != config.ConfigNotFound {
			t.Errorf("Expected ConfigNotFound, got %v", err)
		}
	})

	t.Run("flags override file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		data, _ := json.Marshal(map[string]interface{}{
			"paths": map[string]interface{}{"stubs_dir": "FromFile", "users_file": "people.txt"},
		})
		if err := os.WriteFile(path, data, 0644); err != nil {
			t.Fatal(err)
		}

		cfg, err := loadConfig(path, true, pathOverrides{StubsDir: "FromFlag", NoColor: true})
		if err != nil {
			t.Fatalf("loadConfig failed: %v", err)
		}
		if cfg.Paths.StubsDir != "FromFlag" {
			t.Errorf("Expected flag to win, got %s", cfg.Paths.StubsDir)
		}
		if cfg.Paths.UsersFile != "people.txt" {
			t.Errorf("Expected UsersFile from file, got %s", cfg.Paths.UsersFile)
		}
		if !cfg.Output.NoColor {
			t.Error("Expected NoColor from flag")
		}
	})
}

func TestPrintCatalog(t *testing.T) {
	globalNoColor = true
	defer func() { globalNoColor = false }()

	cfg, _ := setupProject(t)
	cat, err := catalog.Build(cfg.Paths.StubsDir, catalog.Options{IgnorePatterns: cfg.Templates.IgnorePatterns})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	var out bytes.Buffer
	printCatalog(&out, cat)

	got := out.String()
	if !strings.Contains(got, "=== Stubs in ") {
		t.Errorf("Missing header in %q", got)
	}
	if !strings.Contains(got, "1. Class (ClassStub) .cpp .h") {
		t.Errorf("Unexpected catalog listing %q", got)
	}
	if strings.Contains(got, "DS_Store") {
		t.Error("Ignored files should not be listed")
	}
}

func TestWriteVersion(t *testing.T) {
	info := VersionInfo{Version: "1.2.3", GoVersion: "go1.25", Commit: "abc", BuildDate: "today", OS: "linux", Arch: "amd64"}

	t.Run("short", func(t *testing.T) {
		var out bytes.Buffer
		if err := writeVersion(&out, info, true, false); err != nil {
			t.Fatal(err)
		}
		if out.String() != "1.2.3\n" {
			t.Errorf("Unexpected short version %q", out.String())
		}
	})

	t.Run("json", func(t *testing.T) {
		var out bytes.Buffer
		if err := writeVersion(&out, info, false, true); err != nil {
			t.Fatal(err)
		}
		var decoded VersionInfo
		if err := json.Unmarshal(out.Bytes(), &decoded); err != nil {
			t.Fatalf("Invalid JSON: %v", err)
		}
		if decoded.Commit != "abc" {
			t.Errorf("Expected commit abc, got %s", decoded.Commit)
		}
	})

	t.Run("text", func(t *testing.T) {
		var out bytes.Buffer
		if err := writeVersion(&out, info, false, false); err != nil {
			t.Fatal(err)
		}
		if !strings.HasPrefix(out.String(), "stubgen version 1.2.3\n") {
			t.Errorf("Unexpected output %q", out.String())
		}
	})
}

func TestFormatHelpers_NoColor(t *testing.T) {
	globalNoColor = true
	defer func() { globalNoColor = false }()

	tests := []struct {
		got  string
		want string
	}{
		{formatSuccess("done"), "✓ done"},
		{formatWarning("careful"), "⚠ careful"},
		{formatError("failed"), "✗ failed"},
		{formatHeader("Title"), "=== Title ==="},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("got %q, want %q", tt.got, tt.want)
		}
	}
}

func TestRunSession_MalformedStubGuidance(t *testing.T) {
	globalNoColor = true
	var stderr bytes.Buffer
	errOut = &stderr
	defer func() {
		globalNoColor = false
		errOut = os.Stderr
	}()

	cfg, _ := setupProject(t)
	stubs := t.TempDir()
	if err := os.WriteFile(filepath.Join(stubs, "Player.h"), []byte("class Player;\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg.Paths.StubsDir = stubs

	err := RunSession(context.Background(), cfg, strings.NewReader(""), io.Discard)
	if !errors.Is(err, catalog.ErrMalformedIdentifier) {
		t.Fatalf("Expected malformed identifier error, got %v", err)
	}

	want := "✗ Rename or remove Player.h: stub file names must contain \"Stub\".\n"
	if stderr.String() != want {
		t.Errorf("stderr = %q, want %q", stderr.String(), want)
	}
}

func TestCatalogHint(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "ClassStub.h")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	malformed := t.TempDir()
	if err := os.WriteFile(filepath.Join(malformed, "Readme.md"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		dir  string
		want string
	}{
		{"missing folder", filepath.Join(root, "Stubs"), "Please create a " + filepath.Join(root, "Stubs") + " folder"},
		{"empty folder", t.TempDir(), "place at least 1 file inside"},
		{"file instead of folder", file, file + " is a file"},
		{"malformed identifier", malformed, "Rename or remove Readme.md"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := catalog.Build(tt.dir, catalog.Options{})
			if err == nil {
				t.Fatal("Expected catalog error")
			}
			if got := catalogHint(tt.dir, err); !strings.Contains(got, tt.want) {
				t.Errorf("catalogHint() = %q, want it to contain %q", got, tt.want)
			}
		})
	}

	t.Run("unreadable", func(t *testing.T) {
		err := model.NewConfigurationError("failed to read stub directory", root, os.ErrPermission)
		if got := catalogHint(root, err); !strings.Contains(got, "Could not read") {
			t.Errorf("Unexpected hint %q", got)
		}
	})
}
