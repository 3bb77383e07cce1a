package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"

	"github.com/tacogips/stubgen/internal/debug"
)

// Loader defines the interface for loading configuration.
type Loader interface {
	// Load loads configuration from the specified file path.
	Load(path string) (*Config, error)
	// LoadOrDefault loads configuration or returns defaults if the file doesn't exist.
	LoadOrDefault(path string) (*Config, error)
	// Validate validates the configuration.
	Validate(config *Config) error
}

// FileLoader loads JSON configuration files and applies STUBGEN_* environment overrides.
type FileLoader struct {
	// Environment overrides os.Environ when non-nil.
	Environment map[string]string
}

// NewLoader creates a new FileLoader instance.
func NewLoader() Loader {
	return &FileLoader{}
}

// Load loads configuration from the specified file path.
func (l *FileLoader) Load(path string) (*Config, error) {
	debug.Debug("[config] Loading configuration: %s", path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, NewConfigError(ConfigNotFound, path, "configuration file not found", err)
		}
		return nil, NewConfigError(ConfigInvalid, path, "failed to read configuration file", err)
	}

	cfg := *DefaultConfig()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, NewConfigError(ConfigInvalid, path, "invalid JSON syntax", err)
	}

	mergeConfig(&cfg, DefaultConfig())

	if err := l.applyEnv(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration or returns defaults if the file doesn't exist.
// An empty path means no configuration file.
func (l *FileLoader) LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		cfg := DefaultConfig()
		if err := l.applyEnv(cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	cfg, err := l.Load(path)
	if err != nil {
		var cfgErr *ConfigError
		if errors.As(err, &cfgErr) && cfgErr.Type == ConfigNotFound {
			debug.Debug("[config] No configuration at %s, using defaults", path)
			cfg = DefaultConfig()
			if err := l.applyEnv(cfg); err != nil {
				return nil, err
			}
			return cfg, nil
		}
		return nil, err
	}
	return cfg, nil
}

// Validate validates the configuration.
func (l *FileLoader) Validate(config *Config) error {
	if strings.TrimSpace(config.Paths.StubsDir) == "" {
		return NewFieldError("paths.stubs_dir", "stub directory cannot be empty")
	}
	if strings.TrimSpace(config.Paths.UsersFile) == "" {
		return NewFieldError("paths.users_file", "user list path cannot be empty")
	}
	if strings.TrimSpace(config.Paths.WorkDir) == "" {
		return NewFieldError("paths.work_dir", "working directory cannot be empty")
	}

	placeholders := map[string]string{
		"placeholders.author":      config.Placeholders.Author,
		"placeholders.description": config.Placeholders.Description,
		"placeholders.date":        config.Placeholders.Date,
	}
	for _, field := range []string{"placeholders.author", "placeholders.description", "placeholders.date"} {
		if placeholders[field] == "" {
			return NewFieldError(field, "placeholder cannot be empty")
		}
	}

	if err := validateDateFormat(config.Placeholders.DateFormat); err != nil {
		return err
	}

	for _, pattern := range config.Templates.IgnorePatterns {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return NewFieldError("templates.ignore_patterns", fmt.Sprintf("invalid glob pattern %q", pattern))
		}
	}
	return nil
}

// Validate validates the configuration with the default loader.
func Validate(config *Config) error {
	return NewLoader().Validate(config)
}

// validateDateFormat rejects layouts that render a constant string.
func validateDateFormat(layout string) error {
	if layout == "" {
		return NewFieldError("placeholders.date_format", "date format cannot be empty")
	}
	a := time.Date(2001, time.February, 3, 0, 0, 0, 0, time.UTC).Format(layout)
	b := time.Date(2002, time.March, 4, 0, 0, 0, 0, time.UTC).Format(layout)
	if a == b {
		return NewFieldError("placeholders.date_format", fmt.Sprintf("date format %q contains no date fields", layout))
	}
	return nil
}

func (l *FileLoader) applyEnv(cfg *Config) error {
	opts := env.Options{}
	if l.Environment != nil {
		opts.Environment = l.Environment
	}
	if err := env.Parse(cfg, opts); err != nil {
		return NewConfigError(ConfigInvalid, "", "invalid STUBGEN_* environment variable", err)
	}
	return nil
}

// mergeConfig fills fields missing from cfg with defaults.
func mergeConfig(cfg, defaults *Config) {
	if cfg.Paths.StubsDir == "" {
		cfg.Paths.StubsDir = defaults.Paths.StubsDir
	}
	if cfg.Paths.UsersFile == "" {
		cfg.Paths.UsersFile = defaults.Paths.UsersFile
	}
	if cfg.Paths.WorkDir == "" {
		cfg.Paths.WorkDir = defaults.Paths.WorkDir
	}

	if cfg.Templates.IgnorePatterns == nil {
		cfg.Templates.IgnorePatterns = defaults.Templates.IgnorePatterns
	}

	if cfg.Placeholders.Author == "" {
		cfg.Placeholders.Author = defaults.Placeholders.Author
	}
	if cfg.Placeholders.Description == "" {
		cfg.Placeholders.Description = defaults.Placeholders.Description
	}
	if cfg.Placeholders.Date == "" {
		cfg.Placeholders.Date = defaults.Placeholders.Date
	}
	if cfg.Placeholders.DateFormat == "" {
		cfg.Placeholders.DateFormat = defaults.Placeholders.DateFormat
	}
}

// ExpandPath expands ~ to the home directory and makes path absolute.
func ExpandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		if len(path) == 1 {
			return homeDir, nil
		}
		if path[1] == filepath.Separator || path[1] == '/' {
			return filepath.Join(homeDir, path[2:]), nil
		}
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve absolute path: %w", err)
	}
	return absPath, nil
}
