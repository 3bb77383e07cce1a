package config

import (
	"os"
	"path/filepath"

	"github.com/tacogips/stubgen/internal/stub/substitute"
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Paths: PathsConfig{
			StubsDir:  "Stubs",
			UsersFile: "Users.txt",
			WorkDir:   ".",
		},
		Templates: TemplateConfig{
			IgnorePatterns: DefaultIgnorePatterns(),
			Overwrite:      false,
		},
		Placeholders: PlaceholderConfig{
			Author:      substitute.DefaultAuthorPlaceholder,
			Description: substitute.DefaultDescriptionPlaceholder,
			Date:        substitute.DefaultDatePlaceholder,
			DateFormat:  substitute.DefaultDateLayout,
		},
		Output: OutputConfig{
			NoColor:     false,
			ClearScreen: true,
		},
	}
}

// DefaultIgnorePatterns returns the default ignore patterns.
func DefaultIgnorePatterns() []string {
	return []string{
		".DS_Store",
		"Thumbs.db",
		"desktop.ini",
		"*.swp",
		"*.swo",
		"*~",
		"*.tmp",
	}
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config", "stubgen", "config.json")
}

// SubstitutionPlaceholders converts the placeholder settings for the substitution engine.
func (c *Config) SubstitutionPlaceholders() substitute.Placeholders {
	return substitute.Placeholders{
		Author:      c.Placeholders.Author,
		Description: c.Placeholders.Description,
		Date:        c.Placeholders.Date,
		DateLayout:  c.Placeholders.DateFormat,
	}
}
