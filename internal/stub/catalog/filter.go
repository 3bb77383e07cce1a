package catalog

import (
	"path/filepath"

	"github.com/tacogips/stubgen/internal/debug"
)

// ShouldIgnore checks if a stub file name matches any ignore pattern.
func ShouldIgnore(name string, ignorePatterns []string) bool {
	for _, pattern := range ignorePatterns {
		if MatchesPattern(name, pattern) {
			debug.Debug("[catalog] Ignoring file: %s (matched pattern: %s)", name, pattern)
			return true
		}
	}
	return false
}

// MatchesPattern checks if a file name matches a glob pattern.
// Malformed patterns never match.
func MatchesPattern(name, pattern string) bool {
	matched, err := filepath.Match(pattern, filepath.Base(name))
	return err == nil && matched
}
