package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tacogips/stubgen/internal/debug"
	"github.com/tacogips/stubgen/internal/stub/model"
)

// Causes wrapped by the ConfigurationError values Build returns.
var (
	// ErrNotDirectory means the stub path exists but is a file.
	ErrNotDirectory = errors.New("not a directory")
	// ErrNoStubs means the directory holds no eligible stub file.
	ErrNoStubs = errors.New("no stub files")
	// ErrMalformedIdentifier means a stub file name lacks the "Stub" marker.
	ErrMalformedIdentifier = errors.New("malformed stub identifier")
)

// Options configures catalog scanning.
type Options struct {
	// IgnorePatterns are glob patterns matched against file names.
	// Matching files are not part of the catalog.
	IgnorePatterns []string
	// IncludeHidden includes dotfiles when true.
	IncludeHidden bool
}

// Catalog is the ordered set of stub types found in a template directory.
// Entries are sorted by identifier; menu numbering follows that order.
type Catalog struct {
	dir     string
	entries []model.StubEntry
	index   map[string]int
}

// Build scans dir and returns its catalog.
// Every regular file contributes to the entry named by its stem; files that
// share a stem form one stub group.
func Build(dir string, opts Options) (*Catalog, error) {
	debug.Debug("[catalog] Scanning stub directory: %s", dir)

	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, model.NewConfigurationError("stub directory does not exist", dir, err)
		}
		return nil, model.NewConfigurationError("failed to access stub directory", dir, err)
	}
	if !info.IsDir() {
		return nil, model.NewConfigurationError("stub path is not a directory", dir, ErrNotDirectory)
	}

	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, model.NewConfigurationError("failed to read stub directory", dir, err)
	}

	groups := make(map[string][]model.TemplateFile)
	for _, de := range dirEntries {
		name := de.Name()
		if de.IsDir() {
			debug.Debug("[catalog] Skipping directory: %s", name)
			continue
		}
		if !opts.IncludeHidden && strings.HasPrefix(name, ".") {
			debug.Debug("[catalog] Skipping hidden file: %s", name)
			continue
		}
		if ShouldIgnore(name, opts.IgnorePatterns) {
			continue
		}

		path := filepath.Join(dir, name)
		fi, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				debug.Debug("[catalog] Skipping broken symlink: %s", name)
				continue
			}
			return nil, model.NewConfigurationError("failed to stat stub file", path, err)
		}
		if !fi.Mode().IsRegular() {
			debug.Debug("[catalog] Skipping non-regular file: %s", name)
			continue
		}

		ext := filepath.Ext(name)
		identifier := strings.TrimSuffix(name, ext)
		groups[identifier] = append(groups[identifier], model.TemplateFile{
			Path:      path,
			Extension: ext,
		})
	}

	if len(groups) == 0 {
		return nil, model.NewConfigurationError("stub directory contains no stub files", dir, ErrNoStubs)
	}

	c := &Catalog{
		dir:     dir,
		entries: make([]model.StubEntry, 0, len(groups)),
		index:   make(map[string]int, len(groups)),
	}

	identifiers := make([]string, 0, len(groups))
	for id := range groups {
		identifiers = append(identifiers, id)
	}
	sort.Strings(identifiers)

	for _, id := range identifiers {
		files := groups[id]
		sort.Slice(files, func(i, j int) bool {
			return files[i].Extension < files[j].Extension
		})

		label, err := DisplayLabel(id)
		if err != nil {
			return nil, model.NewConfigurationError(err.Error(), files[0].Path, ErrMalformedIdentifier)
		}

		c.index[id] = len(c.entries)
		c.entries = append(c.entries, model.StubEntry{
			Identifier: id,
			Label:      label,
			Files:      files,
		})
		debug.Debug("[catalog] Stub %s -> %q (%d files)", id, label, len(files))
	}

	debug.Debug("[catalog] Catalog built with %d entries", len(c.entries))
	return c, nil
}

// DisplayLabel derives the menu label of a stub identifier.
// "Stub" itself keeps its name; any other identifier loses its first "Stub".
func DisplayLabel(identifier string) (string, error) {
	if identifier == model.StubMarker {
		return identifier, nil
	}
	if !strings.Contains(identifier, model.StubMarker) {
		return "", fmt.Errorf("stub file name %q must contain %q", identifier, model.StubMarker)
	}
	return strings.Replace(identifier, model.StubMarker, "", 1), nil
}

// Dir returns the scanned directory.
func (c *Catalog) Dir() string {
	return c.dir
}

// Len returns the number of stub types.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Entries returns the entries in menu order.
func (c *Catalog) Entries() []model.StubEntry {
	out := make([]model.StubEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

// At returns the entry shown as menu item i (1-based).
func (c *Catalog) At(i int) (model.StubEntry, bool) {
	if i < 1 || i > len(c.entries) {
		return model.StubEntry{}, false
	}
	return c.entries[i-1], true
}

// Lookup returns the entry with the given identifier.
func (c *Catalog) Lookup(identifier string) (model.StubEntry, bool) {
	i, ok := c.index[identifier]
	if !ok {
		return model.StubEntry{}, false
	}
	return c.entries[i], true
}
