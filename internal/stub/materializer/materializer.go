// Package materializer turns a stub group into files on disk and moves them
// to their final destination.
package materializer

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/tacogips/stubgen/internal/debug"
	"github.com/tacogips/stubgen/internal/stub/model"
	"github.com/tacogips/stubgen/internal/stub/substitute"
)

// Options configures a Materializer.
type Options struct {
	// WorkDir is where files are generated before relocation.
	WorkDir string
	// Placeholders are the literals replaced in stub content.
	Placeholders substitute.Placeholders
	// Overwrite replaces existing files in WorkDir when true.
	Overwrite bool
	// Writer performs filesystem operations. Defaults to a FileWriter.
	Writer Writer
	// Now returns the date substituted for the date placeholder. Defaults to time.Now.
	Now func() time.Time
}

// Request describes one generation.
type Request struct {
	// Entry is the stub group to generate.
	Entry model.StubEntry
	// OutputName is the new file stem; it replaces the stub identifier.
	OutputName string
	// Description replaces the description placeholder.
	Description string
	// Author replaces the author placeholder.
	Author string
}

// GeneratedFile is one file written to the working directory.
type GeneratedFile struct {
	// Path is the written file path.
	Path string
	// Size is the content size in bytes.
	Size int64
}

// Result contains generation results.
type Result struct {
	// Files are the files written, in stub group order.
	Files []GeneratedFile
	// Errors contains per-file failures. They do not stop the other files.
	Errors []error
}

// Paths returns the paths of the generated files.
func (r *Result) Paths() []string {
	paths := make([]string, 0, len(r.Files))
	for _, f := range r.Files {
		paths = append(paths, f.Path)
	}
	return paths
}

// RelocateResult contains relocation results.
type RelocateResult struct {
	// Moved are the destination paths of the relocated files.
	Moved []string
	// Errors contains per-file move failures.
	Errors []error
}

// Materializer generates stub files and relocates them.
type Materializer struct {
	workDir      string
	placeholders substitute.Placeholders
	overwrite    bool
	writer       Writer
	now          func() time.Time
}

// New creates a Materializer.
func New(opts Options) *Materializer {
	m := &Materializer{
		workDir:      opts.WorkDir,
		placeholders: opts.Placeholders,
		overwrite:    opts.Overwrite,
		writer:       opts.Writer,
		now:          opts.Now,
	}
	if m.workDir == "" {
		m.workDir = "."
	}
	if m.writer == nil {
		m.writer = NewFileWriter()
	}
	if m.now == nil {
		m.now = time.Now
	}
	return m
}

// WorkDir returns the directory files are generated in.
func (m *Materializer) WorkDir() string {
	return m.workDir
}

// Materialize writes OutputName+extension into the working directory for
// every file of the stub group, substituting the identifier, author,
// description and date placeholders in that order.
func (m *Materializer) Materialize(ctx context.Context, req Request) (*Result, error) {
	debug.DebugSection("[materializer] Materialize start")
	debug.DebugValue("[materializer] Stub", req.Entry.Identifier)
	debug.DebugValue("[materializer] Output name", req.OutputName)

	if req.OutputName == "" {
		return nil, model.NewInvalidArgumentError("output name cannot be empty")
	}
	if len(req.Entry.Files) == 0 {
		return nil, model.NewInvalidArgumentError("stub " + req.Entry.Identifier + " has no files")
	}

	rules := substitute.StandardRules(m.placeholders, substitute.Values{
		Identifier:  req.Entry.Identifier,
		OutputName:  req.OutputName,
		Author:      req.Author,
		Description: req.Description,
		Date:        m.now(),
	})

	result := &Result{}
	for _, tf := range req.Entry.Files {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		gf, err := m.materializeFile(tf, req.OutputName, rules)
		if err != nil {
			debug.Debug("[materializer] Failed: %v", err)
			result.Errors = append(result.Errors, err)
			continue
		}
		result.Files = append(result.Files, gf)
	}

	debug.Debug("[materializer] Materialize completed: %d written, %d errors", len(result.Files), len(result.Errors))
	return result, nil
}

func (m *Materializer) materializeFile(tf model.TemplateFile, outputName string, rules []substitute.Rule) (GeneratedFile, error) {
	content, err := os.ReadFile(tf.Path)
	if err != nil {
		return GeneratedFile{}, model.NewFileSystemError("failed to read stub", tf.Path, err)
	}

	out, err := substitute.Apply(string(content), rules)
	if err != nil {
		return GeneratedFile{}, err
	}

	target := filepath.Join(m.workDir, outputName+tf.Extension)
	if !m.overwrite && m.writer.Exists(target) {
		return GeneratedFile{}, model.NewFileSystemError("file already exists", target, os.ErrExist)
	}

	mode := os.FileMode(0644)
	if info, err := os.Stat(tf.Path); err == nil {
		mode = info.Mode().Perm()
	}

	if err := m.writer.WriteFile(target, []byte(out), mode); err != nil {
		return GeneratedFile{}, err
	}
	return GeneratedFile{Path: target, Size: int64(len(out))}, nil
}

// Relocate moves every file into destination. Failures are collected per
// file. Files already in destination are left where they are.
func (m *Materializer) Relocate(ctx context.Context, files []string, destination string) *RelocateResult {
	debug.DebugSection("[materializer] Relocate start")
	debug.DebugValue("[materializer] Destination", destination)

	result := &RelocateResult{}
	for _, src := range files {
		if err := ctx.Err(); err != nil {
			result.Errors = append(result.Errors, err)
			return result
		}

		dst := filepath.Join(destination, filepath.Base(src))
		if samePath(src, dst) {
			debug.Debug("[materializer] %s already in destination", src)
			result.Moved = append(result.Moved, dst)
			continue
		}

		if err := m.writer.Move(src, dst); err != nil {
			result.Errors = append(result.Errors, err)
			continue
		}
		result.Moved = append(result.Moved, dst)
	}
	return result
}

// Discard deletes generated files, returning one error per failed delete.
func (m *Materializer) Discard(files []string) []error {
	var errs []error
	for _, f := range files {
		if err := m.writer.Remove(f); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

// CreateDir creates a destination directory.
func (m *Materializer) CreateDir(path string) error {
	return m.writer.CreateDir(path)
}

func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}
