package materializer

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"syscall"

	"github.com/tacogips/stubgen/internal/debug"
	"github.com/tacogips/stubgen/internal/stub/model"
)

// Writer performs the filesystem operations of the materializer.
type Writer interface {
	// WriteFile writes content to path atomically.
	WriteFile(path string, content []byte, mode os.FileMode) error

	// CreateDir creates a directory and any necessary parents.
	CreateDir(path string) error

	// Move relocates a file. It never replaces an existing destination.
	Move(src, dst string) error

	// Remove deletes a file.
	Remove(path string) error

	// Exists checks if a file or directory exists at the given path.
	Exists(path string) bool
}

// FileWriter implements Writer for the local filesystem.
type FileWriter struct{}

// NewFileWriter creates a new FileWriter.
func NewFileWriter() Writer {
	return &FileWriter{}
}

// WriteFile writes content to a file using a temporary file and rename.
func (w *FileWriter) WriteFile(path string, content []byte, mode os.FileMode) error {
	debug.Debug("[materializer] Writing file: %s (size: %d bytes, mode: %o)", path, len(content), mode)

	if mode&0600 == 0 {
		mode |= 0600
	}

	tempFile := path + ".tmp"
	f, err := os.OpenFile(tempFile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return model.NewFileSystemError("failed to create temporary file", path, err)
	}

	_, err = f.Write(content)
	closeErr := f.Close()

	if err != nil {
		_ = os.Remove(tempFile)
		return model.NewFileSystemError("failed to write file content", path, err)
	}
	if closeErr != nil {
		_ = os.Remove(tempFile)
		return model.NewFileSystemError("failed to close file", path, closeErr)
	}

	if err := os.Rename(tempFile, path); err != nil {
		_ = os.Remove(tempFile)
		return model.NewFileSystemError("failed to rename temporary file", path, err)
	}

	debug.Debug("[materializer] File written successfully: %s", path)
	return nil
}

// CreateDir creates a directory with 0755 permissions.
func (w *FileWriter) CreateDir(path string) error {
	debug.Debug("[materializer] Creating directory: %s", path)
	if err := os.MkdirAll(path, 0755); err != nil {
		return model.NewFileSystemError("failed to create directory", path, err)
	}
	return nil
}

// Move renames src to dst, copying and removing src when they live on
// different devices.
func (w *FileWriter) Move(src, dst string) error {
	debug.Debug("[materializer] Moving %s -> %s", src, dst)

	if w.Exists(dst) {
		return model.NewFileSystemError("destination already exists", dst, os.ErrExist)
	}

	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}

	var linkErr *os.LinkError
	if !errors.As(err, &linkErr) || !errors.Is(linkErr.Err, syscall.EXDEV) {
		return model.NewFileSystemError("failed to move file", src, err)
	}

	debug.Debug("[materializer] Cross-device move, copying %s", src)
	info, err := os.Stat(src)
	if err != nil {
		return model.NewFileSystemError("failed to stat source file", src, err)
	}
	if err := copyFile(src, dst, info.Mode()); err != nil {
		_ = os.Remove(dst)
		return model.NewFileSystemError("failed to copy file", src, err)
	}
	if err := os.Remove(src); err != nil {
		return model.NewFileSystemError("copied but failed to remove source", src, err)
	}
	return nil
}

// Remove deletes a file.
func (w *FileWriter) Remove(path string) error {
	debug.Debug("[materializer] Removing %s", path)
	if err := os.Remove(path); err != nil {
		return model.NewFileSystemError("failed to delete file", path, err)
	}
	return nil
}

// Exists checks if a file or directory exists at the given path.
func (w *FileWriter) Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// copyFile copies src to a new file at dst.
func copyFile(src, dst string, mode os.FileMode) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = srcFile.Close() }()

	if dir := filepath.Dir(dst); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	dstFile, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, mode)
	if err != nil {
		return err
	}

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		_ = dstFile.Close()
		return err
	}
	return dstFile.Close()
}
