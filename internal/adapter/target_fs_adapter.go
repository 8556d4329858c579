// Package adapter contains filesystem, storage and rendering adapters for the
// splicer CLI.
package adapter

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	m "github.com/mouse-blink/splicer/internal/model"
)

// TargetFSAdapter abstracts the filesystem operations the patch engine relies
// on when loading, backing up and persisting target files. It hides direct `os`
// access so the session logic can be tested without touching the disk.
//
//nolint:interfacebloat // A richer interface keeps session logic decoupled from os/fs.
type TargetFSAdapter interface {
	// FileInfo returns metadata for a path so the domain can check existence or
	// distinguish between files and directories.
	FileInfo(path m.Path) (os.FileInfo, error)

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// WriteFile writes content to a file with the given permissions.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error

	// WriteFileAtomic writes content to a temporary sibling and renames it over
	// path, so readers never observe a partially written file.
	WriteFileAtomic(path m.Path, content []byte, perm os.FileMode) error

	// CopyFile copies src to dst preserving the file mode. It refuses to
	// overwrite an existing dst when exclusive is true.
	CopyFile(src, dst m.Path, exclusive bool) error

	// MkdirAll creates a directory and any missing parents.
	MkdirAll(path m.Path, perm os.FileMode) error

	// FindProjectRoot walks up from startDir looking for a file named marker.
	FindProjectRoot(startDir m.Path, marker string) (m.Path, error)

	// RelPath returns the relative path from base to target.
	RelPath(base, target m.Path) (m.Path, error)

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path
}

// ErrProjectRootNotFound is returned by FindProjectRoot when no directory up
// to the filesystem root contains the marker file.
var ErrProjectRootNotFound = errors.New("project root not found")

// LocalTargetFSAdapter is the os-backed TargetFSAdapter.
type LocalTargetFSAdapter struct{}

// NewLocalTargetFSAdapter constructs a LocalTargetFSAdapter instance ready to
// be wired into the workflow.
func NewLocalTargetFSAdapter() *LocalTargetFSAdapter {
	return &LocalTargetFSAdapter{}
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalTargetFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// ReadFile loads file contents from disk.
func (a *LocalTargetFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	// #nosec G304 - path is a declared patch target
	return os.ReadFile(string(path))
}

// WriteFile writes content to a file with the given permissions.
func (a *LocalTargetFSAdapter) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	if err := os.WriteFile(string(path), content, perm); err != nil {
		return err
	}

	// WriteFile leaves the mode of an existing file untouched.
	return os.Chmod(string(path), perm)
}

// WriteFileAtomic writes through a temporary file in the same directory.
func (a *LocalTargetFSAdapter) WriteFileAtomic(path m.Path, content []byte, perm os.FileMode) error {
	dir := filepath.Dir(string(path))

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(string(path))+".splicer-*")
	if err != nil {
		return err
	}

	tmpName := tmp.Name()

	cleanup := func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}

	if _, err := tmp.Write(content); err != nil {
		cleanup()
		return err
	}

	if err := tmp.Chmod(perm); err != nil {
		cleanup()
		return err
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}

	if err := os.Rename(tmpName, string(path)); err != nil {
		_ = os.Remove(tmpName)
		return err
	}

	return nil
}

// CopyFile copies a single file, creating parent directories of dst.
func (a *LocalTargetFSAdapter) CopyFile(src, dst m.Path, exclusive bool) error {
	info, err := os.Stat(string(src))
	if err != nil {
		return err
	}

	// #nosec G304 - src is a declared patch target
	sourceFile, err := os.Open(string(src))
	if err != nil {
		return err
	}

	defer func() { _ = sourceFile.Close() }()

	if err := os.MkdirAll(filepath.Dir(string(dst)), 0o750); err != nil {
		return err
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if exclusive {
		flags = os.O_WRONLY | os.O_CREATE | os.O_EXCL
	}

	// #nosec G304 - dst is derived from the session backup naming scheme
	destFile, err := os.OpenFile(string(dst), flags, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(destFile, sourceFile); err != nil {
		_ = destFile.Close()
		return err
	}

	if err := destFile.Close(); err != nil {
		return err
	}

	return os.Chmod(string(dst), info.Mode().Perm())
}

// MkdirAll creates path and any missing parents.
func (a *LocalTargetFSAdapter) MkdirAll(path m.Path, perm os.FileMode) error {
	return os.MkdirAll(string(path), perm)
}

// FindProjectRoot searches for marker walking up the directory tree.
func (a *LocalTargetFSAdapter) FindProjectRoot(startDir m.Path, marker string) (m.Path, error) {
	start := string(startDir)
	if start == "" {
		start = "."
	}

	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("failed to resolve start directory: %w", err)
	}

	for {
		candidate := filepath.Join(dir, marker)
		if _, err := os.Stat(candidate); err == nil {
			return m.Path(dir), nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("failed to stat %q: %w", candidate, err)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w: no %s in any parent directory of %s", ErrProjectRootNotFound, marker, startDir)
		}

		dir = parent
	}
}

// RelPath returns the relative path from base to target.
func (a *LocalTargetFSAdapter) RelPath(base, target m.Path) (m.Path, error) {
	rel, err := filepath.Rel(string(base), string(target))
	if err != nil {
		return "", err
	}

	return m.Path(rel), nil
}

// JoinPath joins path elements into a single path.
func (a *LocalTargetFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}
