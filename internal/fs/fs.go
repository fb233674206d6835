// Package fs provides the filesystem seam used by the contact store.
//
// The main types are:
//   - [FS]: interface for the filesystem operations the store performs
//   - [File]: interface for open files (satisfied by [os.File])
//   - [Real]: production implementation using [os] and natefinch/atomic
//   - [Faulty]: testing implementation that fails chosen operations
//
// Example usage:
//
//	fsys := fs.NewReal()
//	f, err := fsys.Open("contacts.csv")
//	if err != nil {
//	    return err
//	}
//	defer f.Close()
//
//	scanner := bufio.NewScanner(f)
package fs

import (
	"io"
	"os"
)

// File represents an open file.
//
// This interface is satisfied by [os.File] and can be used with all
// standard library functions that accept [io.Reader], [io.Writer] or
// [io.Closer].
type File interface {
	io.ReadWriteCloser

	// Name returns the path the file was opened with. See [os.File.Name].
	// Needed to locate files created by [FS.CreateTemp].
	Name() string

	// Stat returns the [os.FileInfo] for this file. See [os.File.Stat].
	Stat() (os.FileInfo, error)

	// Sync commits the file's contents to disk. See [os.File.Sync].
	Sync() error

	// Chmod changes the file's mode. See [os.File.Chmod].
	// Used to carry the original mode over to a rewritten file.
	Chmod(mode os.FileMode) error
}

// FS defines the filesystem operations used to read and rewrite the
// contacts file.
//
// Two implementations are provided:
//   - [Real]: production use, wraps [os] package
//   - [Faulty]: testing use, fails selected operations on demand
type FS interface {
	// --- File Operations ---

	// Open opens a file for reading. See [os.Open].
	Open(path string) (File, error)

	// OpenFile opens a file with specified flags and permissions. See [os.OpenFile].
	// The store uses it with [os.O_APPEND]|[os.O_CREATE] to add rows.
	OpenFile(path string, flag int, perm os.FileMode) (File, error)

	// CreateTemp creates a new temporary file in dir. See [os.CreateTemp].
	// The caller removes or replaces it.
	CreateTemp(dir, pattern string) (File, error)

	// --- Convenience Methods ---

	// ReadFile reads an entire file into memory. See [os.ReadFile].
	ReadFile(path string) ([]byte, error)

	// WriteFileAtomic writes data to a file atomically.
	// Uses a temp file + rename to prevent partial writes on crash.
	WriteFileAtomic(path string, data []byte, perm os.FileMode) error

	// --- Metadata ---

	// Exists reports whether a file or directory exists.
	// Returns (false, nil) if not found, (false, err) on other errors.
	Exists(path string) (bool, error)

	// --- Mutations ---

	// Remove deletes a file or empty directory. See [os.Remove].
	Remove(path string) error

	// Replace moves source over destination in a single rename, so readers
	// see either the old or the new destination, never a missing file.
	// On failure source is left in place.
	Replace(source, destination string) error
}

// Compile-time interface checks.
var _ File = (*os.File)(nil)
