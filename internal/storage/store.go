// Package storage is the filesystem boundary for the scratch project, the
// captured sources and the rendered pages.
package storage

import (
	"errors"
	"io/fs"
)

// FS is the small set of file operations the generator needs. Paths are
// absolute or relative to the process working directory.
type FS interface {
	// WriteText creates or truncates path, creating parent directories.
	WriteText(path, content string) error

	// ReadText returns the file content. A missing file is a not-found error.
	ReadText(path string) (string, error)

	// MkdirAll creates path and any missing parents.
	MkdirAll(path string) error

	// Exists reports whether path exists.
	Exists(path string) (bool, error)
}

const (
	dirPerm  fs.FileMode = 0o750
	filePerm fs.FileMode = 0o644
)

// ErrNotFound is returned when a file doesn't exist.
type ErrNotFound struct {
	Path string
}

func (e ErrNotFound) Error() string {
	return "file not found: " + e.Path
}

// IsNotFound returns true if err is or wraps ErrNotFound.
func IsNotFound(err error) bool {
	var nf ErrNotFound
	return errors.As(err, &nf)
}
