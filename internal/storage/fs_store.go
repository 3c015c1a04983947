package storage

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	ferrors "git.home.luguber.info/inful/errmatrix/internal/foundation/errors"
)

// OSFS is the operating system implementation of FS. Failures are classified
// filesystem errors carrying the path and the operation.
type OSFS struct{}

// NewOSFS returns an FS backed by the os package.
func NewOSFS() *OSFS {
	return &OSFS{}
}

func (OSFS) WriteText(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fsError(err, "create parent directory", path)
	}
	if err := os.WriteFile(path, []byte(content), filePerm); err != nil {
		return fsError(err, "write file", path)
	}
	return nil
}

func (OSFS) ReadText(path string) (string, error) {
	// #nosec G304 -- paths are inside the scratch project or output dir
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fsError(ErrNotFound{Path: path}, "read file", path)
		}
		return "", fsError(err, "read file", path)
	}
	return string(data), nil
}

func (OSFS) MkdirAll(path string) error {
	if err := os.MkdirAll(path, dirPerm); err != nil {
		return fsError(err, "create directory", path)
	}
	return nil
}

func (OSFS) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, fsError(err, "stat", path)
	}
}

func fsError(err error, op, path string) error {
	return ferrors.WrapError(err, ferrors.CategoryFileSystem, op).
		Fatal().
		WithContext("path", path).
		Build()
}
