package render

import (
	"path/filepath"
	"strings"

	ferrors "git.home.luguber.info/inful/errmatrix/internal/foundation/errors"
	"git.home.luguber.info/inful/errmatrix/internal/storage"
)

// Writer stores rendered documents as {dir}/{id}.{ext}.
type Writer struct {
	fs  storage.FS
	dir string
}

// NewWriter creates a Writer rooted at dir.
func NewWriter(fsys storage.FS, dir string) *Writer {
	return &Writer{fs: fsys, dir: dir}
}

// Write stores content and returns the file path. id must be a bare name.
func (w *Writer) Write(id, ext string, content []byte) (string, error) {
	if id == "" || strings.ContainsAny(id, `/\`) || id == "." || id == ".." {
		return "", ferrors.ValidationError("invalid page id").WithContext("id", id).Build()
	}
	if err := w.fs.MkdirAll(w.dir); err != nil {
		return "", err
	}
	path := filepath.Join(w.dir, id+"."+ext)
	if err := w.fs.WriteText(path, string(content)); err != nil {
		return "", err
	}
	return path, nil
}
