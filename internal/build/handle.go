package build

import (
	"path/filepath"
	"runtime"
	"sort"

	ferrors "git.home.luguber.info/inful/errmatrix/internal/foundation/errors"
	"git.home.luguber.info/inful/errmatrix/internal/storage"
)

// Handle locates the artifacts of one successful build.
type Handle struct {
	projectDir string
	targetDir  string
	ids        map[string]bool
	fs         storage.FS
}

func newHandle(projectDir, targetDir string, ids []string, fsys storage.FS) *Handle {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return &Handle{projectDir: projectDir, targetDir: targetDir, ids: set, fs: fsys}
}

// ProjectDir is the absolute scratch project root.
func (h *Handle) ProjectDir() string { return h.projectDir }

// TargetDir holds cargo's build output.
func (h *Handle) TargetDir() string { return h.targetDir }

// BinaryPath is where cargo places the debug binary for id.
func (h *Handle) BinaryPath(id string) string {
	name := id
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	return filepath.Join(h.targetDir, "debug", name)
}

// SourcePath is the src/bin file for id.
func (h *Handle) SourcePath(id string) string {
	return sourcePath(h.projectDir, id)
}

// Has reports whether id was part of the build.
func (h *Handle) Has(id string) bool { return h.ids[id] }

// IDs lists the built program ids in sorted order.
func (h *Handle) IDs() []string {
	out := make([]string, 0, len(h.ids))
	for id := range h.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// ReadSource returns the on-disk source of id after formatting.
func (h *Handle) ReadSource(id string) (string, error) {
	if !h.ids[id] {
		return "", ferrors.ArtifactError("source was not part of the build").
			WithContext("id", id).
			Build()
	}
	text, err := h.fs.ReadText(h.SourcePath(id))
	if err != nil {
		return "", ferrors.WrapError(err, ferrors.CategoryArtifact, "read built source").
			Fatal().
			WithContext("id", id).
			Build()
	}
	return text, nil
}

// ReadSources reads back every built source keyed by id.
func (h *Handle) ReadSources() (map[string]string, error) {
	out := make(map[string]string, len(h.ids))
	for _, id := range h.IDs() {
		text, err := h.ReadSource(id)
		if err != nil {
			return nil, err
		}
		out[id] = text
	}
	return out, nil
}

func sourcePath(projectDir, id string) string {
	return filepath.Join(projectDir, "src", "bin", id+".rs")
}
