package workspace

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"

	ferrors "git.home.luguber.info/inful/errmatrix/internal/foundation/errors"
	"git.home.luguber.info/inful/errmatrix/internal/logfields"
)

const projectSubdir = "project"

// Manager owns the scratch workspace of one run.
type Manager struct {
	baseDir    string
	dir        string
	persistent bool
	now        func() time.Time
}

// NewManager creates a manager for ephemeral timestamped workspaces under
// baseDir, or the system temp dir when baseDir is empty.
func NewManager(baseDir string) *Manager {
	if baseDir == "" {
		baseDir = os.TempDir()
	}
	return &Manager{baseDir: baseDir, now: time.Now}
}

// NewPersistentManager uses dir itself as the workspace and never removes it.
func NewPersistentManager(dir string) *Manager {
	return &Manager{baseDir: dir, dir: dir, persistent: true, now: time.Now}
}

// Create makes the workspace directory and its project subdirectory.
func (m *Manager) Create() error {
	if m.persistent {
		if err := os.MkdirAll(m.ProjectDir(), 0o750); err != nil {
			return wsError(err, "create persistent workspace", m.dir)
		}
		slog.Info("Using persistent workspace", logfields.Path(m.dir))
		return nil
	}

	if err := os.MkdirAll(m.baseDir, 0o750); err != nil {
		return wsError(err, "create workspace base", m.baseDir)
	}
	dir, err := os.MkdirTemp(m.baseDir, "errmatrix-"+m.now().Format("20060102-150405")+"-")
	if err != nil {
		return wsError(err, "create workspace", m.baseDir)
	}
	m.dir = dir
	if err := os.MkdirAll(m.ProjectDir(), 0o750); err != nil {
		return wsError(err, "create project directory", m.ProjectDir())
	}
	slog.Info("Created workspace", logfields.Path(dir))
	return nil
}

// Path is the workspace root, empty before Create.
func (m *Manager) Path() string { return m.dir }

// ProjectDir is where the Cargo project lives.
func (m *Manager) ProjectDir() string {
	if m.dir == "" {
		return ""
	}
	return filepath.Join(m.dir, projectSubdir)
}

// Persistent reports whether Cleanup keeps the directory.
func (m *Manager) Persistent() bool { return m.persistent }

// Cleanup removes an ephemeral workspace. Persistent workspaces are kept.
func (m *Manager) Cleanup() error {
	if m.dir == "" {
		return nil
	}
	if m.persistent {
		slog.Debug("Keeping persistent workspace", logfields.Path(m.dir))
		return nil
	}
	if err := os.RemoveAll(m.dir); err != nil {
		return wsError(err, "remove workspace", m.dir)
	}
	slog.Info("Cleaned up workspace", logfields.Path(m.dir))
	m.dir = ""
	return nil
}

func wsError(err error, msg, path string) error {
	return ferrors.WrapError(err, ferrors.CategoryFileSystem, msg).
		Fatal().
		WithContext("path", path).
		Build()
}
