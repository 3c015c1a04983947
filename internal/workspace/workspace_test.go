package workspace

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestManager_EphemeralMode(t *testing.T) {
	base := t.TempDir()
	mgr := NewManager(base)
	mgr.now = func() time.Time { return time.Date(2026, 10, 18, 12, 30, 0, 0, time.UTC) }

	if err := mgr.Create(); err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	ws := mgr.Path()
	if !strings.HasPrefix(filepath.Base(ws), "errmatrix-20261018-123000-") {
		t.Errorf("Expected timestamped directory, got: %s", ws)
	}
	if mgr.ProjectDir() != filepath.Join(ws, "project") {
		t.Errorf("ProjectDir() = %s", mgr.ProjectDir())
	}
	if _, err := os.Stat(mgr.ProjectDir()); err != nil {
		t.Errorf("project directory missing: %v", err)
	}

	if err := mgr.Cleanup(); err != nil {
		t.Fatalf("Cleanup() failed: %v", err)
	}
	if _, err := os.Stat(ws); !os.IsNotExist(err) {
		t.Errorf("Workspace still exists after cleanup: %s", ws)
	}
	if mgr.Path() != "" {
		t.Error("Path() should be empty after cleanup")
	}
}

func TestManager_EphemeralRunsDoNotCollide(t *testing.T) {
	base := t.TempDir()
	fixed := func() time.Time { return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) }

	a, b := NewManager(base), NewManager(base)
	a.now, b.now = fixed, fixed
	if err := a.Create(); err != nil {
		t.Fatal(err)
	}
	if err := b.Create(); err != nil {
		t.Fatal(err)
	}
	if a.Path() == b.Path() {
		t.Errorf("two workspaces share %s", a.Path())
	}
}

func TestManager_PersistentMode(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "keep")
	mgr := NewPersistentManager(dir)

	if err := mgr.Create(); err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if mgr.Path() != dir {
		t.Errorf("Expected path %s, got %s", dir, mgr.Path())
	}
	if !mgr.Persistent() {
		t.Error("expected persistent manager")
	}

	if err := mgr.Cleanup(); err != nil {
		t.Fatalf("Cleanup() failed: %v", err)
	}
	if _, err := os.Stat(mgr.ProjectDir()); err != nil {
		t.Errorf("persistent workspace removed: %v", err)
	}
}

func TestManager_CleanupBeforeCreate(t *testing.T) {
	if err := NewManager(t.TempDir()).Cleanup(); err != nil {
		t.Errorf("Cleanup() on uncreated workspace: %v", err)
	}
}
