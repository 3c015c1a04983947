package storage

import (
	"path"
	"sort"
	"strings"
	"sync"
)

// MemFS is an in-memory FS for tests. Directories are implied by file paths
// and by explicit MkdirAll calls.
type MemFS struct {
	mu    sync.RWMutex
	files map[string]string
	dirs  map[string]bool
	calls MemCalls

	// WriteErr, when set, is returned by every WriteText call.
	WriteErr error
}

// MemCalls tracks method invocations for test verification.
type MemCalls struct {
	WriteText int
	ReadText  int
	MkdirAll  int
	Exists    int
}

// NewMemFS creates an empty in-memory filesystem.
func NewMemFS() *MemFS {
	return &MemFS{
		files: make(map[string]string),
		dirs:  make(map[string]bool),
	}
}

func (m *MemFS) WriteText(p, content string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls.WriteText++
	if m.WriteErr != nil {
		return m.WriteErr
	}
	p = path.Clean(p)
	m.files[p] = content
	m.markParents(p)
	return nil
}

func (m *MemFS) ReadText(p string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	m.calls.ReadText++
	content, ok := m.files[path.Clean(p)]
	if !ok {
		return "", ErrNotFound{Path: p}
	}
	return content, nil
}

func (m *MemFS) MkdirAll(p string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls.MkdirAll++
	p = path.Clean(p)
	m.dirs[p] = true
	m.markParents(p)
	return nil
}

func (m *MemFS) Exists(p string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	m.calls.Exists++
	p = path.Clean(p)
	_, isFile := m.files[p]
	return isFile || m.dirs[p], nil
}

// Files lists every stored file path in sorted order.
func (m *MemFS) Files() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, 0, len(m.files))
	for p := range m.files {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Calls returns a snapshot of the invocation counters.
func (m *MemFS) Calls() MemCalls {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.calls
}

func (m *MemFS) markParents(p string) {
	for dir := path.Dir(p); dir != "." && dir != "/" && !strings.HasSuffix(dir, ":"); dir = path.Dir(dir) {
		m.dirs[dir] = true
	}
}
