package runner

import (
	"context"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireShell(t *testing.T) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	sh, ok := LookPath("sh")
	if !ok {
		t.Skip("sh not installed")
	}
	return sh
}

func TestExecRunner_CapturesStreamsSeparately(t *testing.T) {
	sh := requireShell(t)

	res, err := NewExecRunner().Run(context.Background(), Command{
		Path: sh,
		Args: []string{"-c", "echo out; echo err 1>&2"},
	})
	require.NoError(t, err)
	assert.Equal(t, "out\n", string(res.Stdout))
	assert.Equal(t, "err\n", string(res.Stderr))
	assert.Equal(t, 0, res.ExitCode)
}

func TestExecRunner_NonzeroExitIsNotAnError(t *testing.T) {
	sh := requireShell(t)

	res, err := NewExecRunner().Run(context.Background(), Command{
		Path: sh,
		Args: []string{"-c", "echo crashed 1>&2; exit 101"},
	})
	require.NoError(t, err)
	assert.Equal(t, 101, res.ExitCode)
	assert.Equal(t, "crashed\n", string(res.Stderr))
	assert.Empty(t, res.Stdout)
}

func TestExecRunner_EnvAndDir(t *testing.T) {
	sh := requireShell(t)
	dir := t.TempDir()

	res, err := NewExecRunner().Run(context.Background(), Command{
		Path: sh,
		Args: []string{"-c", "printf '%s|%s' \"$ERRMATRIX_TEST\" \"$(pwd)\" 1>&2"},
		Dir:  dir,
		Env:  []string{"ERRMATRIX_TEST=yes"},
	})
	require.NoError(t, err)
	assert.Contains(t, string(res.Stderr), "yes|")
}

func TestExecRunner_MissingBinary(t *testing.T) {
	_, err := NewExecRunner().Run(context.Background(), Command{Path: "/nonexistent/errmatrix-binary"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/nonexistent/errmatrix-binary")
}

func TestCommand_String(t *testing.T) {
	assert.Equal(t, "cargo", Command{Path: "cargo"}.String())
	assert.Equal(t, "cargo build --bins", Command{Path: "cargo", Args: []string{"build", "--bins"}}.String())
}
