package capture

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/errmatrix/internal/axis"
	ferrors "git.home.luguber.info/inful/errmatrix/internal/foundation/errors"
	"git.home.luguber.info/inful/errmatrix/internal/storage"
	helpers "git.home.luguber.info/inful/errmatrix/internal/testutil/testutils"
)

type fixedLocator struct{ dir string }

func (l fixedLocator) ProjectDir() string { return l.dir }
func (l fixedLocator) BinaryPath(id string) string {
	return filepath.Join(l.dir, "target", "debug", id)
}

func setup(t *testing.T, ids ...string) (*storage.MemFS, fixedLocator) {
	t.Helper()
	fsys := storage.NewMemFS()
	loc := fixedLocator{dir: "/p"}
	for _, id := range ids {
		require.NoError(t, fsys.WriteText(loc.BinaryPath(id), "\x7fELF"))
	}
	return fsys, loc
}

func TestRun_CapturesStderr(t *testing.T) {
	fsys, loc := setup(t, "io_debug")
	fake := helpers.NewFakeRunner().On("io_debug", helpers.Response{
		Stderr: "Os { code: 2, kind: NotFound, message: \"No such file or directory\" }\n",
	})
	ex := NewExecutor(fsys, fake, loc, []string{"RUST_BACKTRACE=0"})

	run, err := ex.RunCell(context.Background(), axis.Cell{Kind: axis.KindIO, Operation: axis.OpDebug})
	require.NoError(t, err)
	assert.Equal(t, "io_debug", run.ID)
	assert.Equal(t, 0, run.ExitCode)
	assert.Contains(t, run.Stderr, "NotFound")

	calls := fake.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "/p", calls[0].Dir)
	assert.Empty(t, calls[0].Args)
	assert.Equal(t, []string{"RUST_BACKTRACE=0"}, calls[0].Env)
}

func TestRun_StdoutViolatesContract(t *testing.T) {
	fsys, loc := setup(t, "anyhow_display")
	fake := helpers.NewFakeRunner().On("anyhow_display", helpers.Response{Stdout: "hello\n"})

	_, err := NewExecutor(fsys, fake, loc, nil).
		RunCell(context.Background(), axis.Cell{Kind: axis.KindAnyhow, Operation: axis.OpDisplay})
	require.Error(t, err)
	ce, ok := ferrors.AsClassified(err)
	require.True(t, ok)
	assert.Equal(t, ferrors.CategoryExecution, ce.Category())
	id, _ := ce.Context().GetString("id")
	assert.Equal(t, "anyhow_display", id)
}

func TestRun_ExitClass(t *testing.T) {
	tests := []struct {
		name    string
		op      axis.Operation
		code    int
		wantErr bool
	}{
		{"print succeeds", axis.OpDebug, 0, false},
		{"print crashed", axis.OpDebug, 101, true},
		{"unwrap panics", axis.OpUnwrap, 101, false},
		{"unwrap exited cleanly", axis.OpUnwrap, 0, true},
		{"return from main", axis.OpReturn, 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cell := axis.Cell{Kind: axis.KindEyre, Operation: tt.op}
			fsys, loc := setup(t, cell.ID())
			fake := helpers.NewFakeRunner().On(cell.ID(), helpers.Response{ExitCode: tt.code, Stderr: "Error: x\n"})

			_, err := NewExecutor(fsys, fake, loc, nil).RunCell(context.Background(), cell)
			if tt.wantErr {
				assert.True(t, ferrors.HasCategory(err, ferrors.CategoryExecution))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRun_MissingBinary(t *testing.T) {
	fsys, loc := setup(t)
	fake := helpers.NewFakeRunner()

	_, err := NewExecutor(fsys, fake, loc, nil).RunPanic(context.Background())
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryArtifact))
	assert.Empty(t, fake.Calls())
}

func TestRunPanic(t *testing.T) {
	fsys, loc := setup(t, axis.PanicID)
	fake := helpers.NewFakeRunner().On(axis.PanicID, helpers.Response{
		ExitCode: 101,
		Stderr:   "thread 'main' panicked at src/bin/panic.rs:2:5:\noh no\n",
	})
	run, err := NewExecutor(fsys, fake, loc, nil).RunPanic(context.Background())
	require.NoError(t, err)
	assert.Equal(t, axis.PanicID, run.ID)
	assert.Equal(t, 101, run.ExitCode)
}

func TestRun_StartFailure(t *testing.T) {
	fsys, loc := setup(t, "io_debug")
	fake := helpers.NewFakeRunner().On("io_debug", helpers.Response{Err: errors.New("permission denied")})

	_, err := NewExecutor(fsys, fake, loc, nil).Run(context.Background(), "io_debug", axis.ExitSuccess)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryExecution))
}
