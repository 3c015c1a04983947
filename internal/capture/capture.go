// Package capture runs each built example and records what it printed.
package capture

import (
	"context"
	"log/slog"

	"git.home.luguber.info/inful/errmatrix/internal/axis"
	ferrors "git.home.luguber.info/inful/errmatrix/internal/foundation/errors"
	"git.home.luguber.info/inful/errmatrix/internal/logfields"
	"git.home.luguber.info/inful/errmatrix/internal/runner"
	"git.home.luguber.info/inful/errmatrix/internal/storage"
)

// CapturedRun is the observable result of executing one example. Stderr is
// raw until a normalizer replaces it.
type CapturedRun struct {
	ID       string
	Stderr   string
	ExitCode int
}

// Locator resolves built artifacts; *build.Handle satisfies it.
type Locator interface {
	ProjectDir() string
	BinaryPath(id string) string
}

// Executor runs binaries one at a time.
type Executor struct {
	fs      storage.FS
	runner  runner.Runner
	locator Locator
	env     []string
}

// NewExecutor creates an Executor. env entries are added to each child's environment.
func NewExecutor(fsys storage.FS, r runner.Runner, loc Locator, env []string) *Executor {
	return &Executor{fs: fsys, runner: r, locator: loc, env: env}
}

// RunCell executes the binary for cell, expecting the exit class of its Operation.
func (e *Executor) RunCell(ctx context.Context, cell axis.Cell) (CapturedRun, error) {
	return e.Run(ctx, cell.ID(), cell.Operation.ExpectedExit())
}

// RunPanic executes the panic example, which must fail.
func (e *Executor) RunPanic(ctx context.Context) (CapturedRun, error) {
	return e.Run(ctx, axis.PanicID, axis.ExitFailure)
}

// Run executes the binary for id with no arguments in the project directory.
// Anything on stdout, or an exit status outside expect, violates the output
// contract.
func (e *Executor) Run(ctx context.Context, id string, expect axis.ExitClass) (CapturedRun, error) {
	bin := e.locator.BinaryPath(id)
	ok, err := e.fs.Exists(bin)
	if err != nil {
		return CapturedRun{}, err
	}
	if !ok {
		return CapturedRun{}, ferrors.ArtifactError("binary not found").
			WithContext("id", id).
			WithContext("path", bin).
			Build()
	}

	res, err := e.runner.Run(ctx, runner.Command{
		Path: bin,
		Dir:  e.locator.ProjectDir(),
		Env:  e.env,
	})
	if err != nil {
		return CapturedRun{}, ferrors.WrapError(err, ferrors.CategoryExecution, "start example").
			Fatal().
			WithContext("id", id).
			Build()
	}

	slog.Debug("Executed example", logfields.Cell(id), logfields.ExitCode(res.ExitCode))

	if len(res.Stdout) > 0 {
		return CapturedRun{}, ferrors.ExecutionError("example wrote to stdout").
			WithContext("id", id).
			WithContext("stdout", string(res.Stdout)).
			Build()
	}
	if !expect.Matches(res.ExitCode) {
		return CapturedRun{}, ferrors.ExecutionError("unexpected exit status").
			WithContext("id", id).
			WithContext("exit_code", res.ExitCode).
			WithContext("expected", expect.String()).
			WithContext("stderr", string(res.Stderr)).
			Build()
	}

	return CapturedRun{ID: id, Stderr: string(res.Stderr), ExitCode: res.ExitCode}, nil
}
