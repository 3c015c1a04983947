package build

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	ferrors "git.home.luguber.info/inful/errmatrix/internal/foundation/errors"
	"git.home.luguber.info/inful/errmatrix/internal/logfields"
	"git.home.luguber.info/inful/errmatrix/internal/runner"
	"git.home.luguber.info/inful/errmatrix/internal/storage"
)

// Source is one program to place under src/bin.
type Source struct {
	ID   string
	Text string
}

// Options configures the scratch project and the cargo invocations.
type Options struct {
	ProjectDir   string
	PackageName  string
	Dependencies map[string]string
	Cargo        string
	// Format runs `cargo fmt` before building. Failures only warn.
	Format bool
	Env    []string
}

// Driver writes and compiles the scratch project.
type Driver struct {
	fs     storage.FS
	runner runner.Runner
	opts   Options
}

// NewDriver creates a driver. An empty Cargo defaults to "cargo".
func NewDriver(fsys storage.FS, r runner.Runner, opts Options) *Driver {
	if opts.Cargo == "" {
		opts.Cargo = "cargo"
	}
	return &Driver{fs: fsys, runner: r, opts: opts}
}

// WriteAll writes every source, formats the project and builds all binaries
// in one cargo call. A compile failure is fatal and carries cargo's stderr.
func (d *Driver) WriteAll(ctx context.Context, sources []Source) (*Handle, error) {
	if d.opts.ProjectDir == "" {
		return nil, ferrors.ValidationError("project directory is required").Build()
	}
	projectDir, err := filepath.Abs(d.opts.ProjectDir)
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryFileSystem, "resolve project directory").
			Fatal().
			WithContext("path", d.opts.ProjectDir).
			Build()
	}

	ids, err := checkSources(sources)
	if err != nil {
		return nil, err
	}

	manifest, err := CargoManifest(d.opts.PackageName, d.opts.Dependencies)
	if err != nil {
		return nil, err
	}
	if err := d.fs.WriteText(filepath.Join(projectDir, "Cargo.toml"), manifest); err != nil {
		return nil, err
	}
	for _, src := range sources {
		path := sourcePath(projectDir, src.ID)
		if err := d.fs.WriteText(path, src.Text); err != nil {
			return nil, err
		}
		slog.Debug("Wrote example source", logfields.Cell(src.ID), logfields.Path(path))
	}
	slog.Info("Scratch project written", logfields.Path(projectDir), logfields.Count(len(sources)))

	if d.opts.Format {
		d.format(ctx, projectDir)
	}

	targetDir := filepath.Join(projectDir, "target")
	if err := d.compile(ctx, projectDir, targetDir); err != nil {
		return nil, err
	}
	return newHandle(projectDir, targetDir, ids, d.fs), nil
}

func (d *Driver) format(ctx context.Context, projectDir string) {
	cmd := runner.Command{Path: d.opts.Cargo, Args: []string{"fmt"}, Dir: projectDir, Env: d.opts.Env}
	res, err := d.runner.Run(ctx, cmd)
	switch {
	case err != nil:
		slog.Warn("Formatter unavailable, keeping sources as synthesized", logfields.Command(cmd.String()), logfields.Error(err))
	case res.ExitCode != 0:
		slog.Warn("Formatter failed, keeping sources as synthesized",
			logfields.Command(cmd.String()),
			logfields.ExitCode(res.ExitCode),
			slog.String("stderr", strings.TrimSpace(string(res.Stderr))))
	default:
		slog.Debug("Formatted scratch project", logfields.Path(projectDir))
	}
}

func (d *Driver) compile(ctx context.Context, projectDir, targetDir string) error {
	cmd := runner.Command{
		Path: d.opts.Cargo,
		Args: []string{"build", "--bins", "--target-dir", targetDir},
		Dir:  projectDir,
		Env:  d.opts.Env,
	}
	slog.Info("Compiling examples", logfields.Command(cmd.String()))
	res, err := d.runner.Run(ctx, cmd)
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryBuild, "start build tool").
			Fatal().
			WithContext("command", cmd.String()).
			Build()
	}
	if res.ExitCode != 0 {
		return ferrors.BuildError("compilation failed").
			WithContext("command", cmd.String()).
			WithContext("exit_code", res.ExitCode).
			WithContext("stderr", string(res.Stderr)).
			Build()
	}
	return nil
}

func checkSources(sources []Source) ([]string, error) {
	if len(sources) == 0 {
		return nil, ferrors.ValidationError("no sources to build").Build()
	}
	ids := make([]string, 0, len(sources))
	seen := make(map[string]bool, len(sources))
	for _, src := range sources {
		if src.ID == "" || strings.ContainsAny(src.ID, `/\ `) {
			return nil, ferrors.ValidationError("invalid program id").WithContext("id", src.ID).Build()
		}
		if seen[src.ID] {
			return nil, ferrors.ValidationError("duplicate program id").WithContext("id", src.ID).Build()
		}
		seen[src.ID] = true
		ids = append(ids, src.ID)
	}
	return ids, nil
}
