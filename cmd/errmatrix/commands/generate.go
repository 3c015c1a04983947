package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fatih/color"
	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/errmatrix/internal/axis"
	"git.home.luguber.info/inful/errmatrix/internal/config"
	ferrors "git.home.luguber.info/inful/errmatrix/internal/foundation/errors"
	"git.home.luguber.info/inful/errmatrix/internal/logfields"
	"git.home.luguber.info/inful/errmatrix/internal/metrics"
	"git.home.luguber.info/inful/errmatrix/internal/pipeline"
	"git.home.luguber.info/inful/errmatrix/internal/runner"
	"git.home.luguber.info/inful/errmatrix/internal/storage"
	"git.home.luguber.info/inful/errmatrix/internal/workspace"
)

// GenerateCmd implements the 'generate' command.
type GenerateCmd struct {
	Output     string   `short:"o" help:"Output directory (overrides output.dir)"`
	Format     string   `short:"f" help:"Output format: html or markdown (overrides output.format)"`
	ProjectDir string   `name:"project-dir" help:"Workspace directory (overrides project.dir)"`
	Keep       bool     `help:"Keep the Cargo project in --project-dir after the run"`
	Kind       []string `name:"kind" sep:"," help:"Restrict to these error kinds"`
	Op         []string `name:"op" sep:"," help:"Restrict to these operations"`
	Metrics    string   `name:"metrics-textfile" help:"Write Prometheus metrics to this file after the run"`
}

func (g *GenerateCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	if err := g.applyOverrides(cfg); err != nil {
		return err
	}
	kinds, ops, err := parseAxes(g.Kind, g.Op)
	if err != nil {
		return err
	}

	if _, ok := runner.LookPath(cfg.Toolchain.Cargo); !ok {
		return ferrors.BuildError("build tool not found").
			WithContext("command", cfg.Toolchain.Cargo).
			WithContext("hint", "install Rust from https://rustup.rs or set toolchain.cargo").
			Build()
	}

	ws := newWorkspace(cfg)
	if err := ws.Create(); err != nil {
		return err
	}
	defer func() {
		if err := ws.Cleanup(); err != nil {
			slog.Warn("Failed to clean up workspace", logfields.Error(err))
		}
	}()

	var rec metrics.Recorder = metrics.NoopRecorder{}
	var promRec *metrics.PrometheusRecorder
	if cfg.Metrics.Textfile != "" {
		promRec = metrics.NewPrometheusRecorder(prom.NewRegistry())
		rec = promRec
	}

	plan := pipeline.NewPlanBuilder(cfg).
		WithProjectDir(ws.ProjectDir()).
		WithKinds(kinds).
		WithOperations(ops).
		Build()

	report, runErr := pipeline.New(storage.NewOSFS(), runner.NewExecRunner(), pipeline.WithRecorder(rec)).
		Run(context.Background(), plan)

	if promRec != nil {
		if err := promRec.WriteTextfile(cfg.Metrics.Textfile); err != nil {
			slog.Warn("Failed to write metrics", logfields.Path(cfg.Metrics.Textfile), logfields.Error(err))
		}
	}
	if runErr != nil {
		return runErr
	}

	fmt.Printf("%s %d pages for %d examples in %s\n",
		color.GreenString("Generated"), len(report.Pages), report.Cells+1, plan.OutputDir)
	fmt.Printf("Toolchain: %s\n", report.Version)
	if ws.Persistent() {
		fmt.Printf("Cargo project kept at %s\n", ws.ProjectDir())
	}
	return nil
}

func (g *GenerateCmd) applyOverrides(cfg *config.Config) error {
	if g.Output != "" {
		cfg.Output.Dir = g.Output
	}
	if g.Format != "" {
		cfg.Output.Format = g.Format
	}
	if g.ProjectDir != "" {
		cfg.Project.Dir = g.ProjectDir
	}
	if g.Keep {
		cfg.Project.Keep = true
	}
	if g.Metrics != "" {
		cfg.Metrics.Textfile = g.Metrics
	}
	warnings, err := cfg.Finalize()
	if err != nil {
		return err
	}
	for _, w := range warnings {
		slog.Warn("Flag adjusted", slog.String("detail", w))
	}
	return nil
}

func newWorkspace(cfg *config.Config) *workspace.Manager {
	if cfg.Project.Keep {
		return workspace.NewPersistentManager(cfg.Project.Dir)
	}
	return workspace.NewManager(cfg.Project.Dir)
}

// parseAxes resolves --kind and --op values into axis order without
// duplicates. Empty lists select everything.
func parseAxes(kindIDs, opIDs []string) ([]axis.ErrorKind, []axis.Operation, error) {
	kinds := make([]axis.ErrorKind, 0, len(kindIDs))
	for _, id := range kindIDs {
		k, err := axis.ParseErrorKind(id)
		if err != nil {
			return nil, nil, ferrors.WrapError(err, ferrors.CategoryValidation, "unknown error kind").
				WithContext("kind", id).
				Build()
		}
		kinds = append(kinds, k)
	}
	ops := make([]axis.Operation, 0, len(opIDs))
	for _, id := range opIDs {
		op, err := axis.ParseOperation(id)
		if err != nil {
			return nil, nil, ferrors.WrapError(err, ferrors.CategoryValidation, "unknown operation").
				WithContext("operation", id).
				Build()
		}
		ops = append(ops, op)
	}
	return axis.SelectErrorKinds(kinds), axis.SelectOperations(ops), nil
}
