// Package pipeline runs one generation: synthesize, build, execute, assemble
// and render.
package pipeline

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"time"

	"git.home.luguber.info/inful/errmatrix/internal/assemble"
	"git.home.luguber.info/inful/errmatrix/internal/build"
	"git.home.luguber.info/inful/errmatrix/internal/capture"
	ferrors "git.home.luguber.info/inful/errmatrix/internal/foundation/errors"
	"git.home.luguber.info/inful/errmatrix/internal/highlight"
	"git.home.luguber.info/inful/errmatrix/internal/logfields"
	"git.home.luguber.info/inful/errmatrix/internal/manifest"
	"git.home.luguber.info/inful/errmatrix/internal/metrics"
	"git.home.luguber.info/inful/errmatrix/internal/runner"
	"git.home.luguber.info/inful/errmatrix/internal/storage"
)

// Stage names, in execution order.
const (
	StageSynthesize = "synthesize"
	StageBuild      = "build"
	StageExecute    = "execute"
	StageAssemble   = "assemble"
	StageRender     = "render"
)

// Pipeline wires the stages to a filesystem and a process runner.
type Pipeline struct {
	fs          storage.FS
	runner      runner.Runner
	recorder    metrics.Recorder
	highlighter assemble.Highlighter
	homeDir     string
	now         func() time.Time
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithRecorder sets the metrics recorder.
func WithRecorder(r metrics.Recorder) Option {
	return func(p *Pipeline) { p.recorder = r }
}

// WithHighlighter replaces the configured Chroma highlighter.
func WithHighlighter(h assemble.Highlighter) Option {
	return func(p *Pipeline) { p.highlighter = h }
}

// WithHomeDir overrides the home directory that is normalized out of output.
func WithHomeDir(dir string) Option {
	return func(p *Pipeline) { p.homeDir = dir }
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) { p.now = now }
}

// New creates a Pipeline.
func New(fsys storage.FS, r runner.Runner, opts ...Option) *Pipeline {
	p := &Pipeline{
		fs:       fsys,
		runner:   r,
		recorder: metrics.NoopRecorder{},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.homeDir == "" {
		p.homeDir, _ = os.UserHomeDir()
	}
	if strings.Trim(p.homeDir, `/\`) == "" {
		p.homeDir = ""
	}
	return p
}

// run carries state between stages.
type run struct {
	plan     Plan
	report   *Report
	manifest *manifest.RunManifest
	sources  []build.Source
	handle   *build.Handle
	runs     map[string]capture.CapturedRun
	pages    []assemble.Page
}

// Run executes every stage in order. The first failure aborts the run and no
// further stage starts.
func (p *Pipeline) Run(ctx context.Context, plan Plan) (*Report, error) {
	start := p.now()
	m := manifest.New(start)
	r := &run{
		plan:     plan,
		manifest: m,
		report:   &Report{RunID: m.ID},
		runs:     map[string]capture.CapturedRun{},
	}

	cells := plan.Cells()
	p.recorder.SetCells(len(cells))
	slog.Info("Generation started",
		logfields.RunID(m.ID),
		logfields.Count(len(cells)),
		logfields.Format(string(plan.Format)))

	stages := []struct {
		name string
		fn   func(context.Context, *run) error
	}{
		{StageSynthesize, p.synthesize},
		{StageBuild, p.build},
		{StageExecute, p.execute},
		{StageAssemble, p.assemble},
		{StageRender, p.render},
	}
	for _, s := range stages {
		if err := p.stage(ctx, r, s.name, s.fn); err != nil {
			d := p.now().Sub(start)
			p.recorder.ObserveRunDuration(d)
			p.recorder.IncRunOutcome(metrics.ResultFatal)
			return nil, err
		}
	}

	r.report.Cells = len(cells)
	r.report.Duration = p.now().Sub(start)
	p.recorder.ObserveRunDuration(r.report.Duration)
	p.recorder.IncRunOutcome(metrics.ResultSuccess)
	slog.Info("Generation finished",
		logfields.RunID(m.ID),
		logfields.Count(len(r.report.Pages)),
		logfields.DurationMS(float64(r.report.Duration.Milliseconds())))
	return r.report, nil
}

func (p *Pipeline) stage(ctx context.Context, r *run, name string, fn func(context.Context, *run) error) error {
	start := p.now()
	slog.Debug("Stage started", logfields.RunID(r.report.RunID), logfields.Stage(name))
	err := fn(ctx, r)
	d := p.now().Sub(start)
	p.recorder.ObserveStageDuration(name, d)
	r.report.Stages = append(r.report.Stages, StageTiming{Name: name, Duration: d})

	if err != nil {
		p.recorder.IncStageResult(name, metrics.ResultFatal)
		slog.Error("Stage failed",
			logfields.RunID(r.report.RunID),
			logfields.Stage(name),
			logfields.Error(err))
		return ferrors.WrapError(err, ferrors.GetCategory(err), "stage "+name+" failed").
			Fatal().
			WithContext("stage", name).
			Build()
	}
	p.recorder.IncStageResult(name, metrics.ResultSuccess)
	slog.Info("Stage completed",
		logfields.RunID(r.report.RunID),
		logfields.Stage(name),
		logfields.DurationMS(float64(d.Milliseconds())))
	return nil
}

func (p *Pipeline) highlighterFor(cfg string) (assemble.Highlighter, error) {
	if p.highlighter != nil {
		return p.highlighter, nil
	}
	return highlight.NewChroma(cfg)
}
