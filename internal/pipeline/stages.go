package pipeline

import (
	"context"
	"log/slog"
	"strings"

	"git.home.luguber.info/inful/errmatrix/internal/assemble"
	"git.home.luguber.info/inful/errmatrix/internal/axis"
	"git.home.luguber.info/inful/errmatrix/internal/build"
	"git.home.luguber.info/inful/errmatrix/internal/capture"
	"git.home.luguber.info/inful/errmatrix/internal/logfields"
	"git.home.luguber.info/inful/errmatrix/internal/manifest"
	"git.home.luguber.info/inful/errmatrix/internal/normalize"
	"git.home.luguber.info/inful/errmatrix/internal/render"
	"git.home.luguber.info/inful/errmatrix/internal/synth"
)

func (p *Pipeline) synthesize(_ context.Context, r *run) error {
	cells := r.plan.Cells()
	r.sources = make([]build.Source, 0, len(cells)+1)
	ids := make([]string, 0, len(cells)+1)
	for _, c := range cells {
		prog := synth.Synthesize(c.Kind, c.Operation)
		r.sources = append(r.sources, build.Source{ID: prog.ID, Text: prog.Source()})
		ids = append(ids, prog.ID)
		slog.Debug("Synthesized example",
			logfields.Cell(prog.ID),
			logfields.ErrorKind(c.Kind.ShortID()),
			logfields.Operation(c.Operation.ShortID()))
	}
	panicProg := synth.PanicProgram()
	r.sources = append(r.sources, build.Source{ID: panicProg.ID, Text: panicProg.Source()})
	r.manifest.Inputs.Cells = append(ids, panicProg.ID)
	return nil
}

func (p *Pipeline) build(ctx context.Context, r *run) error {
	cfg := r.plan.Config

	version, err := build.NewToolchain(p.runner, cfg.Toolchain.Rustc).Version(ctx)
	if err != nil {
		return err
	}
	r.report.Version = version
	r.manifest.Inputs.Toolchain = version
	if r.manifest.Inputs.ConfigHash, err = cfg.Hash(); err != nil {
		return err
	}
	slog.Info("Toolchain detected", logfields.RunID(r.report.RunID), slog.String("version", version))

	driver := build.NewDriver(p.fs, p.runner, build.Options{
		ProjectDir:   r.plan.ProjectDir,
		PackageName:  cfg.Project.PackageName,
		Dependencies: cfg.Project.Dependencies,
		Cargo:        cfg.Toolchain.Cargo,
		Format:       cfg.FormatEnabled(),
		Env:          cfg.EnvList(),
	})
	r.handle, err = driver.WriteAll(ctx, r.sources)
	return err
}

func (p *Pipeline) execute(ctx context.Context, r *run) error {
	cfg := r.plan.Config
	norm, err := normalize.ForHost(normalize.Options{
		ProjectDir:         r.handle.ProjectDir(),
		HomeDir:            p.homeDir,
		ProjectPlaceholder: cfg.Normalize.ProjectPlaceholder,
		HomePlaceholder:    cfg.Normalize.HomePlaceholder,
		RustcHash:          cfg.RustcHashEnabled(),
	})
	if err != nil {
		return err
	}

	ex := capture.NewExecutor(p.fs, p.runner, r.handle, cfg.EnvList())
	for _, c := range r.plan.Cells() {
		cr, err := ex.RunCell(ctx, c)
		if err != nil {
			return err
		}
		p.recorder.IncExampleExit(c.Kind.ShortID(), c.Operation.ShortID(), cr.ExitCode)
		r.runs[cr.ID] = norm.Apply(cr)
	}

	cr, err := ex.RunPanic(ctx)
	if err != nil {
		return err
	}
	p.recorder.IncExampleExit(axis.PanicID, "", cr.ExitCode)
	r.runs[cr.ID] = norm.Apply(cr)
	return nil
}

func (p *Pipeline) assemble(_ context.Context, r *run) error {
	h, err := p.highlighterFor(r.plan.Config.Output.HighlightStyle)
	if err != nil {
		return err
	}
	sources, err := r.handle.ReadSources()
	if err != nil {
		return err
	}
	r.pages, err = assemble.New(h).Assemble(r.plan.Kinds, r.plan.Operations, sources, r.runs)
	return err
}

func (p *Pipeline) render(_ context.Context, r *run) error {
	renderer, err := render.New(r.plan.Format)
	if err != nil {
		return err
	}
	meta := render.Meta{SiteTitle: r.plan.Config.Output.Title, Version: r.report.Version}
	w := render.NewWriter(p.fs, r.plan.OutputDir)

	for _, page := range r.pages {
		doc, err := renderer.Render(page, meta)
		if err != nil {
			return err
		}
		path, err := w.Write(page.ID, renderer.Extension(), doc)
		if err != nil {
			return err
		}
		r.manifest.AddPage(page.ID+"."+renderer.Extension(), doc)
		r.report.Pages = append(r.report.Pages, path)
		slog.Debug("Wrote page", logfields.Path(path))
	}

	r.manifest.Outputs.Format = string(r.plan.Format)
	r.manifest.Status = "success"
	r.manifest.Duration = p.now().Sub(r.manifest.Timestamp).Milliseconds()
	data, err := r.manifest.ToJSON()
	if err != nil {
		return err
	}
	r.report.Manifest, err = w.Write(strings.TrimSuffix(manifest.FileName, ".json"), "json", data)
	return err
}
