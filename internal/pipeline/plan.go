package pipeline

import (
	"git.home.luguber.info/inful/errmatrix/internal/axis"
	"git.home.luguber.info/inful/errmatrix/internal/config"
	"git.home.luguber.info/inful/errmatrix/internal/render"
)

// Plan is the immutable input of one run, derived from configuration.
type Plan struct {
	Config     *config.Config
	ProjectDir string
	OutputDir  string
	Format     render.Format
	Kinds      []axis.ErrorKind
	Operations []axis.Operation
}

// Cells returns the selected cells, ErrorKind-major.
func (p Plan) Cells() []axis.Cell {
	out := make([]axis.Cell, 0, len(p.Kinds)*len(p.Operations))
	for _, k := range p.Kinds {
		for _, op := range p.Operations {
			out = append(out, axis.Cell{Kind: k, Operation: op})
		}
	}
	return out
}

// PlanBuilder constructs a Plan.
type PlanBuilder struct {
	plan Plan
}

// NewPlanBuilder starts from cfg with the full matrix selected.
func NewPlanBuilder(cfg *config.Config) *PlanBuilder {
	return &PlanBuilder{plan: Plan{
		Config:     cfg,
		OutputDir:  cfg.Output.Dir,
		Format:     render.Format(cfg.Output.Format),
		Kinds:      axis.AllErrorKinds(),
		Operations: axis.AllOperations(),
	}}
}

// WithProjectDir sets where the scratch project is written.
func (b *PlanBuilder) WithProjectDir(dir string) *PlanBuilder {
	b.plan.ProjectDir = dir
	return b
}

// WithOutputDir overrides output.dir.
func (b *PlanBuilder) WithOutputDir(dir string) *PlanBuilder {
	if dir != "" {
		b.plan.OutputDir = dir
	}
	return b
}

// WithKinds restricts the ErrorKind axis. The selection keeps page order
// whatever order kinds come in. Empty keeps every kind.
func (b *PlanBuilder) WithKinds(kinds []axis.ErrorKind) *PlanBuilder {
	if len(kinds) > 0 {
		b.plan.Kinds = axis.SelectErrorKinds(kinds)
	}
	return b
}

// WithOperations restricts the Operation axis, keeping section order. Empty
// keeps every operation.
func (b *PlanBuilder) WithOperations(ops []axis.Operation) *PlanBuilder {
	if len(ops) > 0 {
		b.plan.Operations = axis.SelectOperations(ops)
	}
	return b
}

// Build returns the plan.
func (b *PlanBuilder) Build() Plan {
	return b.plan
}
