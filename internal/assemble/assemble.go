package assemble

import (
	"log/slog"

	"git.home.luguber.info/inful/errmatrix/internal/axis"
	"git.home.luguber.info/inful/errmatrix/internal/capture"
	ferrors "git.home.luguber.info/inful/errmatrix/internal/foundation/errors"
	"git.home.luguber.info/inful/errmatrix/internal/logfields"
	"git.home.luguber.info/inful/errmatrix/internal/synth"
)

// PanicTitle heads the standalone panic page.
const PanicTitle = "panic"

const panicDescription = "A panic is not an error value at all. " +
	"The program below crashes directly, without any error type involved, " +
	"for comparison with the outputs of `unwrap` and `expect` on the other pages."

// Highlighter marks up source text. Output must be deterministic for identical input.
type Highlighter interface {
	Highlight(code string) (string, error)
}

// Assembler builds pages from sources keyed by program id and captured runs
// keyed by the same ids.
type Assembler struct {
	highlighter Highlighter
}

// New creates an Assembler.
func New(h Highlighter) *Assembler {
	return &Assembler{highlighter: h}
}

// Assemble returns one page per kind in the given order followed by the panic
// page. Every (kind, op) cell and the panic program must have both a source
// and a captured run.
func (a *Assembler) Assemble(
	kinds []axis.ErrorKind,
	ops []axis.Operation,
	sources map[string]string,
	runs map[string]capture.CapturedRun,
) ([]Page, error) {
	if len(kinds) == 0 || len(ops) == 0 {
		return nil, ferrors.ValidationError("nothing to assemble").Build()
	}

	nav := Nav(kinds)
	pages := make([]Page, 0, len(kinds)+1)
	for i, kind := range kinds {
		page, err := a.kindPage(kind, ops, sources, runs)
		if err != nil {
			return nil, err
		}
		page.Nav = markActive(nav, page.ID)
		page.Weight = i + 1
		pages = append(pages, page)
		slog.Debug("Assembled page", logfields.ErrorKind(kind.ShortID()), logfields.Count(len(page.Sections)))
	}

	panicPage, err := a.panicPage(sources, runs)
	if err != nil {
		return nil, err
	}
	panicPage.Nav = markActive(nav, panicPage.ID)
	panicPage.Weight = len(kinds) + 1
	pages = append(pages, panicPage)

	return pages, nil
}

func (a *Assembler) kindPage(
	kind axis.ErrorKind,
	ops []axis.Operation,
	sources map[string]string,
	runs map[string]capture.CapturedRun,
) (Page, error) {
	page := Page{
		ID:          kind.ShortID(),
		Title:       kind.Title(),
		Description: kind.Description(),
		Sections:    make([]Section, 0, len(ops)),
	}

	for i, op := range ops {
		id := axis.Cell{Kind: kind, Operation: op}.ID()
		src, run, err := lookup(id, sources, runs)
		if err != nil {
			return Page{}, err
		}
		setup, entry, err := synth.SplitEntry(src)
		if err != nil {
			return Page{}, ferrors.WrapError(err, ferrors.CategorySynthesis, "split source").
				Fatal().
				WithContext("id", id).
				Build()
		}

		if i == 0 {
			code, err := a.code(setup)
			if err != nil {
				return Page{}, err
			}
			page.Setup = &code
		}

		code, err := a.code(entry)
		if err != nil {
			return Page{}, err
		}
		page.Sections = append(page.Sections, Section{
			ID:      id,
			Heading: op.Title(),
			Code:    code,
			Output:  run.Stderr,
		})
	}
	return page, nil
}

func (a *Assembler) panicPage(sources map[string]string, runs map[string]capture.CapturedRun) (Page, error) {
	src, run, err := lookup(axis.PanicID, sources, runs)
	if err != nil {
		return Page{}, err
	}
	code, err := a.code(trimTrailingNewlines(src))
	if err != nil {
		return Page{}, err
	}
	return Page{
		ID:          axis.PanicID,
		Title:       PanicTitle,
		Description: panicDescription,
		Sections: []Section{{
			ID:      axis.PanicID,
			Heading: PanicTitle,
			Code:    code,
			Output:  run.Stderr,
		}},
	}, nil
}

func (a *Assembler) code(src string) (Code, error) {
	if src == "" {
		return Code{}, nil
	}
	html, err := a.highlighter.Highlight(src)
	if err != nil {
		return Code{}, ferrors.WrapError(err, ferrors.CategoryRender, "highlight source").Fatal().Build()
	}
	return Code{Source: src, Highlighted: html}, nil
}

func lookup(id string, sources map[string]string, runs map[string]capture.CapturedRun) (string, capture.CapturedRun, error) {
	src, ok := sources[id]
	if !ok {
		return "", capture.CapturedRun{}, ferrors.ArtifactError("missing source").WithContext("id", id).Build()
	}
	run, ok := runs[id]
	if !ok {
		return "", capture.CapturedRun{}, ferrors.ArtifactError("missing captured run").WithContext("id", id).Build()
	}
	return src, run, nil
}

func trimTrailingNewlines(s string) string {
	for len(s) > 0 && s[len(s)-1] == '\n' {
		s = s[:len(s)-1]
	}
	return s
}
