package assemble

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/errmatrix/internal/axis"
	"git.home.luguber.info/inful/errmatrix/internal/capture"
	ferrors "git.home.luguber.info/inful/errmatrix/internal/foundation/errors"
	"git.home.luguber.info/inful/errmatrix/internal/synth"
)

type tagHighlighter struct {
	calls int
	err   error
}

func (h *tagHighlighter) Highlight(code string) (string, error) {
	h.calls++
	if h.err != nil {
		return "", h.err
	}
	return "<hl>" + code + "</hl>", nil
}

func fixture() (map[string]string, map[string]capture.CapturedRun) {
	sources := map[string]string{}
	runs := map[string]capture.CapturedRun{}
	for _, c := range axis.Cells() {
		sources[c.ID()] = synth.Synthesize(c.Kind, c.Operation).Source()
		runs[c.ID()] = capture.CapturedRun{ID: c.ID(), Stderr: "stderr of " + c.ID() + "\n"}
	}
	sources[axis.PanicID] = synth.PanicProgram().Source()
	runs[axis.PanicID] = capture.CapturedRun{ID: axis.PanicID, Stderr: "thread 'main' panicked\n", ExitCode: 101}
	return sources, runs
}

func TestAssemble_PagesInAxisOrder(t *testing.T) {
	sources, runs := fixture()
	pages, err := New(&tagHighlighter{}).Assemble(axis.AllErrorKinds(), axis.AllOperations(), sources, runs)
	require.NoError(t, err)

	var ids []string
	for _, p := range pages {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"io", "anyhow", "anyhow_context", "anyhow_context2", "eyre", "custom", "panic"}, ids)

	for i, p := range pages {
		assert.Equal(t, i+1, p.Weight)
	}
}

func TestAssemble_SectionsInOperationOrder(t *testing.T) {
	sources, runs := fixture()
	pages, err := New(&tagHighlighter{}).Assemble(axis.AllErrorKinds(), axis.AllOperations(), sources, runs)
	require.NoError(t, err)

	page := pages[3]
	require.Equal(t, "anyhow_context2", page.ID)
	require.Len(t, page.Sections, len(axis.AllOperations()))
	for i, op := range axis.AllOperations() {
		s := page.Sections[i]
		assert.Equal(t, op.Title(), s.Heading)
		assert.Equal(t, "anyhow_context2_"+op.ShortID(), s.ID)
		assert.True(t, strings.HasPrefix(s.Code.Source, synth.EntryMarker))
		assert.Equal(t, "<hl>"+s.Code.Source+"</hl>", s.Code.Highlighted)
		assert.Equal(t, "stderr of "+s.ID+"\n", s.Output)
	}
}

func TestAssemble_SetupOnceFromFirstOperation(t *testing.T) {
	sources, runs := fixture()
	first := axis.Cell{Kind: axis.KindCustom, Operation: axis.AllOperations()[0]}.ID()
	sources[first] = strings.Replace(sources[first], "enum CustomError", "enum CustomError /* first */", 1)

	pages, err := New(&tagHighlighter{}).Assemble(axis.AllErrorKinds(), axis.AllOperations(), sources, runs)
	require.NoError(t, err)

	custom := pages[5]
	require.NotNil(t, custom.Setup)
	assert.Contains(t, custom.Setup.Source, "/* first */")
	assert.Contains(t, custom.Setup.Source, "fn make_error()")
	assert.NotContains(t, custom.Setup.Source, synth.EntryMarker)
	for _, s := range custom.Sections {
		assert.NotContains(t, s.Code.Source, "fn make_error()")
	}
}

func TestAssemble_NavMarksActivePage(t *testing.T) {
	sources, runs := fixture()
	pages, err := New(&tagHighlighter{}).Assemble(axis.AllErrorKinds(), axis.AllOperations(), sources, runs)
	require.NoError(t, err)

	for _, p := range pages {
		require.Len(t, p.Nav, len(axis.AllErrorKinds())+1)
		assert.Equal(t, axis.PanicID, p.Nav[len(p.Nav)-1].ID)

		active, ok := p.ActiveNav()
		require.True(t, ok, p.ID)
		assert.Equal(t, p.ID, active.ID)

		count := 0
		for _, l := range p.Nav {
			if l.Active {
				count++
			}
		}
		assert.Equal(t, 1, count, p.ID)
	}
}

func TestAssemble_PanicPage(t *testing.T) {
	sources, runs := fixture()
	pages, err := New(&tagHighlighter{}).Assemble(axis.AllErrorKinds(), axis.AllOperations(), sources, runs)
	require.NoError(t, err)

	p := pages[len(pages)-1]
	assert.Equal(t, axis.PanicID, p.ID)
	assert.Nil(t, p.Setup)
	require.Len(t, p.Sections, 1)
	assert.Equal(t, "fn main() {\n    panic!(\"oh no\");\n}", p.Sections[0].Code.Source)
	assert.Equal(t, "thread 'main' panicked\n", p.Sections[0].Output)
}

func TestAssemble_MissingRunIsFatal(t *testing.T) {
	sources, runs := fixture()
	delete(runs, "eyre_expect")

	_, err := New(&tagHighlighter{}).Assemble(axis.AllErrorKinds(), axis.AllOperations(), sources, runs)
	require.Error(t, err)
	ce, ok := ferrors.AsClassified(err)
	require.True(t, ok)
	assert.Equal(t, ferrors.CategoryArtifact, ce.Category())
	id, _ := ce.Context().GetString("id")
	assert.Equal(t, "eyre_expect", id)
}

func TestAssemble_MissingPanicSource(t *testing.T) {
	sources, runs := fixture()
	delete(sources, axis.PanicID)

	_, err := New(&tagHighlighter{}).Assemble(axis.AllErrorKinds(), axis.AllOperations(), sources, runs)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryArtifact))
}

func TestAssemble_SourceWithoutEntryPoint(t *testing.T) {
	sources, runs := fixture()
	sources["io_debug"] = "fn make_error() {}\n"

	_, err := New(&tagHighlighter{}).Assemble(axis.AllErrorKinds(), axis.AllOperations(), sources, runs)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategorySynthesis))
	assert.Equal(t, 10, ferrors.NewCLIErrorAdapter(false, nil).ExitCodeFor(err))
}

func TestAssemble_HighlighterFailure(t *testing.T) {
	sources, runs := fixture()
	_, err := New(&tagHighlighter{err: errors.New("boom")}).
		Assemble(axis.AllErrorKinds(), axis.AllOperations(), sources, runs)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryRender))
}

func TestAssemble_SubsetOfAxes(t *testing.T) {
	sources, runs := fixture()
	pages, err := New(&tagHighlighter{}).Assemble(
		[]axis.ErrorKind{axis.KindIO},
		[]axis.Operation{axis.OpUnwrap},
		sources, runs)
	require.NoError(t, err)
	require.Len(t, pages, 2)
	require.Len(t, pages[0].Sections, 1)
	assert.Equal(t, "io_unwrap", pages[0].Sections[0].ID)
}

func TestNav(t *testing.T) {
	nav := Nav(axis.AllErrorKinds())
	var ids []string
	for _, l := range nav {
		ids = append(ids, l.ID)
		assert.False(t, l.Active)
	}
	assert.Equal(t, []string{"io", "anyhow", "anyhow_context", "anyhow_context2", "eyre", "custom", "panic"}, ids)
}
