package commands

import (
	"fmt"
	"io"
	"os"

	"git.home.luguber.info/inful/errmatrix/internal/axis"
	ferrors "git.home.luguber.info/inful/errmatrix/internal/foundation/errors"
	"git.home.luguber.info/inful/errmatrix/internal/synth"
)

// ShowCmd implements the 'show' command.
type ShowCmd struct {
	Cell string `arg:"" help:"Example id such as anyhow_context_unwrap, or panic"`
}

func (s *ShowCmd) Run(_ *Global) error {
	return showExample(os.Stdout, s.Cell)
}

// showExample prints the unformatted source exactly as it is written to the
// scratch project.
func showExample(w io.Writer, id string) error {
	if id == axis.PanicID {
		_, err := io.WriteString(w, synth.PanicProgram().Source())
		return err
	}
	cell, err := axis.ParseCellID(id)
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryValidation, "unknown example").
			WithContext("id", id).
			WithContext("hint", "run 'errmatrix list' for the available ids").
			Build()
	}
	_, err = fmt.Fprintf(w, "// %s: %s, %s (expected exit: %s)\n%s",
		cell.ID(), cell.Kind.Title(), cell.Operation.Title(), cell.Operation.ExpectedExit(),
		synth.Synthesize(cell.Kind, cell.Operation).Source())
	return err
}
