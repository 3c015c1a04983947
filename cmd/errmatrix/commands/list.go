package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"git.home.luguber.info/inful/errmatrix/internal/axis"
	"git.home.luguber.info/inful/errmatrix/internal/highlight"
)

// ListCmd implements the 'list' command.
type ListCmd struct {
	Styles bool `help:"List the available highlight styles instead"`
}

func (l *ListCmd) Run(_ *Global) error {
	if l.Styles {
		for _, s := range highlight.Styles() {
			fmt.Println(s)
		}
		return nil
	}
	return writeMatrix(os.Stdout, isColorSupported(os.Stdout))
}

// writeMatrix prints one row per ErrorKind and one column per Operation. Each
// cell shows the expected exit class.
func writeMatrix(w io.Writer, useColor bool) error {
	ok := color.New(color.FgGreen)
	fail := color.New(color.FgRed, color.Bold)
	if !useColor {
		ok.DisableColor()
		fail.DisableColor()
	} else {
		ok.EnableColor()
		fail.EnableColor()
	}

	ops := axis.AllOperations()
	kindWidth := len("kind")
	for _, k := range axis.AllErrorKinds() {
		kindWidth = max(kindWidth, len(k.ShortID()))
	}

	header := []string{pad("kind", kindWidth)}
	for _, op := range ops {
		header = append(header, pad(op.ShortID(), colWidth(op)))
	}
	if _, err := fmt.Fprintln(w, strings.Join(header, "  ")); err != nil {
		return err
	}

	for _, k := range axis.AllErrorKinds() {
		row := []string{pad(k.ShortID(), kindWidth)}
		for _, op := range ops {
			text := pad(op.ExpectedExit().String(), colWidth(op))
			if op.ExpectedExit() == axis.ExitSuccess {
				row = append(row, ok.Sprint(text))
			} else {
				row = append(row, fail.Sprint(text))
			}
		}
		if _, err := fmt.Fprintln(w, strings.Join(row, "  ")); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "\n%d examples plus %s\n", len(axis.Cells()), axis.PanicID)
	return err
}

func colWidth(op axis.Operation) int {
	return max(len(op.ShortID()), len(axis.ExitFailure.String()), len(axis.ExitSuccess.String()))
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// isColorSupported checks if f is a terminal that accepts color.
func isColorSupported(f *os.File) bool {
	if !term.IsTerminal(int(f.Fd())) {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	t := os.Getenv("TERM")
	return t != "" && t != "dumb"
}
