package synth

import (
	"fmt"
	"strings"

	"git.home.luguber.info/inful/errmatrix/internal/axis"
	ferrors "git.home.luguber.info/inful/errmatrix/internal/foundation/errors"
)

// BadPath is removed by every example. It must stay identical across cells so
// that captured outputs differ only in wrapping and operation.
const BadPath = "/this/file/does/not/exist"

// Annotations attached by the contextual error kinds.
const (
	InnerContext = "failed to remove file"
	OuterContext = "failed to clean up"
)

// EntryMarker starts the entry point line in every synthesized program.
const EntryMarker = "fn main("

// FailingCall is the filesystem call shared by all cells.
func FailingCall() string {
	return fmt.Sprintf("std::fs::remove_file(%q)", BadPath)
}

// Synthesize produces the example program for one cell.
func Synthesize(kind axis.ErrorKind, op axis.Operation) Program {
	cell := axis.Cell{Kind: kind, Operation: op}
	var b builder

	if setup := kind.SetupLines(); len(setup) > 0 {
		for _, line := range setup {
			b.add(line)
		}
		b.empty()
	}

	b.add(fmt.Sprintf("fn make_error() -> Result<(), %s> {", kind.QualifiedType()))
	for _, line := range makeErrorBody(kind) {
		b.addIndented(line)
	}
	b.add("}")
	b.empty()

	if op.MainSignatureNeeded() {
		b.add(fmt.Sprintf("fn main() -> Result<(), %s> {", kind.QualifiedType()))
	} else {
		b.add("fn main() {")
	}
	if install := kind.InstallCall(); install != "" {
		if op.MainSignatureNeeded() {
			b.addIndented(install + "?;")
		} else {
			b.addIndented(install + ".unwrap();")
		}
	}
	b.addIndented(op.Statement())
	b.add("}")

	return b.build(cell.ID())
}

func makeErrorBody(kind axis.ErrorKind) []string {
	call := FailingCall()
	switch kind.Wrapping() {
	case axis.WrapNone:
		return []string{call}
	case axis.WrapPropagate:
		return []string{fmt.Sprintf("Ok(%s?)", call)}
	case axis.WrapContext:
		return []string{fmt.Sprintf("Ok(%s.context(%q)?)", call, InnerContext)}
	case axis.WrapContext2:
		return []string{
			fmt.Sprintf("Ok(%s", call),
			indent(fmt.Sprintf(".context(%q)", InnerContext)),
			indent(fmt.Sprintf(".context(%q)?)", OuterContext)),
		}
	case axis.WrapEyreContext:
		return []string{fmt.Sprintf("Ok(%s.wrap_err(%q)?)", call, InnerContext)}
	default:
		panic(fmt.Sprintf("synth: unhandled wrapping %d", kind.Wrapping()))
	}
}

// PanicProgram is the standalone example of an uncaught crash that involves no error type.
func PanicProgram() Program {
	var b builder
	b.add("fn main() {")
	b.addIndented(`panic!("oh no");`)
	b.add("}")
	return b.build(axis.PanicID)
}

// SplitEntry divides a program's source at its single entry point. setup is
// everything before the entry line with trailing blank lines trimmed; entry is
// the entry line onward. A source with zero or several entry points is a
// synthesis inconsistency.
func SplitEntry(source string) (setup, entry string, err error) {
	lines := strings.Split(strings.TrimRight(source, "\n"), "\n")
	at := -1
	for i, line := range lines {
		if !strings.HasPrefix(line, EntryMarker) {
			continue
		}
		if at >= 0 {
			return "", "", ferrors.SynthesisError("multiple entry points").
				WithContext("lines", fmt.Sprintf("%d,%d", at+1, i+1)).
				Build()
		}
		at = i
	}
	if at < 0 {
		return "", "", ferrors.SynthesisError("no entry point").Build()
	}

	head := lines[:at]
	for len(head) > 0 && strings.TrimSpace(head[len(head)-1]) == "" {
		head = head[:len(head)-1]
	}
	return strings.Join(head, "\n"), strings.Join(lines[at:], "\n"), nil
}
