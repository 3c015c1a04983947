// Package axis defines the two dimensions of the example matrix: how an error
// is represented (ErrorKind) and how a failing result is consumed (Operation).
//
// Both are closed enumerations backed by a static metadata table. The order
// returned by AllErrorKinds and AllOperations is the page and navigation order.
package axis

import (
	"fmt"
	"strings"
)

// PanicID identifies the standalone panic example and its page.
const PanicID = "panic"

// ErrorKind is a strategy for representing or wrapping a failure.
type ErrorKind int

const (
	KindIO ErrorKind = iota
	KindAnyhow
	KindAnyhowContext
	KindAnyhowContext2
	KindEyre
	KindCustom
)

// Wrapping selects how make_error feeds the I/O failure through the kind.
type Wrapping int

const (
	WrapNone Wrapping = iota
	WrapPropagate
	WrapContext
	WrapContext2
	WrapEyreContext
)

type kindInfo struct {
	shortID     string
	title       string
	qualified   string
	setup       []string
	wrapping    Wrapping
	install     string
	description string
}

var customErrorSetup = []string{
	"#[derive(Debug)]",
	"enum CustomError {",
	"    Io(std::io::Error),",
	"}",
	"",
	"impl std::fmt::Display for CustomError {",
	"    fn fmt(&self, f: &mut std::fmt::Formatter<'_>) -> std::fmt::Result {",
	"        match self {",
	"            CustomError::Io(err) => write!(f, \"I/O error: {}\", err),",
	"        }",
	"    }",
	"}",
	"",
	"impl std::error::Error for CustomError {}",
	"",
	"impl From<std::io::Error> for CustomError {",
	"    fn from(err: std::io::Error) -> Self {",
	"        CustomError::Io(err)",
	"    }",
	"}",
}

var kinds = []kindInfo{
	KindIO: {
		shortID:   "io",
		title:     "std::io::Error",
		qualified: "std::io::Error",
		wrapping:  WrapNone,
		description: "The error returned by `std::fs::remove_file` is passed through unchanged. " +
			"No extra crates are involved.",
	},
	KindAnyhow: {
		shortID:   "anyhow",
		title:     "anyhow::Error",
		qualified: "anyhow::Error",
		wrapping:  WrapPropagate,
		description: "The I/O error is converted into an [`anyhow::Error`](https://docs.rs/anyhow) " +
			"with the `?` operator and no additional context.",
	},
	KindAnyhowContext: {
		shortID:   "anyhow_context",
		title:     "anyhow::Error with context",
		qualified: "anyhow::Error",
		setup:     []string{"use anyhow::Context;"},
		wrapping:  WrapContext,
		description: "The I/O error is annotated once with `Context::context` before it is " +
			"converted into an `anyhow::Error`.",
	},
	KindAnyhowContext2: {
		shortID:   "anyhow_context2",
		title:     "anyhow::Error with nested context",
		qualified: "anyhow::Error",
		setup:     []string{"use anyhow::Context;"},
		wrapping:  WrapContext2,
		description: "Two context annotations are chained. The alternate display format " +
			"prints them outermost first, followed by the I/O error.",
	},
	KindEyre: {
		shortID:   "eyre",
		title:     "color_eyre::Report",
		qualified: "color_eyre::Report",
		setup:     []string{"use color_eyre::eyre::WrapErr;"},
		wrapping:  WrapEyreContext,
		install:   "color_eyre::install()",
		description: "[`color-eyre`](https://docs.rs/color-eyre) installs a report handler " +
			"once at the start of `main` and annotates the error with `WrapErr::wrap_err`.",
	},
	KindCustom: {
		shortID:   "custom",
		title:     "Custom error enum",
		qualified: "CustomError",
		setup:     customErrorSetup,
		wrapping:  WrapPropagate,
		description: "A hand-written enum with a single variant wrapping the I/O error. " +
			"The `From` impl lets `?` convert the error implicitly.",
	},
}

// AllErrorKinds returns every ErrorKind in page order.
func AllErrorKinds() []ErrorKind {
	out := make([]ErrorKind, len(kinds))
	for i := range kinds {
		out[i] = ErrorKind(i)
	}
	return out
}

// SelectErrorKinds returns the requested kinds in page order, each once.
func SelectErrorKinds(requested []ErrorKind) []ErrorKind {
	want := make(map[ErrorKind]bool, len(requested))
	for _, k := range requested {
		want[k] = true
	}
	out := make([]ErrorKind, 0, len(want))
	for _, k := range AllErrorKinds() {
		if want[k] {
			out = append(out, k)
		}
	}
	return out
}

func (k ErrorKind) info() kindInfo {
	if k < 0 || int(k) >= len(kinds) {
		panic(fmt.Sprintf("axis: unknown error kind %d", int(k)))
	}
	return kinds[k]
}

// ShortID is the stable lowercase token used in file and page names.
func (k ErrorKind) ShortID() string { return k.info().shortID }

// Title is the human label shown in headings and navigation.
func (k ErrorKind) Title() string { return k.info().title }

// QualifiedType is the error type used in generated function signatures.
func (k ErrorKind) QualifiedType() string { return k.info().qualified }

// SetupLines returns the auxiliary declarations the snippet needs before make_error.
func (k ErrorKind) SetupLines() []string {
	setup := k.info().setup
	out := make([]string, len(setup))
	copy(out, setup)
	return out
}

// Wrapping reports how make_error wraps the I/O failure.
func (k ErrorKind) Wrapping() Wrapping { return k.info().wrapping }

// InstallCall is the one-time global installation expression, or "" if none.
func (k ErrorKind) InstallCall() string { return k.info().install }

// Description is a short Markdown paragraph introducing the kind's page.
func (k ErrorKind) Description() string { return k.info().description }

func (k ErrorKind) String() string { return k.ShortID() }

// ParseErrorKind resolves a short id.
func ParseErrorKind(id string) (ErrorKind, error) {
	id = strings.TrimSpace(strings.ToLower(id))
	for i, info := range kinds {
		if info.shortID == id {
			return ErrorKind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown error kind %q", id)
}
