package axis

import (
	"fmt"
	"strings"
)

// Operation is a strategy for consuming the result of make_error.
type Operation int

const (
	OpDebug Operation = iota
	OpDisplay
	OpAlternate
	OpUnwrap
	OpExpect
	OpReturn
)

// ExitClass is the expected outcome class of a built example.
type ExitClass int

const (
	ExitSuccess ExitClass = iota
	ExitFailure
)

func (c ExitClass) String() string {
	if c == ExitSuccess {
		return "success"
	}
	return "failure"
}

// Matches reports whether a process exit code belongs to the class.
func (c ExitClass) Matches(exitCode int) bool {
	if c == ExitSuccess {
		return exitCode == 0
	}
	return exitCode != 0
}

type opInfo struct {
	shortID  string
	title    string
	fallible bool
	emit     string
	exit     ExitClass
}

var operations = []opInfo{
	OpDebug: {
		shortID: "debug",
		title:   "Debug print",
		emit:    `eprintln!("{:?}", make_error().unwrap_err());`,
		exit:    ExitSuccess,
	},
	OpDisplay: {
		shortID: "display",
		title:   "Display print",
		emit:    `eprintln!("{}", make_error().unwrap_err());`,
		exit:    ExitSuccess,
	},
	OpAlternate: {
		shortID: "alternate",
		title:   "Alternate display print",
		emit:    `eprintln!("{:#}", make_error().unwrap_err());`,
		exit:    ExitSuccess,
	},
	OpUnwrap: {
		shortID: "unwrap",
		title:   "unwrap",
		emit:    `make_error().unwrap();`,
		exit:    ExitFailure,
	},
	OpExpect: {
		shortID: "expect",
		title:   "expect",
		emit:    `make_error().expect("oh no");`,
		exit:    ExitFailure,
	},
	OpReturn: {
		shortID:  "return",
		title:    "Return from main",
		fallible: true,
		emit:     `make_error()`,
		exit:     ExitFailure,
	},
}

// AllOperations returns every Operation in section order.
func AllOperations() []Operation {
	out := make([]Operation, len(operations))
	for i := range operations {
		out[i] = Operation(i)
	}
	return out
}

// SelectOperations returns the requested operations in section order, each once.
func SelectOperations(requested []Operation) []Operation {
	want := make(map[Operation]bool, len(requested))
	for _, o := range requested {
		want[o] = true
	}
	out := make([]Operation, 0, len(want))
	for _, o := range AllOperations() {
		if want[o] {
			out = append(out, o)
		}
	}
	return out
}

func (o Operation) info() opInfo {
	if o < 0 || int(o) >= len(operations) {
		panic(fmt.Sprintf("axis: unknown operation %d", int(o)))
	}
	return operations[o]
}

func (o Operation) ShortID() string { return o.info().shortID }

func (o Operation) Title() string { return o.info().title }

// MainSignatureNeeded is true when main itself must return a Result.
func (o Operation) MainSignatureNeeded() bool { return o.info().fallible }

// Statement is the Rust statement (or tail expression) applying the operation.
func (o Operation) Statement() string { return o.info().emit }

// ExpectedExit is the exit class a correctly built example must produce.
func (o Operation) ExpectedExit() ExitClass { return o.info().exit }

func (o Operation) String() string { return o.ShortID() }

// ParseOperation resolves a short id.
func ParseOperation(id string) (Operation, error) {
	id = strings.TrimSpace(strings.ToLower(id))
	for i, info := range operations {
		if info.shortID == id {
			return Operation(i), nil
		}
	}
	return 0, fmt.Errorf("unknown operation %q", id)
}
