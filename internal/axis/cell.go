package axis

import (
	"fmt"
	"strings"
)

// Cell is one (ErrorKind, Operation) combination.
type Cell struct {
	Kind      ErrorKind
	Operation Operation
}

// ID is the deterministic name shared by the cell's source file, binary and captured run.
func (c Cell) ID() string {
	return c.Kind.ShortID() + "_" + c.Operation.ShortID()
}

func (c Cell) String() string { return c.ID() }

// Cells returns the full matrix, ErrorKind-major, both axes in their declared order.
func Cells() []Cell {
	ops := AllOperations()
	out := make([]Cell, 0, len(kinds)*len(ops))
	for _, k := range AllErrorKinds() {
		for _, op := range ops {
			out = append(out, Cell{Kind: k, Operation: op})
		}
	}
	return out
}

// ParseCellID resolves "{kind}_{operation}". Kind ids may themselves contain
// underscores, so the operation is matched as the suffix.
func ParseCellID(id string) (Cell, error) {
	id = strings.TrimSpace(strings.ToLower(id))
	for _, op := range AllOperations() {
		suffix := "_" + op.ShortID()
		if !strings.HasSuffix(id, suffix) {
			continue
		}
		kind, err := ParseErrorKind(strings.TrimSuffix(id, suffix))
		if err != nil {
			continue
		}
		return Cell{Kind: kind, Operation: op}, nil
	}
	return Cell{}, fmt.Errorf("unknown cell %q", id)
}
