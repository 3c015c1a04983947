// Package synth turns one (ErrorKind, Operation) cell into the text of a
// self-contained Rust example program.
package synth

import "strings"

// Program is the synthesized source of one example. It is never mutated once built.
type Program struct {
	ID    string
	lines []string
}

// Lines returns a copy of the program's lines.
func (p Program) Lines() []string {
	out := make([]string, len(p.lines))
	copy(out, p.lines)
	return out
}

// Source joins the lines with a trailing newline, ready to be written to disk.
func (p Program) Source() string {
	return strings.Join(p.lines, "\n") + "\n"
}

type builder struct {
	lines []string
}

func (b *builder) add(line string) {
	b.lines = append(b.lines, line)
}

func (b *builder) addIndented(line string) {
	b.lines = append(b.lines, indent(line))
}

func (b *builder) empty() {
	b.lines = append(b.lines, "")
}

func (b *builder) build(id string) Program {
	return Program{ID: id, lines: b.lines}
}

func indent(line string) string {
	if line == "" {
		return line
	}
	return "    " + line
}
