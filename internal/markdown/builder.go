package markdown

import (
	"strings"
)

// Builder accumulates Markdown blocks separated by blank lines.
type Builder struct {
	blocks []string
}

// Heading appends an ATX heading.
func (b *Builder) Heading(level int, text string) *Builder {
	if level < 1 {
		level = 1
	}
	b.blocks = append(b.blocks, strings.Repeat("#", level)+" "+text)
	return b
}

// Paragraph appends text as is.
func (b *Builder) Paragraph(text string) *Builder {
	if text = strings.TrimSpace(text); text != "" {
		b.blocks = append(b.blocks, text)
	}
	return b
}

// List appends a bullet list.
func (b *Builder) List(items []string) *Builder {
	if len(items) == 0 {
		return b
	}
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = "- " + item
	}
	b.blocks = append(b.blocks, strings.Join(lines, "\n"))
	return b
}

// Fence appends a fenced code block. The fence is longer than any backtick
// run inside code, so content never closes it early.
func (b *Builder) Fence(lang, code string) *Builder {
	fence := strings.Repeat("`", max(3, longestBacktickRun(code)+1))
	code = strings.TrimRight(code, "\n")
	var sb strings.Builder
	sb.WriteString(fence + lang + "\n")
	if code != "" {
		sb.WriteString(code + "\n")
	}
	sb.WriteString(fence)
	b.blocks = append(b.blocks, sb.String())
	return b
}

// String joins the blocks with a trailing newline.
func (b *Builder) String() string {
	if len(b.blocks) == 0 {
		return ""
	}
	return strings.Join(b.blocks, "\n\n") + "\n"
}

func longestBacktickRun(s string) int {
	longest, run := 0, 0
	for _, r := range s {
		if r == '`' {
			run++
			longest = max(longest, run)
			continue
		}
		run = 0
	}
	return longest
}
