package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTML(t *testing.T) {
	out, err := ToHTML("Uses `anyhow::Context` to *annotate*.")
	require.NoError(t, err)
	assert.Equal(t, "<p>Uses <code>anyhow::Context</code> to <em>annotate</em>.</p>\n", out)
}

func TestToHTML_DropsRawHTML(t *testing.T) {
	out, err := ToHTML("<script>alert(1)</script>")
	require.NoError(t, err)
	assert.NotContains(t, out, "<script>")
}

func TestBuilder(t *testing.T) {
	var b Builder
	b.Heading(1, "std::io::Error").
		Paragraph("  intro  ").
		Paragraph("").
		List([]string{"**io**", "[panic](panic.md)"}).
		Fence("rust", "fn main() {}\n").
		Fence("", "")

	want := "# std::io::Error\n\nintro\n\n- **io**\n- [panic](panic.md)\n\n```rust\nfn main() {}\n```\n\n```\n```\n"
	assert.Equal(t, want, b.String())
}

func TestFence_LongerThanContent(t *testing.T) {
	var b Builder
	b.Fence("text", "a ``` b")
	assert.Equal(t, "````text\na ``` b\n````\n", b.String())
}

func TestBuilder_Empty(t *testing.T) {
	var b Builder
	assert.Empty(t, b.String())
}
