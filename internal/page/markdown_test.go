package page

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdownBlock(t *testing.T) {
	md := NewMarkdown()

	out, err := md.Block("## The Problem \n - one\n - two")
	require.NoError(t, err)

	assert.Contains(t, string(out), `<h2 id="the-problem">The Problem</h2>`)
	assert.Contains(t, string(out), "<li>one</li>")
	assert.Contains(t, string(out), "<li>two</li>")
}

func TestMarkdownInline(t *testing.T) {
	md := NewMarkdown()

	tests := []struct {
		in   string
		want string
	}{
		{in: "Write Maintainable Tests", want: "Write Maintainable Tests"},
		{in: "[React Testing Library](./react)", want: `<a href="./react">React Testing Library</a>`},
		{in: "_Guiding_ Principle", want: "<em>Guiding</em> Principle"},
	}

	for _, tt := range tests {
		out, err := md.Inline(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, string(out))
	}
}

func TestMarkdownInlineKeepsMultipleParagraphs(t *testing.T) {
	out, err := NewMarkdown().Inline("first\n\nsecond")
	require.NoError(t, err)

	assert.Equal(t, "<p>first</p>\n<p>second</p>", string(out))
}
