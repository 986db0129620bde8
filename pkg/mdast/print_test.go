package mdast_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdpipe/pkg/mdast"
)

func TestPrintTree(t *testing.T) {
	t.Parallel()

	out := mdast.PrintTree(sampleTree())
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 7)

	assert.Equal(t, "Document", lines[0])
	assert.Equal(t, "  Heading level=1", lines[1])
	assert.Equal(t, `    Text "title"`, lines[2])
	assert.Equal(t, "  Paragraph", lines[3])
	assert.Equal(t, "    Emphasis", lines[5])
	assert.Equal(t, `      Text "em"`, lines[6])
}

func TestPrintTreeAttributes(t *testing.T) {
	t.Parallel()

	t.Run("ordered list", func(t *testing.T) {
		t.Parallel()

		list := mdast.NewList(&mdast.ListAttrs{Ordered: true, Start: 3, Tight: true})
		out := mdast.PrintTree(list)
		assert.Contains(t, out, "ordered=true")
		assert.Contains(t, out, "start=3")
		assert.Contains(t, out, "tight")
	})

	t.Run("code block", func(t *testing.T) {
		t.Parallel()

		code := mdast.NewCodeBlock(&mdast.CodeBlockAttrs{Info: "go"}, "func f()")
		out := mdast.PrintTree(code)
		assert.Contains(t, out, `info="go"`)
		assert.Contains(t, out, `"func f()"`)
	})

	t.Run("long literal is truncated", func(t *testing.T) {
		t.Parallel()

		text := mdast.NewText(strings.Repeat("x", 200))
		out := mdast.PrintTree(text)
		assert.Contains(t, out, "...")
		assert.Less(t, len(out), 120)
	})

	t.Run("link url and title", func(t *testing.T) {
		t.Parallel()

		link := mdast.NewLink("https://x", "hello", mdast.NewText("t"))
		out := mdast.PrintTree(link)
		assert.Contains(t, out, `url="https://x"`)
		assert.Contains(t, out, `title="hello"`)
	})
}

func TestPrintBlockTree(t *testing.T) {
	t.Parallel()

	t.Run("summarizes raw inline text", func(t *testing.T) {
		t.Parallel()

		para := mdast.NewParagraph()
		para.Literal = "raw *inline* text"
		doc := mdast.NewDocument()
		mdast.AppendChild(doc, para)

		out := mdast.PrintBlockTree(doc)
		assert.Contains(t, out, `Paragraph "raw *inline* text"`)
	})

	t.Run("summarizes resolved inline children", func(t *testing.T) {
		t.Parallel()

		out := mdast.PrintBlockTree(sampleTree())
		assert.Contains(t, out, `Heading level=1 "title"`)
		assert.NotContains(t, out, "Emphasis")
	})
}
