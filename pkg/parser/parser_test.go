package parser_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdpipe/pkg/mdast"
	"github.com/yaklabco/mdpipe/pkg/parser"
)

func TestParseResolvesInlines(t *testing.T) {
	t.Parallel()

	doc := parser.Parse("# Title *em*\n\npara with **strong**")
	require.Len(t, doc.Children, 2)

	heading := doc.Children[0]
	assert.Equal(t, "", heading.Literal)
	require.Len(t, heading.Children, 2)
	assert.Equal(t, "Title ", heading.Children[0].Literal)
	assert.Equal(t, mdast.NodeEmphasis, heading.Children[1].Kind)

	para := doc.Children[1]
	require.Len(t, para.Children, 2)
	assert.Equal(t, mdast.NodeStrong, para.Children[1].Kind)
}

func TestParseCodeBlockSkipsInlinePhase(t *testing.T) {
	t.Parallel()

	doc := parser.Parse("```\n*not em*\n```")
	require.Len(t, doc.Children, 1)
	assert.Equal(t, "*not em*", doc.Children[0].Literal)
	assert.Empty(t, doc.Children[0].Children)
}

func TestParseTotality(t *testing.T) {
	t.Parallel()

	// None of these may panic or return nil; broken syntax degrades to text.
	inputs := []string{
		"",
		"\n\n\n",
		"[unclosed",
		"*** *** ***",
		"> > > > deep",
		"``",
		"\\",
		strings.Repeat("*", 50),
		strings.Repeat("[", 30) + strings.Repeat("]", 30),
		"1.",
		"-",
	}

	for _, input := range inputs {
		doc := parser.Parse(input)
		require.NotNil(t, doc, "input %q", input)
		assert.Equal(t, mdast.NodeDocument, doc.Kind)
	}
}

func TestParseBlockquoteInlines(t *testing.T) {
	t.Parallel()

	doc := parser.Parse("> quoted *em*")
	require.Len(t, doc.Children, 1)

	para := doc.Children[0].Children[0]
	require.Len(t, para.Children, 2)
	assert.Equal(t, mdast.NodeEmphasis, para.Children[1].Kind)
}

func BenchmarkParse(b *testing.B) {
	doc := strings.Repeat("# Heading\n\nSome *emphasized* text with `code` and [links](http://x).\n\n- item one\n- item two\n\n```go\nfunc main() {}\n```\n\n", 50)
	b.ResetTimer()
	for range b.N {
		parser.Parse(doc)
	}
}
