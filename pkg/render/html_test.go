package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdpipe/pkg/mdast"
	"github.com/yaklabco/mdpipe/pkg/parser"
	"github.com/yaklabco/mdpipe/pkg/render"
)

func TestHTMLDocuments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty document",
			input: "",
			want:  "",
		},
		{
			name:  "heading and paragraph",
			input: "# Title\n\nbody text",
			want:  "<h1>Title</h1>\n<p>body text</p>",
		},
		{
			name:  "emphasis nesting",
			input: "*a **b** c*",
			want:  "<p><em>a <strong>b</strong> c</em></p>",
		},
		{
			name:  "triple emphasis",
			input: "***x***",
			want:  "<p><strong><em>x</em></strong></p>",
		},
		{
			name:  "text escaping",
			input: "a < b & c > d",
			want:  "<p>a &lt; b &amp; c &gt; d</p>",
		},
		{
			name:  "code span escaping",
			input: "`x < y`",
			want:  "<p><code>x &lt; y</code></p>",
		},
		{
			name:  "fenced code is verbatim",
			input: "```\n*x*\n```",
			want:  "<pre><code>*x*</code></pre>",
		},
		{
			name:  "fence info becomes class",
			input: "```go\nfunc f() {}\n```",
			want:  "<pre><code class=\"language-go\">func f() {}</code></pre>",
		},
		{
			name:  "tight list unwraps paragraphs",
			input: "- one\n- two",
			want:  "<ul><li>one</li><li>two</li></ul>",
		},
		{
			name:  "loose list keeps paragraphs",
			input: "- one\n\n- two",
			want:  "<ul><li><p>one</p></li><li><p>two</p></li></ul>",
		},
		{
			name:  "ordered list with start",
			input: "3. three\n4. four",
			want:  "<ol start=\"3\"><li>three</li><li>four</li></ol>",
		},
		{
			name:  "ordered list starting at one",
			input: "1. one",
			want:  "<ol><li>one</li></ol>",
		},
		{
			name:  "blockquote",
			input: "> quoted",
			want:  "<blockquote><p>quoted</p></blockquote>",
		},
		{
			name:  "thematic break",
			input: "---",
			want:  "<hr />",
		},
		{
			name:  "link with title",
			input: "[t](u \"ti\")",
			want:  "<p><a href=\"u\" title=\"ti\">t</a></p>",
		},
		{
			name:  "image",
			input: "![alt](img.png)",
			want:  "<p><img src=\"img.png\" alt=\"alt\" /></p>",
		},
		{
			name:  "hard break",
			input: "one  \ntwo",
			want:  "<p>one<br />two</p>",
		},
		{
			name:  "soft break",
			input: "one\ntwo",
			want:  "<p>one two</p>",
		},
		{
			name:  "escaped markers render literally",
			input: `\*literal\*`,
			want:  "<p>*literal*</p>",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := render.HTML(parser.Parse(tc.input))
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestHTMLAttributeEscaping(t *testing.T) {
	t.Parallel()

	doc := mdast.NewDocument()
	para := mdast.NewParagraph()
	mdast.AppendChild(para, mdast.NewLink(`u"v`, `a & "b"`, mdast.NewText("t")))
	mdast.AppendChild(doc, para)

	got := render.HTML(doc)
	assert.Equal(t, `<p><a href="u&quot;v" title="a &amp; &quot;b&quot;">t</a></p>`, got)
}

func TestHTMLBlockSeparator(t *testing.T) {
	t.Parallel()

	got := render.HTML(parser.Parse("a\n\nb\n\nc"))
	assert.Equal(t, "<p>a</p>\n<p>b</p>\n<p>c</p>", got)
}

type staticDetector struct {
	lang string
}

func (d staticDetector) Detect([]byte) string { return d.lang }

func TestHTMLLanguageDetection(t *testing.T) {
	t.Parallel()

	opts := render.Options{Detector: staticDetector{lang: "python"}}

	t.Run("bare fence consults the detector", func(t *testing.T) {
		t.Parallel()

		doc := parser.Parse("```\nprint(1)\n```")
		got := render.HTMLWithOptions(doc, opts)
		assert.Equal(t, `<pre><code class="language-python">print(1)</code></pre>`, got)
	})

	t.Run("info string wins over the detector", func(t *testing.T) {
		t.Parallel()

		doc := parser.Parse("```ruby\nputs 1\n```")
		got := render.HTMLWithOptions(doc, opts)
		assert.Contains(t, got, `class="language-ruby"`)
	})

	t.Run("indented code is never classified", func(t *testing.T) {
		t.Parallel()

		doc := parser.Parse("    code")
		got := render.HTMLWithOptions(doc, opts)
		assert.Equal(t, "<pre><code>code</code></pre>", got)
	})

	t.Run("detector returning empty omits the class", func(t *testing.T) {
		t.Parallel()

		doc := parser.Parse("```\nmystery\n```")
		got := render.HTMLWithOptions(doc, render.Options{Detector: staticDetector{}})
		assert.Equal(t, "<pre><code>mystery</code></pre>", got)
	})
}

func TestHTMLPanicsOnForeignKind(t *testing.T) {
	t.Parallel()

	doc := mdast.NewDocument()
	mdast.AppendChild(doc, mdast.NewText("inline at block level"))

	require.Panics(t, func() {
		render.HTML(doc)
	})
}

func TestHTMLMultiBlockListItem(t *testing.T) {
	t.Parallel()

	doc := parser.Parse("- para\n\n      code")
	got := render.HTML(doc)
	assert.Equal(t, "<ul><li><p>para</p>\n<pre><code>code</code></pre></li></ul>", got)
}
