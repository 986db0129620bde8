// Package render converts a parsed Markdown AST into HTML markup.
// Rendering is a pure function of the tree: no I/O, no shared state, and
// escaping is applied exactly once, to text content and attribute values,
// never to already-emitted tag markup.
package render

import (
	"strconv"
	"strings"

	"github.com/yaklabco/mdpipe/pkg/mdast"
)

// LanguageDetector infers a fence language tag from code content.
// It is consulted only for fenced code blocks with no info string.
type LanguageDetector interface {
	Detect(content []byte) string
}

// Options controls HTML rendering behavior.
type Options struct {
	// Detector supplies a language for fenced code blocks that carry no
	// info string. Nil disables detection.
	Detector LanguageDetector
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{}
}

// HTML renders the AST rooted at doc to an HTML string using default options.
func HTML(doc *mdast.Node) string {
	return HTMLWithOptions(doc, DefaultOptions())
}

// HTMLWithOptions renders the AST rooted at doc with explicit options.
// An empty Document renders to the empty string.
func HTMLWithOptions(doc *mdast.Node, opts Options) string {
	r := &renderer{opts: opts}
	r.blocks(doc.Children)
	return r.sb.String()
}

type renderer struct {
	sb   strings.Builder
	opts Options
}

// blocks renders sibling block nodes separated by newlines.
func (r *renderer) blocks(nodes []*mdast.Node) {
	for i, n := range nodes {
		if i > 0 {
			r.sb.WriteByte('\n')
		}
		r.block(n)
	}
}

// block renders one block node. The switch is exhaustive over block kinds;
// an unknown kind indicates a tree from a different build and panics rather
// than silently producing wrong output.
func (r *renderer) block(n *mdast.Node) {
	switch n.Kind {
	case mdast.NodeHeading:
		tag := "h" + strconv.Itoa(n.Block.HeadingLevel)
		r.sb.WriteString("<" + tag + ">")
		r.inlines(n.Children)
		r.sb.WriteString("</" + tag + ">")

	case mdast.NodeParagraph:
		r.sb.WriteString("<p>")
		r.inlines(n.Children)
		r.sb.WriteString("</p>")

	case mdast.NodeList:
		r.list(n)

	case mdast.NodeBlockquote:
		r.sb.WriteString("<blockquote>")
		r.blocks(n.Children)
		r.sb.WriteString("</blockquote>")

	case mdast.NodeCodeBlock:
		r.codeBlock(n)

	case mdast.NodeThematicBreak:
		r.sb.WriteString("<hr />")

	default:
		panic("render: not a block node: " + n.Kind.String())
	}
}

func (r *renderer) list(n *mdast.Node) {
	attrs := n.Block.List

	if attrs.Ordered {
		r.sb.WriteString("<ol")
		if attrs.Start != 1 {
			r.sb.WriteString(` start="` + strconv.Itoa(attrs.Start) + `"`)
		}
		r.sb.WriteByte('>')
	} else {
		r.sb.WriteString("<ul>")
	}

	for _, item := range n.Children {
		r.sb.WriteString("<li>")
		r.listItem(item, attrs.Tight)
		r.sb.WriteString("</li>")
	}

	if attrs.Ordered {
		r.sb.WriteString("</ol>")
	} else {
		r.sb.WriteString("</ul>")
	}
}

// listItem renders the blocks of one item. In a tight list a paragraph's
// inline content is emitted without the surrounding <p> tags.
func (r *renderer) listItem(item *mdast.Node, tight bool) {
	for i, child := range item.Children {
		if tight && child.Kind == mdast.NodeParagraph {
			r.inlines(child.Children)
			continue
		}
		if i > 0 {
			r.sb.WriteByte('\n')
		}
		r.block(child)
	}
}

func (r *renderer) codeBlock(n *mdast.Node) {
	lang := codeLanguage(n, r.opts.Detector)

	r.sb.WriteString("<pre><code")
	if lang != "" {
		r.sb.WriteString(` class="language-` + EscapeAttribute(lang) + `"`)
	}
	r.sb.WriteByte('>')
	r.sb.WriteString(EscapeText(n.Literal))
	r.sb.WriteString("</code></pre>")
}

// codeLanguage returns the language tag for a code block: the first word of
// the fence info string, or the detector's guess for bare fences.
func codeLanguage(n *mdast.Node, detector LanguageDetector) string {
	attrs := n.Block.CodeBlock
	if attrs == nil {
		return ""
	}
	if attrs.Info != "" {
		if fields := strings.Fields(attrs.Info); len(fields) > 0 {
			return fields[0]
		}
	}
	if attrs.Indented || detector == nil || n.Literal == "" {
		return ""
	}
	return detector.Detect([]byte(n.Literal))
}

// inlines renders inline nodes back to back.
func (r *renderer) inlines(nodes []*mdast.Node) {
	for _, n := range nodes {
		r.inline(n)
	}
}

func (r *renderer) inline(n *mdast.Node) {
	switch n.Kind {
	case mdast.NodeText:
		r.sb.WriteString(EscapeText(n.Literal))

	case mdast.NodeEmphasis:
		r.sb.WriteString("<em>")
		r.inlines(n.Children)
		r.sb.WriteString("</em>")

	case mdast.NodeStrong:
		r.sb.WriteString("<strong>")
		r.inlines(n.Children)
		r.sb.WriteString("</strong>")

	case mdast.NodeCodeSpan:
		r.sb.WriteString("<code>")
		r.sb.WriteString(EscapeText(n.Literal))
		r.sb.WriteString("</code>")

	case mdast.NodeLink:
		link := n.Inline.Link
		r.sb.WriteString(`<a href="` + EscapeAttribute(link.Destination) + `"`)
		if link.Title != "" {
			r.sb.WriteString(` title="` + EscapeAttribute(link.Title) + `"`)
		}
		r.sb.WriteByte('>')
		r.inlines(n.Children)
		r.sb.WriteString("</a>")

	case mdast.NodeImage:
		link := n.Inline.Link
		r.sb.WriteString(`<img src="` + EscapeAttribute(link.Destination) + `"`)
		r.sb.WriteString(` alt="` + EscapeAttribute(n.Literal) + `"`)
		if link.Title != "" {
			r.sb.WriteString(` title="` + EscapeAttribute(link.Title) + `"`)
		}
		r.sb.WriteString(" />")

	case mdast.NodeLineBreak:
		r.sb.WriteString("<br />")

	default:
		panic("render: not an inline node: " + n.Kind.String())
	}
}

var (
	textEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
	)
	attrEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
	)
)

// EscapeText escapes text content for element bodies.
func EscapeText(s string) string {
	return textEscaper.Replace(s)
}

// EscapeAttribute escapes a value for a double-quoted HTML attribute.
func EscapeAttribute(s string) string {
	return attrEscaper.Replace(s)
}
