// Package compat provides a goldmark-backed reference renderer. It exists
// for side-by-side comparison: mdpipe's own grammar is a deliberate subset,
// and diffing its output against a CommonMark implementation is the fastest
// way to see where the two diverge on a given document.
package compat

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
)

// Engine renders Markdown through goldmark.
type Engine struct {
	md goldmark.Markdown
}

// New creates a reference engine with goldmark defaults (CommonMark).
func New() *Engine {
	return &Engine{md: goldmark.New()}
}

// Render converts Markdown text to HTML using goldmark.
func (e *Engine) Render(text string) (string, error) {
	var buf bytes.Buffer
	if err := e.md.Convert([]byte(text), &buf); err != nil {
		return "", fmt.Errorf("reference render: %w", err)
	}
	return buf.String(), nil
}

// Comparison holds the outputs of both engines for one document.
type Comparison struct {
	Ours      string
	Reference string
}

// Equal reports whether the two outputs match after whitespace
// normalization. Tag-level layout differs between engines (goldmark emits
// newlines inside lists, mdpipe does not), so the comparison collapses
// whitespace between tags before comparing.
func (c Comparison) Equal() bool {
	return normalize(c.Ours) == normalize(c.Reference)
}

func normalize(html string) string {
	html = strings.ReplaceAll(html, ">\n<", "><")
	return strings.TrimSpace(html)
}
