// Package parser implements the mdpipe Markdown pipeline: lexical analysis
// into a lossless token stream, line-oriented block parsing, and inline
// delimiter resolution. Every stage is a total function of its input; there
// is no failure mode for any string, including the empty one.
package parser

import "github.com/yaklabco/mdpipe/pkg/mdast"

// Parse converts Markdown text into a fully resolved AST.
// The returned Document is immutable and safe to share read-only between
// concurrent renderers.
func Parse(text string) *mdast.Node {
	doc := ParseBlocks(Tokenize(text))
	ResolveInlines(doc)
	return doc
}

// ResolveInlines runs the inline parser over every leaf block that still
// carries raw inline text, completing the block tree into the final AST.
// After it returns the tree is never mutated again.
func ResolveInlines(root *mdast.Node) {
	//nolint:errcheck,revive // the callback never returns an error
	mdast.Walk(root, func(n *mdast.Node) error {
		if n.Kind != mdast.NodeHeading && n.Kind != mdast.NodeParagraph {
			return nil
		}
		if n.HasChildren() {
			return nil
		}
		if n.Literal != "" {
			n.Children = ParseInline(n.Literal)
			n.Literal = ""
		}
		return nil
	})
}
