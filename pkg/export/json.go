// Package export serializes a parsed Markdown AST to stable JSON, for
// downstream consumers that want the tree without linking against mdast.
package export

import (
	"encoding/json"

	"github.com/yaklabco/mdpipe/pkg/mdast"
)

// JSONNode is the JSON shape of one AST node. Fields that do not apply to a
// node kind are omitted.
type JSONNode struct {
	Type     string      `json:"type"`
	Children []*JSONNode `json:"children,omitempty"`

	// Heading.
	Level int `json:"level,omitempty"`

	// List.
	Ordered *bool  `json:"ordered,omitempty"`
	Start   int    `json:"start,omitempty"`
	Tight   *bool  `json:"tight,omitempty"`
	Bullet  string `json:"bullet,omitempty"`

	// Code blocks and spans, text, image alt.
	Literal string `json:"literal,omitempty"`
	Info    string `json:"info,omitempty"`

	// Links and images.
	URL   string `json:"url,omitempty"`
	Title string `json:"title,omitempty"`
	Alt   string `json:"alt,omitempty"`

	// Line breaks.
	Hard *bool `json:"hard,omitempty"`
}

// Marshal serializes the AST rooted at doc to indented JSON.
func Marshal(doc *mdast.Node) ([]byte, error) {
	return json.MarshalIndent(Build(doc), "", "  ")
}

// Build converts an AST into its JSON representation without serializing.
func Build(n *mdast.Node) *JSONNode {
	if n == nil {
		return nil
	}

	out := &JSONNode{Type: n.Kind.String()}

	switch n.Kind {
	case mdast.NodeHeading:
		out.Level = n.Block.HeadingLevel

	case mdast.NodeList:
		attrs := n.Block.List
		ordered := attrs.Ordered
		tight := attrs.Tight
		out.Ordered = &ordered
		out.Tight = &tight
		if attrs.Ordered {
			out.Start = attrs.Start
		} else {
			out.Bullet = attrs.BulletMarker
		}

	case mdast.NodeCodeBlock:
		out.Literal = n.Literal
		if attrs := n.Block.CodeBlock; attrs != nil {
			out.Info = attrs.Info
		}

	case mdast.NodeText, mdast.NodeCodeSpan:
		out.Literal = n.Literal

	case mdast.NodeLink:
		link := n.Inline.Link
		out.URL = link.Destination
		out.Title = link.Title

	case mdast.NodeImage:
		link := n.Inline.Link
		out.URL = link.Destination
		out.Title = link.Title
		out.Alt = n.Literal

	case mdast.NodeLineBreak:
		hard := n.Inline != nil && n.Inline.HardBreak
		out.Hard = &hard
	}

	for _, child := range n.Children {
		out.Children = append(out.Children, Build(child))
	}

	return out
}
