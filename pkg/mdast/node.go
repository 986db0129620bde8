// Package mdast provides the core Markdown representation for mdpipe:
// the positioned token stream produced by the lexer and the typed AST
// produced by the parser. Nodes own their children exclusively; there are
// no parent or sibling back-references, so a fully built tree is immutable
// and safe to share between concurrent renderers.
package mdast

// NodeKind classifies the type of an AST node.
type NodeKind uint16

// Node kinds for block-level and inline-level Markdown elements.
const (
	NodeDocument NodeKind = iota

	// Block-level nodes.
	NodeParagraph
	NodeHeading
	NodeList
	NodeListItem
	NodeBlockquote
	NodeCodeBlock
	NodeThematicBreak

	// Inline-level nodes.
	NodeText
	NodeEmphasis
	NodeStrong
	NodeCodeSpan
	NodeLink
	NodeImage
	NodeLineBreak
)

// String returns a human-readable name for the node kind.
func (k NodeKind) String() string {
	switch k {
	case NodeDocument:
		return "Document"
	case NodeParagraph:
		return "Paragraph"
	case NodeHeading:
		return "Heading"
	case NodeList:
		return "List"
	case NodeListItem:
		return "ListItem"
	case NodeBlockquote:
		return "Blockquote"
	case NodeCodeBlock:
		return "CodeBlock"
	case NodeThematicBreak:
		return "ThematicBreak"
	case NodeText:
		return "Text"
	case NodeEmphasis:
		return "Emphasis"
	case NodeStrong:
		return "Strong"
	case NodeCodeSpan:
		return "CodeSpan"
	case NodeLink:
		return "Link"
	case NodeImage:
		return "Image"
	case NodeLineBreak:
		return "LineBreak"
	default:
		return "Unknown"
	}
}

// Node represents a single node in the Markdown AST.
// The tree is built bottom-up: children are attached before the parent is
// handed to a consumer and are never mutated afterwards.
type Node struct {
	// Kind identifies what type of node this is.
	Kind NodeKind

	// Children holds the node's child nodes in document order.
	Children []*Node

	// Literal holds raw text content. Its meaning depends on Kind:
	// the text of NodeText and NodeCodeSpan, the verbatim body of
	// NodeCodeBlock, the alt text of NodeImage, and - between the block
	// and inline parsing phases - the not-yet-parsed inline source of a
	// NodeHeading or NodeParagraph.
	Literal string

	// Block holds attributes for block-level nodes.
	Block *BlockAttrs

	// Inline holds attributes for inline-level nodes.
	Inline *InlineAttrs
}

// IsBlock returns true if this is a block-level node.
func (n *Node) IsBlock() bool {
	switch n.Kind {
	case NodeDocument, NodeParagraph, NodeHeading, NodeList, NodeListItem,
		NodeBlockquote, NodeCodeBlock, NodeThematicBreak:
		return true
	default:
		return false
	}
}

// IsInline returns true if this is an inline-level node.
func (n *Node) IsInline() bool {
	return !n.IsBlock()
}

// HasChildren returns true if this node has at least one child.
func (n *Node) HasChildren() bool {
	return len(n.Children) > 0
}
