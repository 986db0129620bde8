package mdast

// NewNode creates a new node of the specified kind with no children.
func NewNode(kind NodeKind) *Node {
	return &Node{Kind: kind}
}

// NewDocument creates a new document root node.
func NewDocument() *Node {
	return NewNode(NodeDocument)
}

// NewText creates a text node holding the given literal content.
func NewText(text string) *Node {
	return &Node{Kind: NodeText, Literal: text}
}

// NewHeading creates a heading node. The inline content is supplied either
// as raw text (pre-inline phase) or as resolved children.
func NewHeading(level int) *Node {
	return &Node{
		Kind:  NodeHeading,
		Block: &BlockAttrs{HeadingLevel: level},
	}
}

// NewParagraph creates an empty paragraph node.
func NewParagraph() *Node {
	return NewNode(NodeParagraph)
}

// NewList creates a list node with the given attributes.
func NewList(attrs *ListAttrs) *Node {
	return &Node{
		Kind:  NodeList,
		Block: &BlockAttrs{List: attrs},
	}
}

// NewListItem creates an empty list item node.
func NewListItem() *Node {
	return NewNode(NodeListItem)
}

// NewBlockquote creates an empty blockquote node.
func NewBlockquote() *Node {
	return NewNode(NodeBlockquote)
}

// NewCodeBlock creates a code block node holding verbatim literal content.
func NewCodeBlock(attrs *CodeBlockAttrs, literal string) *Node {
	return &Node{
		Kind:    NodeCodeBlock,
		Literal: literal,
		Block:   &BlockAttrs{CodeBlock: attrs},
	}
}

// NewThematicBreak creates a thematic break node.
func NewThematicBreak() *Node {
	return NewNode(NodeThematicBreak)
}

// NewEmphasis creates an emphasis node wrapping the given children.
func NewEmphasis(children ...*Node) *Node {
	return &Node{Kind: NodeEmphasis, Children: children}
}

// NewStrong creates a strong-emphasis node wrapping the given children.
func NewStrong(children ...*Node) *Node {
	return &Node{Kind: NodeStrong, Children: children}
}

// NewCodeSpan creates an inline code span holding verbatim content.
func NewCodeSpan(text string) *Node {
	return &Node{Kind: NodeCodeSpan, Literal: text}
}

// NewLink creates a link node with the given destination and title.
func NewLink(dest, title string, children ...*Node) *Node {
	return &Node{
		Kind:     NodeLink,
		Children: children,
		Inline:   &InlineAttrs{Link: &LinkAttrs{Destination: dest, Title: title}},
	}
}

// NewImage creates an image node. The alt text is stored as the literal.
func NewImage(dest, title, alt string) *Node {
	return &Node{
		Kind:    NodeImage,
		Literal: alt,
		Inline:  &InlineAttrs{Link: &LinkAttrs{Destination: dest, Title: title}},
	}
}

// NewHardBreak creates a hard line break node.
func NewHardBreak() *Node {
	return &Node{Kind: NodeLineBreak, Inline: &InlineAttrs{HardBreak: true}}
}

// AppendChild appends child nodes to a parent in document order.
// It is only called during tree construction; a tree handed to a consumer
// is never modified.
func AppendChild(parent *Node, children ...*Node) {
	if parent == nil {
		return
	}
	for _, child := range children {
		if child != nil {
			parent.Children = append(parent.Children, child)
		}
	}
}
