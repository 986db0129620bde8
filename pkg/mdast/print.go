package mdast

import (
	"fmt"
	"strings"
)

// PrintTree renders the fully resolved AST as indented text, one node per
// line with the node kind and its attributes. This is the `ast` debug view.
func PrintTree(root *Node) string {
	var sb strings.Builder

	//nolint:errcheck,revive // the builder callback never returns an error
	WalkWithContext(root, func(n *Node, depth int) error {
		sb.WriteString(strings.Repeat("  ", depth))
		sb.WriteString(describe(n, false))
		sb.WriteByte('\n')
		return nil
	}, nil)

	return sb.String()
}

// PrintBlockTree renders a block tree as indented text with inline content
// summarized rather than descended into. This is the `parse` debug view and
// works both on the pre-inline block tree (raw inline text on leaves) and on
// a resolved AST.
func PrintBlockTree(root *Node) string {
	var sb strings.Builder
	printBlocks(&sb, root, 0)
	return sb.String()
}

func printBlocks(sb *strings.Builder, n *Node, depth int) {
	if n == nil {
		return
	}
	if !n.IsBlock() {
		return
	}

	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString(describe(n, true))
	sb.WriteByte('\n')

	for _, child := range n.Children {
		printBlocks(sb, child, depth+1)
	}
}

// describe formats one node as "Kind attr=value ...".
// With summarize set, leaf blocks show their inline content as a quoted
// excerpt instead of relying on child nodes.
func describe(n *Node, summarize bool) string {
	var sb strings.Builder
	sb.WriteString(n.Kind.String())

	switch n.Kind {
	case NodeHeading:
		fmt.Fprintf(&sb, " level=%d", n.Block.HeadingLevel)
	case NodeList:
		attrs := n.Block.List
		fmt.Fprintf(&sb, " ordered=%t", attrs.Ordered)
		if attrs.Ordered {
			fmt.Fprintf(&sb, " start=%d", attrs.Start)
		} else if attrs.BulletMarker != "" {
			fmt.Fprintf(&sb, " bullet=%q", attrs.BulletMarker)
		}
		if attrs.Tight {
			sb.WriteString(" tight")
		}
	case NodeCodeBlock:
		attrs := n.Block.CodeBlock
		if attrs != nil && attrs.Info != "" {
			fmt.Fprintf(&sb, " info=%q", attrs.Info)
		}
		if attrs != nil && attrs.Indented {
			sb.WriteString(" indented")
		}
		fmt.Fprintf(&sb, " %s", excerpt(n.Literal))
	case NodeText, NodeCodeSpan:
		fmt.Fprintf(&sb, " %s", excerpt(n.Literal))
	case NodeLink:
		link := n.Inline.Link
		fmt.Fprintf(&sb, " url=%q", link.Destination)
		if link.Title != "" {
			fmt.Fprintf(&sb, " title=%q", link.Title)
		}
	case NodeImage:
		link := n.Inline.Link
		fmt.Fprintf(&sb, " url=%q alt=%q", link.Destination, n.Literal)
		if link.Title != "" {
			fmt.Fprintf(&sb, " title=%q", link.Title)
		}
	case NodeLineBreak:
		fmt.Fprintf(&sb, " hard=%t", n.Inline != nil && n.Inline.HardBreak)
	}

	if summarize && (n.Kind == NodeHeading || n.Kind == NodeParagraph) {
		if n.Literal != "" {
			fmt.Fprintf(&sb, " %s", excerpt(n.Literal))
		} else if text := inlineSummary(n); text != "" {
			fmt.Fprintf(&sb, " %s", excerpt(text))
		}
	}

	return sb.String()
}

// excerptLimit bounds quoted content in debug views.
const excerptLimit = 60

func excerpt(s string) string {
	if len(s) > excerptLimit {
		s = s[:excerptLimit] + "..."
	}
	return fmt.Sprintf("%q", s)
}

// inlineSummary flattens resolved inline children back to plain text.
func inlineSummary(n *Node) string {
	var sb strings.Builder

	//nolint:errcheck,revive // the builder callback never returns an error
	Walk(n, func(child *Node) error {
		switch child.Kind {
		case NodeText, NodeCodeSpan:
			sb.WriteString(child.Literal)
		case NodeLineBreak:
			sb.WriteByte(' ')
		}
		return nil
	})

	return sb.String()
}
