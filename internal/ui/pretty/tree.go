package pretty

import (
	"strings"

	"github.com/yaklabco/mdpipe/pkg/mdast"
)

// FormatTree renders the resolved AST as a styled indented tree.
func (s *Styles) FormatTree(root *mdast.Node) string {
	return s.styleTreeText(mdast.PrintTree(root))
}

// FormatBlockTree renders the block tree as a styled indented tree with
// inline content summarized on leaf blocks.
func (s *Styles) FormatBlockTree(root *mdast.Node) string {
	return s.styleTreeText(mdast.PrintBlockTree(root))
}

// styleTreeText applies styles per line: indentation stays plain, the node
// kind gets the kind style, everything after it the attribute style.
func (s *Styles) styleTreeText(text string) string {
	var builder strings.Builder

	for _, line := range strings.Split(text, "\n") {
		if line == "" {
			continue
		}

		trimmed := strings.TrimLeft(line, " ")
		indent := line[:len(line)-len(trimmed)]

		kind, rest, found := strings.Cut(trimmed, " ")

		builder.WriteString(s.TreeBranch.Render(indent))
		builder.WriteString(s.NodeKind.Render(kind))
		if found {
			builder.WriteString(" ")
			builder.WriteString(s.styleAttrs(rest))
		}
		builder.WriteString("\n")
	}

	return builder.String()
}

// styleAttrs styles the attribute tail of a tree line. Quoted excerpts use
// the literal style, key=value pairs the attribute style.
func (s *Styles) styleAttrs(rest string) string {
	if strings.HasPrefix(rest, `"`) {
		return s.NodeLiteral.Render(rest)
	}

	// Attributes come first, a quoted excerpt last.
	if idx := strings.Index(rest, ` "`); idx >= 0 {
		return s.NodeAttr.Render(rest[:idx]) + " " + s.NodeLiteral.Render(rest[idx+1:])
	}

	return s.NodeAttr.Render(rest)
}
