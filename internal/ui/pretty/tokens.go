package pretty

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/yaklabco/mdpipe/pkg/mdast"
)

// Token table formatting constants.
const (
	tablePadding     = 2
	minTextWidth     = 20
	indexColumnWidth = 4
	kindColumnWidth  = 14
	posColumnWidth   = 8
	lightSeparator   = "-"
	defaultTermWidth = 100
)

// TokenTableFormatter formats a token stream as a styled table.
type TokenTableFormatter struct {
	styles    *Styles
	termWidth int
}

// NewTokenTableFormatter creates a new token table formatter.
func NewTokenTableFormatter(styles *Styles, termWidth int) *TokenTableFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &TokenTableFormatter{
		styles:    styles,
		termWidth: termWidth,
	}
}

// FormatTokens formats the token stream as a table with one row per token.
func (t *TokenTableFormatter) FormatTokens(tokens []mdast.Token) string {
	var builder strings.Builder

	pad := strings.Repeat(" ", tablePadding)

	header := fmt.Sprintf("%-*s%s%-*s%s%-*s%s%s",
		indexColumnWidth, "#", pad,
		kindColumnWidth, "KIND", pad,
		posColumnWidth, "POS", pad,
		"TEXT",
	)
	builder.WriteString(t.styles.TableHeader.Render(header))
	builder.WriteString("\n")
	builder.WriteString(t.styles.TableSeparator.Render(strings.Repeat(lightSeparator, len(header))))
	builder.WriteString("\n")

	textWidth := t.textColumnWidth()
	for i, tok := range tokens {
		builder.WriteString(t.formatRow(i, tok, textWidth))
		builder.WriteString("\n")
	}

	return builder.String()
}

// formatRow formats a single token row. Column alignment is applied before
// styling so that ANSI escape sequences do not skew the padding.
func (t *TokenTableFormatter) formatRow(index int, tok mdast.Token, textWidth int) string {
	pad := strings.Repeat(" ", tablePadding)

	kind := tok.Kind.String()
	if tok.Count > 1 {
		kind = fmt.Sprintf("%s x%d", kind, tok.Count)
	}

	pos := fmt.Sprintf("%d:%d", tok.Line, tok.Column)
	text := truncate(strconv.Quote(tok.Text), textWidth)

	return fmt.Sprintf("%s%s%s%s%s%s%s",
		t.styles.Dim.Render(fmt.Sprintf("%-*d", indexColumnWidth, index)), pad,
		t.styles.TokenKind.Render(fmt.Sprintf("%-*s", kindColumnWidth, kind)), pad,
		t.styles.Position.Render(fmt.Sprintf("%-*s", posColumnWidth, pos)), pad,
		t.styles.TokenText.Render(text),
	)
}

// textColumnWidth computes the width available for the TEXT column.
func (t *TokenTableFormatter) textColumnWidth() int {
	fixed := indexColumnWidth + kindColumnWidth + posColumnWidth + 3*tablePadding
	width := t.termWidth - fixed
	if width < minTextWidth {
		width = minTextWidth
	}
	return width
}

// truncate shortens s to at most width runes, appending an ellipsis marker.
func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}

// TerminalWidth attempts to get the terminal width from the writer.
func TerminalWidth(writer io.Writer) int {
	if f, ok := writer.(interface{ Fd() uintptr }); ok {
		width, _, err := term.GetSize(int(f.Fd()))
		if err == nil && width > 0 {
			return width
		}
	}
	return defaultTermWidth
}
