// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Token table components
	TableHeader    lipgloss.Style
	TableSeparator lipgloss.Style
	TokenKind      lipgloss.Style
	TokenText      lipgloss.Style
	Position       lipgloss.Style

	// Tree views
	TreeBranch  lipgloss.Style
	NodeKind    lipgloss.Style
	NodeAttr    lipgloss.Style
	NodeLiteral lipgloss.Style

	// Summary styles
	SummaryTitle lipgloss.Style
	SummaryValue lipgloss.Style
	Success      lipgloss.Style

	// Misc
	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

// newColorStyles creates styles with ANSI 256 colors.
func newColorStyles() *Styles {
	return &Styles{
		TableHeader:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7")),
		TableSeparator: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		TokenKind:      lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		TokenText:      lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		Position:       lipgloss.NewStyle().Foreground(lipgloss.Color("8")),

		TreeBranch:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		NodeKind:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		NodeAttr:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		NodeLiteral: lipgloss.NewStyle().Foreground(lipgloss.Color("7")),

		SummaryTitle: lipgloss.NewStyle().Bold(true),
		SummaryValue: lipgloss.NewStyle(),
		Success:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),

		Dim:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold: lipgloss.NewStyle().Bold(true),
	}
}

// newNoColorStyles creates styles with no color formatting.
func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		TableHeader:    plain,
		TableSeparator: plain,
		TokenKind:      plain,
		TokenText:      plain,
		Position:       plain,
		TreeBranch:     plain,
		NodeKind:       plain,
		NodeAttr:       plain,
		NodeLiteral:    plain,
		SummaryTitle:   plain,
		SummaryValue:   plain,
		Success:        plain,
		Dim:            plain,
		Bold:           plain,
	}
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		// Check NO_COLOR environment variable (https://no-color.org/)
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		// Check if output is a TTY
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
