package cli

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdpipe/internal/ui/pretty"
)

// HelpFormatter renders styled help and usage text for the command tree,
// reusing the shared pretty styles so help output matches the debug views.
type HelpFormatter struct {
	styles *pretty.Styles
}

// NewHelpFormatter creates a help formatter for the given color mode and
// destination writer.
func NewHelpFormatter(colorMode string, writer io.Writer) *HelpFormatter {
	return &HelpFormatter{
		styles: pretty.NewStyles(pretty.IsColorEnabled(colorMode, writer)),
	}
}

// ApplyToCommand installs the styled usage and help functions on cmd.
// Cobra propagates them to subcommands automatically.
func (h *HelpFormatter) ApplyToCommand(cmd *cobra.Command) {
	cmd.SetUsageFunc(func(command *cobra.Command) error {
		tmpl, err := template.New("usage").Funcs(h.funcs()).Parse(usageTemplate)
		if err != nil {
			return fmt.Errorf("parse usage template: %w", err)
		}
		return tmpl.Execute(command.OutOrStdout(), command)
	})

	cmd.SetHelpFunc(func(command *cobra.Command, _ []string) {
		tmpl, err := template.New("help").Funcs(h.funcs()).Parse(helpTemplate)
		if err != nil {
			command.PrintErrln(err)
			return
		}
		if err := tmpl.Execute(command.OutOrStdout(), command); err != nil {
			command.PrintErrln(err)
		}
	})
}

func (h *HelpFormatter) funcs() template.FuncMap {
	return template.FuncMap{
		"heading": h.styles.SummaryTitle.Render,
		"cmd":     h.styles.Bold.Render,
		"sub":     h.styles.Success.Render,
		"dim":     h.styles.Dim.Render,
		"flags":   h.renderFlags,
		"rpad":    rpad,
		"trim":    trimTrailing,
		"join":    strings.Join,
	}
}

const usageTemplate = `{{ heading "Usage:" }}
  {{if .Runnable}}{{ cmd .UseLine }}{{end}}
  {{if .HasAvailableSubCommands}}{{ cmd .CommandPath }} [command]{{end}}

{{- if gt (len .Aliases) 0}}

{{ heading "Aliases:" }}
  {{ dim (join .Aliases ", ") }}
{{- end}}

{{- if .HasExample}}

{{ heading "Examples:" }}
{{ dim .Example }}
{{- end}}

{{- if .HasAvailableSubCommands}}

{{ heading "Available Commands:" }}{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{ sub (rpad .Name .NamePadding) }} {{ .Short }}{{end}}{{end}}
{{- end}}

{{- if .HasAvailableLocalFlags}}

{{ heading "Flags:" }}
{{ flags .LocalFlags }}
{{- end}}

{{- if .HasAvailableInheritedFlags}}

{{ heading "Global Flags:" }}
{{ flags .InheritedFlags }}
{{- end}}

{{- if .HasAvailableSubCommands}}

Use "{{ cmd (print .CommandPath " [command] --help") }}" for more information about a command.
{{- end}}
`

const helpTemplate = `{{if or .Runnable .HasSubCommands}}{{ cmd .CommandPath }}{{if .Version}} {{ dim .Version }}{{end}}

{{end}}{{with (or .Long .Short)}}{{ . | trim }}

{{end}}` + usageTemplate

// renderFlags restyles pflag's FlagUsages output line by line: flag names
// keep the kind color, type hints go dim, descriptions stay plain.
func (h *HelpFormatter) renderFlags(flags interface{ FlagUsages() string }) string {
	usages := strings.TrimSuffix(flags.FlagUsages(), "\n")
	if usages == "" {
		return ""
	}

	lines := strings.Split(usages, "\n")
	for i, line := range lines {
		lines[i] = h.styleFlagLine(line)
	}
	return strings.Join(lines, "\n")
}

// styleFlagLine splits one "  -f, --flag type   description" line at the
// first run of two or more spaces after the flag names.
func (h *HelpFormatter) styleFlagLine(line string) string {
	body := strings.TrimLeft(line, " ")
	if body == "" {
		return line
	}
	indent := line[:len(line)-len(body)]

	// Wrapped description continuations carry no flag names; leave them be.
	if !strings.HasPrefix(body, "-") {
		return line
	}

	spec, desc := splitFlagSpec(body)

	var sb strings.Builder
	sb.WriteString(indent)
	for i, word := range strings.Fields(spec) {
		if i > 0 {
			sb.WriteString(" ")
		}
		name := strings.TrimSuffix(word, ",")
		if strings.HasPrefix(name, "-") {
			sb.WriteString(h.styles.TokenKind.Render(name))
			sb.WriteString(word[len(name):])
		} else {
			sb.WriteString(h.styles.Dim.Render(word))
		}
	}
	if desc != "" {
		sb.WriteString("   ")
		sb.WriteString(desc)
	}
	return sb.String()
}

// splitFlagSpec separates the flag specification from its description.
func splitFlagSpec(body string) (spec, desc string) {
	gap := 0
	for i, r := range body {
		if r == ' ' {
			gap++
			continue
		}
		if gap >= 2 {
			return strings.TrimRight(body[:i-gap], " "), body[i:]
		}
		gap = 0
	}
	return body, ""
}

func rpad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func trimTrailing(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}
