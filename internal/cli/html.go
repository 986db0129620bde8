package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdpipe/internal/logging"
	"github.com/yaklabco/mdpipe/internal/ui/pretty"
	"github.com/yaklabco/mdpipe/pkg/compat"
	"github.com/yaklabco/mdpipe/pkg/config"
	"github.com/yaklabco/mdpipe/pkg/export"
	"github.com/yaklabco/mdpipe/pkg/fsutil"
	"github.com/yaklabco/mdpipe/pkg/pipeline"
)

type htmlFlags struct {
	output         string
	engine         string
	compare        bool
	exportJSON     bool
	cacheStrategy  string
	cacheCapacity  int
	detectLanguage bool
	showCacheStats bool
}

func newHTMLCommand() *cobra.Command {
	flags := &htmlFlags{}

	cmd := &cobra.Command{
		Use:   "html [file]",
		Short: "Render a document to HTML",
		Long:  htmlLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHTML(cmd, args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "write HTML to a file instead of stdout")
	cmd.Flags().StringVar(&flags.engine, "engine", "", "rendering engine: mdpipe or goldmark")
	cmd.Flags().BoolVar(&flags.compare, "compare", false, "render with both engines and report divergence")
	cmd.Flags().BoolVar(&flags.exportJSON, "export-json", false, "also print the AST as JSON to stderr")
	cmd.Flags().StringVar(&flags.cacheStrategy, "cache", "", "cache strategy: lru, lfu, none")
	cmd.Flags().IntVar(&flags.cacheCapacity, "cache-capacity", 0, "cache entry limit per store")
	cmd.Flags().BoolVar(&flags.detectLanguage, "detect-language", false, "infer a language class for bare fenced code blocks")
	cmd.Flags().BoolVar(&flags.showCacheStats, "cache-stats", false, "print cache statistics to stderr after rendering")

	return cmd
}

const htmlLongDescription = `Render a Markdown document to an HTML fragment.

The output is a fragment, not a full page: no doctype, html, or body
wrapper. Block elements are separated by single newlines. Reading from
stdin is the default; pass "-" to make it explicit.

Examples:
  mdpipe html README.md
  mdpipe html README.md -o readme.html
  mdpipe html --compare README.md        # diff against goldmark
  mdpipe html --detect-language post.md  # classify bare code fences`

func runHTML(cmd *cobra.Command, args []string, flags *htmlFlags) error {
	path, err := documentArg(args)
	if err != nil {
		return err
	}

	text, err := fsutil.ReadDocument(path, cmd.InOrStdin())
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	applyHTMLFlags(cmd, cfg, flags)
	if err := cfg.Validate(); err != nil {
		return err
	}

	svc, err := newService(cfg)
	if err != nil {
		return err
	}

	html, err := renderDocument(svc, cfg, text)
	if err != nil {
		return err
	}

	if flags.compare {
		reportComparison(svc, text)
	}

	if err := writeHTML(cmd, cfg.Output, html); err != nil {
		return err
	}

	if flags.exportJSON {
		data, marshalErr := export.Marshal(svc.Parse(text))
		if marshalErr != nil {
			return fmt.Errorf("marshal ast: %w", marshalErr)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "%s\n", data)
	}

	if flags.showCacheStats {
		printCacheStats(cmd, cfg, svc)
	}

	return nil
}

// applyHTMLFlags layers explicitly provided flags on top of the resolved
// configuration.
func applyHTMLFlags(cmd *cobra.Command, cfg *config.Config, flags *htmlFlags) {
	cfg.Output = flags.output
	cfg.Compare = flags.compare
	cfg.ExportJSON = flags.exportJSON

	if cmd.Flags().Changed("engine") {
		cfg.Engine = config.Engine(flags.engine)
	}
	if cmd.Flags().Changed("cache") {
		cfg.Cache.Strategy = flags.cacheStrategy
	}
	if cmd.Flags().Changed("cache-capacity") {
		cfg.Cache.Capacity = flags.cacheCapacity
	}
	if cmd.Flags().Changed("detect-language") {
		cfg.Render.DetectLanguage = flags.detectLanguage
	}
}

func renderDocument(svc *pipeline.Service, cfg *config.Config, text string) (string, error) {
	if cfg.Engine == config.EngineGoldmark {
		html, err := compat.New().Render(text)
		if err != nil {
			return "", fmt.Errorf("goldmark render: %w", err)
		}
		return html, nil
	}
	return svc.Render(text), nil
}

// reportComparison renders with the reference engine as well and logs when
// the outputs disagree beyond formatting.
func reportComparison(svc *pipeline.Service, text string) {
	logger := logging.Default()

	reference, err := compat.New().Render(text)
	if err != nil {
		logger.Warn("reference render failed", logging.FieldError, err)
		return
	}

	cmp := compat.Comparison{Ours: svc.Render(text), Reference: reference}
	if cmp.Equal() {
		logger.Info("engines agree", logging.FieldEngine, "goldmark")
		return
	}

	logger.Warn("engines diverge",
		logging.FieldEngine, "goldmark",
		"ours_len", len(cmp.Ours),
		"reference_len", len(cmp.Reference),
	)
}

func writeHTML(cmd *cobra.Command, output, html string) error {
	if output == "" {
		fmt.Fprintln(cmd.OutOrStdout(), html)
		return nil
	}

	if err := fsutil.WriteAtomic(output, []byte(html+"\n"), fsutil.DefaultFileMode); err != nil {
		return err
	}
	logging.Default().Info("wrote HTML", logging.FieldPath, output, logging.FieldBytes, len(html)+1)
	return nil
}

func printCacheStats(cmd *cobra.Command, cfg *config.Config, svc *pipeline.Service) {
	stats, ok := svc.CacheStats()
	if !ok {
		return
	}
	styles := pretty.NewStyles(pretty.IsColorEnabled(string(cfg.Color), os.Stderr))
	fmt.Fprint(cmd.ErrOrStderr(), styles.FormatCacheStats(stats))
}
