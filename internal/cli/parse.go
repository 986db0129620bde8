package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdpipe/internal/ui/pretty"
	"github.com/yaklabco/mdpipe/pkg/fsutil"
)

func newParseCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Dump the block tree for a document",
		Long: `Run the lexer and block parser and print the block structure as an
indented tree. Inline content is shown as raw text excerpts on the
leaf blocks; it is not parsed at this stage.

Examples:
  mdpipe parse README.md
  cat README.md | mdpipe parse`,
		Args: cobra.ArbitraryArgs,
		RunE: runParse,
	}

	return cmd
}

func runParse(cmd *cobra.Command, args []string) error {
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

	svc, err := newService(cfg)
	if err != nil {
		return err
	}
	tree := svc.BlockTree(text)

	styles := pretty.NewStyles(pretty.IsColorEnabled(string(cfg.Color), os.Stdout))
	fmt.Fprint(cmd.OutOrStdout(), styles.FormatBlockTree(tree))

	return nil
}
