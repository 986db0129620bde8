package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdpipe/internal/ui/pretty"
	"github.com/yaklabco/mdpipe/pkg/export"
	"github.com/yaklabco/mdpipe/pkg/fsutil"
)

func newASTCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "ast [file]",
		Short: "Dump the resolved AST for a document",
		Long: `Run the full parser, including inline resolution, and print the
resulting tree with one node per line. With --json the tree is
emitted as indented JSON instead, suitable for tooling.

Examples:
  mdpipe ast README.md
  mdpipe ast --json README.md | jq '.children[].type'`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAST(cmd, args, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the AST as JSON")

	return cmd
}

func runAST(cmd *cobra.Command, args []string, asJSON bool) error {
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
	doc := svc.Parse(text)

	out := cmd.OutOrStdout()

	if asJSON {
		data, err := export.Marshal(doc)
		if err != nil {
			return fmt.Errorf("marshal ast: %w", err)
		}
		fmt.Fprintf(out, "%s\n", data)
		return nil
	}

	styles := pretty.NewStyles(pretty.IsColorEnabled(string(cfg.Color), os.Stdout))
	fmt.Fprint(out, styles.FormatTree(doc))

	return nil
}
