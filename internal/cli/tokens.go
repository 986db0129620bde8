package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdpipe/internal/ui/pretty"
	"github.com/yaklabco/mdpipe/pkg/fsutil"
	"github.com/yaklabco/mdpipe/pkg/mdast"
)

func newTokensCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens [file]",
		Short: "Dump the token stream for a document",
		Long: `Run only the lexer and print one row per token with its kind,
position, and exact source text.

The token stream is lossless: concatenating the text of every token
reproduces the input byte for byte. Reading from stdin is the default;
pass "-" to make it explicit.

Examples:
  mdpipe tokens README.md
  cat README.md | mdpipe tokens
  mdpipe tokens --verify README.md`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			verify, err := cmd.Flags().GetBool("verify")
			if err != nil {
				return fmt.Errorf("get verify flag: %w", err)
			}
			return runTokens(cmd, args, verify)
		},
	}

	cmd.Flags().Bool("verify", false, "check token stream contiguity against the source")

	return cmd
}

func runTokens(cmd *cobra.Command, args []string, verify bool) error {
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
	tokens := svc.Tokens(text)

	if verify {
		if !mdast.ValidateTokens(tokens, text) {
			return errors.New("token stream does not reconstruct the source")
		}
	}

	out := cmd.OutOrStdout()
	styles := pretty.NewStyles(pretty.IsColorEnabled(string(cfg.Color), os.Stdout))
	formatter := pretty.NewTokenTableFormatter(styles, pretty.TerminalWidth(out))
	fmt.Fprint(out, formatter.FormatTokens(tokens))

	return nil
}
