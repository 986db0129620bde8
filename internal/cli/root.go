// Package cli provides the Cobra command structure for mdpipe.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdpipe/internal/configloader"
	"github.com/yaklabco/mdpipe/internal/logging"
	"github.com/yaklabco/mdpipe/pkg/config"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root mdpipe command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "mdpipe",
		Short: "A Markdown compilation pipeline with inspectable stages",
		Long: `mdpipe compiles Markdown to HTML through explicit, inspectable stages:
a lossless lexer, a line-oriented block parser, a stack-based inline
parser, and an HTML renderer.

Each stage can be run on its own. The tokens, parse, and ast commands
dump the intermediate representations; html runs the whole pipeline.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	})

	// Add subcommands.
	rootCmd.AddCommand(newTokensCommand())
	rootCmd.AddCommand(newParseCommand())
	rootCmd.AddCommand(newASTCommand())
	rootCmd.AddCommand(newHTMLCommand())
	rootCmd.AddCommand(newBuildCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}

// loadConfig resolves configuration for a command: files and environment
// first, then persistent flag overrides on top.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	result, err := configloader.Load(configloader.LoadOptions{
		ExplicitPath: configPath,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", config.ErrInvalidConfig, err)
	}
	cfg := result.Config

	if cmd.Flags().Changed("color") {
		color, flagErr := cmd.Flags().GetString("color")
		if flagErr != nil {
			return nil, fmt.Errorf("get color flag: %w", flagErr)
		}
		cfg.Color = config.ColorMode(color)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	for _, path := range result.LoadedFrom {
		logging.Default().Debug("loaded config", logging.FieldPath, path)
	}

	return cfg, nil
}

// documentArg extracts the single document path argument, defaulting to
// stdin.
func documentArg(args []string) (string, error) {
	switch len(args) {
	case 0:
		return "-", nil
	case 1:
		return args[0], nil
	default:
		return "", fmt.Errorf("%w: expected at most one file argument, got %d", ErrUsage, len(args))
	}
}
