// Package cli provides the command-line interface for algopascal.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dzformation/algopascal/internal/cli/commands"
	"github.com/dzformation/algopascal/internal/cli/config"
	"github.com/dzformation/algopascal/internal/cli/output"
)

var cfgFile string

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "algopascal",
		Short: "algopascal - numeral bases and Algo/Pascal code generation",
		Long: `algopascal converts numbers between numeral bases, detects the base of
ambiguous literals, and compiles algebraic assignment statements into
Algo and Pascal source snippets.

It runs as a one-shot CLI, a local chat session, or an HTTP service
backing the study bot.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			level := slog.LevelWarn
			if cfg.Verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: level,
			}))

			renderer := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.OutputFormat))
			cmd.SetContext(commands.NewContext(cmd.Context(), cfg, renderer, logger))

			if cfg.Verbose {
				if file := config.FileUsed(); file != "" {
					fmt.Fprintf(os.Stderr, "Using config file: %s\n", file)
				}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./algopascal.yaml)")
	rootCmd.PersistentFlags().String("data-path", "", "Path to the user database")
	rootCmd.PersistentFlags().String("listen-addr", "", "HTTP listen address for serve")
	rootCmd.PersistentFlags().String("locales-dir", "", "Directory overriding the embedded locale files")
	rootCmd.PersistentFlags().Bool("watch", false, "Reload locales when files change (serve)")
	rootCmd.PersistentFlags().String("language", "", "Default language (ar, fr, en)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output format (auto|text|markdown|json)")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"auto", "text", "markdown", "json"}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("language", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"ar", "fr", "en"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(commands.NewConvertCommand())
	rootCmd.AddCommand(commands.NewDetectCommand())
	rootCmd.AddCommand(commands.NewCompileCommand())
	rootCmd.AddCommand(commands.NewChatCommand())
	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(commands.NewUsersCommand())
	rootCmd.AddCommand(commands.NewVersionCommand(Version, BuildDate, GitCommit))

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
