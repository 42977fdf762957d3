// Package commands implements the algopascal subcommands.
package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dzformation/algopascal/internal/cli/config"
	"github.com/dzformation/algopascal/internal/cli/output"
	"github.com/dzformation/algopascal/internal/store"
)

type configKey struct{}
type rendererKey struct{}
type loggerKey struct{}

// NewContext attaches the loaded config, renderer and logger to ctx.
// Called by the root command before any subcommand runs.
func NewContext(ctx context.Context, cfg *config.Config, r *output.Renderer, logger *slog.Logger) context.Context {
	ctx = context.WithValue(ctx, configKey{}, cfg)
	ctx = context.WithValue(ctx, rendererKey{}, r)
	ctx = context.WithValue(ctx, loggerKey{}, logger)
	return ctx
}

// CommandContext bundles what every subcommand needs.
type CommandContext struct {
	Config   *config.Config
	Renderer *output.Renderer
	Logger   *slog.Logger
}

// FromCommand extracts the command context, falling back to safe
// defaults so commands stay usable in tests that skip the root setup.
func FromCommand(cmd *cobra.Command) *CommandContext {
	ctx := cmd.Context()
	cc := &CommandContext{}

	if cfg, ok := ctx.Value(configKey{}).(*config.Config); ok {
		cc.Config = cfg
	} else if cfg, err := config.Load("", nil); err == nil {
		cc.Config = cfg
	} else {
		cc.Config = &config.Config{
			DataPath:     config.DefaultDataPath,
			ListenAddr:   config.DefaultListenAddr,
			Language:     config.DefaultLanguage,
			AlgoName:     config.DefaultAlgoName,
			PascalName:   config.DefaultPascalName,
			OutputFormat: config.DefaultOutput,
		}
	}
	if r, ok := ctx.Value(rendererKey{}).(*output.Renderer); ok {
		cc.Renderer = r
	} else {
		cc.Renderer = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.ModeAuto)
	}
	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		cc.Logger = logger
	} else {
		cc.Logger = slog.New(slog.DiscardHandler)
	}
	return cc
}

// openStore opens the user database configured in cfg, creating parent
// directories as needed.
func openStore(cfg *config.Config) (*store.Store, error) {
	path := cfg.DataPath
	if path != ":memory:" {
		if dir := filepath.Dir(path); dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("creating data directory: %w", err)
			}
		}
	}
	return store.Open(path)
}
