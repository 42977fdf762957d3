package commands

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dzformation/algopascal/internal/i18n"
	"github.com/dzformation/algopascal/internal/server"
	"github.com/dzformation/algopascal/internal/session"
)

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API and chat webhook",
		Long: `Start the HTTP server exposing the conversion, detection and
compilation endpoints plus the chat webhook.

With --locales-dir and --watch, edits to the locale files reload the
message catalog without a restart.`,
		Example: `  algopascal serve
  algopascal serve --listen-addr :9000
  algopascal serve --locales-dir ./locales --watch`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cc := FromCommand(cmd)
	cfg := cc.Config

	catalog, err := loadCatalog(cfg.LocalesDir)
	if err != nil {
		return err
	}

	users, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = users.Close() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	for _, id := range cfg.AdminIDs {
		if err := users.AddAdmin(ctx, id); err != nil {
			return fmt.Errorf("granting admin %d: %w", id, err)
		}
	}

	srv := server.New(server.Config{
		Addr:       cfg.ListenAddr,
		Engine:     session.NewEngine(catalog, users, cc.Logger),
		Catalog:    catalog,
		Users:      users,
		Logger:     cc.Logger,
		LocalesDir: cfg.LocalesDir,
		Watch:      cfg.Watch,
	})
	return srv.Serve(ctx)
}

func loadCatalog(localesDir string) (*i18n.Catalog, error) {
	if localesDir != "" {
		return i18n.LoadDir(localesDir)
	}
	return i18n.Load()
}
