// Package server exposes the numeral and code-generation pipelines and
// the conversational engine over HTTP.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/dzformation/algopascal/internal/i18n"
	"github.com/dzformation/algopascal/internal/session"
	"github.com/dzformation/algopascal/internal/store"
)

// Config holds server dependencies and settings.
type Config struct {
	Addr       string
	Engine     *session.Engine
	Catalog    *i18n.Catalog
	Users      *store.Store
	Logger     *slog.Logger
	LocalesDir string // non-empty enables locale hot-reload
	Watch      bool
}

// Server is the HTTP front end.
type Server struct {
	addr       string
	engine     *session.Engine
	catalog    *i18n.Catalog
	users      *store.Store
	logger     *slog.Logger
	localesDir string
	watch      bool
}

// New creates a server from cfg. A nil logger discards logs.
func New(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Server{
		addr:       cfg.Addr,
		engine:     cfg.Engine,
		catalog:    cfg.Catalog,
		users:      cfg.Users,
		logger:     logger,
		localesDir: cfg.LocalesDir,
		watch:      cfg.Watch,
	}
}

// Router builds the HTTP routes. Exposed for tests.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Route("/api", func(r chi.Router) {
		r.Post("/convert", s.handleConvert)
		r.Post("/detect", s.handleDetect)
		r.Post("/compile", s.handleCompile)
		r.Get("/users", s.handleListUsers)
	})
	r.Post("/webhook", s.handleWebhook)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	return r
}

// Serve starts the listener and blocks until ctx is cancelled. When a
// locales directory is configured with watching enabled, edits to it
// reload the message catalog live.
func (s *Server) Serve(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("http server listening", "addr", ln.Addr().String())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if s.watch && s.localesDir != "" {
		g.Go(func() error { return s.watchLocales(ctx) })
	}

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// watchLocales reloads the message catalog whenever a locale file
// changes on disk.
func (s *Server) watchLocales(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(s.localesDir); err != nil {
		return err
	}
	s.logger.Info("watching locales", "dir", s.localesDir)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if err := s.catalog.Reload(s.localesDir); err != nil {
				s.logger.Warn("locale reload failed", "error", err)
				continue
			}
			s.logger.Info("locales reloaded", "trigger", event.Name)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Warn("locale watcher error", "error", err)
		}
	}
}

// requestLogger tags each request with an id and logs its outcome.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		ww.Header().Set("X-Request-Id", id)

		next.ServeHTTP(ww, r)

		s.logger.Info("request",
			"id", id,
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
		)
	})
}
