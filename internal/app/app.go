package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/memoboard/internal/adapter/jsonfile"
	"github.com/heartmarshall/memoboard/internal/config"
	"github.com/heartmarshall/memoboard/internal/service/memo"
	"github.com/heartmarshall/memoboard/internal/transport/middleware"
	"github.com/heartmarshall/memoboard/internal/transport/rest"
)

// Run loads configuration, wires the board and serves HTTP until ctx is
// canceled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log, os.Stderr)
	slog.SetDefault(logger)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("data_file", cfg.Storage.DataFile),
	)

	a, err := New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	ln, err := net.Listen("tcp", cfg.Server.Addr())
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.Server.Addr(), err)
	}

	return a.Serve(ctx, ln)
}

// App holds the wired board: store, service and HTTP handler.
type App struct {
	cfg     *config.Config
	log     *slog.Logger
	store   *jsonfile.Store
	limiter *middleware.RateLimiter
	handler http.Handler
}

// New creates the data directory and wires every layer.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	store := jsonfile.New(logger, cfg.Storage.DataFile, jsonfile.Options{
		LockTimeout:       cfg.Storage.LockTimeout,
		QuarantineCorrupt: cfg.Storage.QuarantineCorrupt,
	})
	if err := store.Ensure(ctx); err != nil {
		return nil, fmt.Errorf("prepare storage: %w", err)
	}

	a := &App{cfg: cfg, log: logger, store: store}

	var writeLimit middleware.Middleware
	if cfg.RateLimit.WritesPerMinute > 0 {
		a.limiter = middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		writeLimit = a.limiter.Limit(cfg.RateLimit.WritesPerMinute)
	}

	a.handler = NewRouter(RouterDeps{
		Logger:     logger,
		CORS:       cfg.CORS,
		Memos:      rest.NewMemoHandler(memo.NewService(logger, store), logger),
		Health:     rest.NewHealthHandler(store, BuildVersion()),
		Static:     rest.NewStaticHandler(cfg.Static.Dir),
		WriteLimit: writeLimit,
	})

	return a, nil
}

// Handler returns the root HTTP handler.
func (a *App) Handler() http.Handler { return a.handler }

// Serve accepts connections on ln until ctx is canceled.
func (a *App) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      a.handler,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(a.log.Handler(), slog.LevelError),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.log.Info("http server listening", slog.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		a.log.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout())
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// Close stops background workers and releases the data file lock.
func (a *App) Close() error {
	if a.limiter != nil {
		a.limiter.Stop()
	}
	return a.store.Close()
}

func (a *App) shutdownTimeout() time.Duration {
	if a.cfg.Server.ShutdownTimeout > 0 {
		return a.cfg.Server.ShutdownTimeout
	}
	return 10 * time.Second
}
