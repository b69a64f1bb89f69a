package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ArtysFactory/proofy/internal/anchor"
	"github.com/ArtysFactory/proofy/internal/auth"
	"github.com/ArtysFactory/proofy/internal/config"
	"github.com/ArtysFactory/proofy/internal/metrics"
	"github.com/ArtysFactory/proofy/internal/server"
	"github.com/ArtysFactory/proofy/internal/storage"
	"github.com/ArtysFactory/proofy/internal/storage/postgres"
	"github.com/ArtysFactory/proofy/internal/storage/sqlite"
	"github.com/ArtysFactory/proofy/pkg/logging"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	logger := logging.Setup(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer store.Close()
	logger.Info("Storage initialized", "driver", cfg.DBDriver)

	handler, err := server.Handler(server.Options{
		Store:         store,
		Authenticator: auth.NewPasswordAuthenticator(store),
		JWT:           auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL),
		Anchorer:      anchor.Disabled{},
		Metrics:       metrics.New(),
		Logger:        logger,
		StaticPath:    cfg.StaticPath,
		CORSOrigin:    cfg.CORSOrigin,
	})
	if err != nil {
		return err
	}

	srv := server.NewHTTPServer(cfg.Addr(), handler)
	errc := make(chan error, 1)
	go func() {
		logger.Info("Connect server starting", "address", cfg.Addr(), "url", fmt.Sprintf("http://localhost%s", cfg.Addr()))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func openStore(ctx context.Context, cfg config.Config) (storage.Store, error) {
	if cfg.DBDriver == config.DriverPostgres {
		store, err := postgres.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return store, nil
	}

	slog.Info("Opening SQLite database", "path", cfg.DBPath)
	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return nil, err
	}
	return store, nil
}
