// Command weddingfolio runs the wedding photography portfolio web app:
// the public site and the admin panel, rendered server-side on top of the
// portfolio backend API.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"weddingfolio/internal/api"
	"weddingfolio/internal/cache"
	"weddingfolio/internal/config"
	"weddingfolio/internal/handlers"
	"weddingfolio/internal/render"
	"weddingfolio/internal/router"
	"weddingfolio/internal/session"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logLevel := slog.LevelInfo
	if cfg.IsDev() {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})))

	valkey, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		return err
	}
	defer valkey.Close()

	sessions := session.NewStore(valkey, !cfg.IsDev())
	pageCache := cache.NewPageCache(valkey, cache.DefaultPageTTL)
	client := api.New(cfg.APIBaseURL())

	renderer, err := render.New(cfg.IsDev(), cfg.BackendURL)
	if err != nil {
		return err
	}

	handler := router.New(router.Deps{
		Sessions: sessions,
		Public:   handlers.NewPublic(renderer, client, pageCache),
		Admin:    handlers.NewAdmin(renderer, sessions, client, pageCache),
		Auth:     handlers.NewAuth(renderer, sessions, client),
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", cfg.Addr(), "env", cfg.Env, "backend", cfg.BackendURL)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		slog.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return err
	}

	slog.Info("server stopped")
	return nil
}
