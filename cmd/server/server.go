package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/spf13/cobra"

	"github.com/critfumble/content-api/internal/config"
	"github.com/critfumble/content-api/internal/handlers/rest"
	orchestrator "github.com/critfumble/content-api/internal/orchestrators/content"
	"github.com/critfumble/content-api/internal/pkg/clock"
	"github.com/critfumble/content-api/internal/pkg/idgen"
	packrepo "github.com/critfumble/content-api/internal/repositories/pack"
	redisclient "github.com/critfumble/content-api/internal/redis"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP server",
	Long:  `Start the content-api HTTP server backed by the configured Redis pack store.`,
	RunE:  runServer,
}

func runServer(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	client, err := redisclient.NewClient(cfg.Redis.Endpoint, &redisclient.Options{
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
		UseTLS:       cfg.Redis.UseTLS,
	})
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}

	contentService, err := orchestrator.New(&orchestrator.Config{
		PackRepo:    packrepo.NewRedisRepository(client),
		IDGenerator: idgen.NewUUID("pack"),
		Clock:       clock.New(),
	})
	if err != nil {
		return fmt.Errorf("failed to create content service: %w", err)
	}

	handler, err := rest.NewHandler(&rest.HandlerConfig{ContentService: contentService})
	if err != nil {
		return fmt.Errorf("failed to create REST handler: %w", err)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(render.SetContentType(render.ContentTypeJSON))
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, map[string]string{"status": "ok"})
	})
	r.Mount("/", handler.Routes())

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      r,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("received shutdown signal, gracefully stopping")
		cancel()
	}()

	errChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server starting", "port", cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down HTTP server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Warn("graceful shutdown timeout exceeded, forcing close")
			_ = srv.Close()
		} else {
			slog.Info("server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		return err
	}
}
