package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ayyanulhaq997-cmd/CorpVision/internal/admin"
	"github.com/ayyanulhaq997-cmd/CorpVision/internal/app"
	"github.com/ayyanulhaq997-cmd/CorpVision/internal/assist"
	"github.com/ayyanulhaq997-cmd/CorpVision/internal/catalog"
	"github.com/ayyanulhaq997-cmd/CorpVision/internal/config"
	h "github.com/ayyanulhaq997-cmd/CorpVision/internal/http"
	"github.com/ayyanulhaq997-cmd/CorpVision/internal/session"
	"github.com/ayyanulhaq997-cmd/CorpVision/internal/telemetry"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return serve(ctx, cfg)
	},
}

func serve(ctx context.Context, cfg *config.Config) error {
	metrics, err := telemetry.NewMetrics()
	if err != nil {
		return fmt.Errorf("register metrics: %w", err)
	}

	store := catalog.NewSeededStore()
	adminService := admin.NewService(store, metrics, logger.Named("admin"))

	assistClient, err := assist.NewClient(ctx, assist.Config{
		APIKey:  cfg.Assist.APIKey,
		Model:   cfg.Assist.Model,
		Timeout: cfg.Assist.Timeout,
	}, metrics, logger.Named("assist"))
	if err != nil {
		return fmt.Errorf("init assist client: %w", err)
	}
	if cfg.Assist.APIKey == "" {
		logger.Warn("no Gemini API key configured, description assist will return the fallback text")
	}

	stateLogger := logger.Named("state")
	sessions := session.NewRegistry(func() *app.State {
		state := app.New(
			app.WithCheckoutDelay(cfg.CheckoutDelay),
			app.WithMetrics(metrics),
			app.WithLogger(stateLogger),
		)
		state.Subscribe(app.OrderCompletionLogger(stateLogger))
		return state
	}, session.WithTTL(cfg.SessionTTL), session.WithLogger(logger.Named("session")))
	defer sessions.Close()

	router := h.NewRouter(h.RouterConfig{
		Sessions:           sessions,
		Catalog:            store,
		Admin:              adminService,
		Assist:             assistClient,
		Logger:             logger.Named("http"),
		RequestTimeout:     cfg.RequestTimeout,
		MaxRequestBodySize: cfg.MaxRequestBodySize,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("storefront starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
	}

	// Graceful shutdown
	logger.Info("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	logger.Info("server exited")
	return nil
}
