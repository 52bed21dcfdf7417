package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/BruksfildServices01/food-ordering/internal/audit"
	"github.com/BruksfildServices01/food-ordering/internal/auth"
	"github.com/BruksfildServices01/food-ordering/internal/config"
	dbpkg "github.com/BruksfildServices01/food-ordering/internal/db"
	"github.com/BruksfildServices01/food-ordering/internal/logging"
	"github.com/BruksfildServices01/food-ordering/internal/payment"
	"github.com/BruksfildServices01/food-ordering/internal/realtime"
	"github.com/BruksfildServices01/food-ordering/internal/routes"
	"github.com/BruksfildServices01/food-ordering/internal/storage"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	logger := logging.New(cfg.IsProduction())

	if cfg.JWTSecret == "changeme" && cfg.IsProduction() {
		return errors.New("JWT_SECRET must be set in production")
	}

	db := dbpkg.NewDB(cfg)

	sessions, closeSessions, err := sessionStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeSessions()

	store, err := storage.New(ctx, cfg)
	if err != nil {
		return err
	}

	dispatcher := audit.NewDispatcher(audit.New(db))
	defer dispatcher.Close()

	deps := routes.Deps{
		DB:       db,
		Config:   cfg,
		Logger:   logger,
		Sessions: sessions,
		Audit:    dispatcher,
		Hub:      realtime.NewHub(cfg.CORSOrigins),
		Images:   storage.NewImages(store),
	}

	if cfg.MPAccessToken != "" {
		mp, err := payment.NewMercadoPago(cfg.MPAccessToken, cfg.MPNotificationURL)
		if err != nil {
			return err
		}
		deps.Checkout = mp
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	if err := routes.RegisterRoutes(r, deps); err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server running", "addr", cfg.Addr(), "env", cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// sessionStore uses Redis when REDIS_ADDR is set and process memory otherwise.
func sessionStore(ctx context.Context, cfg *config.Config) (auth.SessionStore, func(), error) {
	if cfg.RedisAddr == "" {
		slog.Warn("REDIS_ADDR not set, sessions are kept in memory")
		return auth.NewMemoryStore(cfg.SessionTTL), func() {}, nil
	}

	client := auth.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	store := auth.NewRedisStore(client, cfg.SessionTTL)
	if err := store.Ping(ctx); err != nil {
		client.Close()
		return nil, nil, err
	}
	return store, func() { client.Close() }, nil
}
