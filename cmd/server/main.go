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

	"github.com/joho/godotenv"

	"github.com/deeplydee/photocards/internal/app"
	"github.com/deeplydee/photocards/internal/card"
	"github.com/deeplydee/photocards/internal/config"
	"github.com/deeplydee/photocards/internal/db"
	"github.com/deeplydee/photocards/internal/user"
)

const shutdownTimeout = 30 * time.Second

func main() {
	if err := godotenv.Load(); err != nil {
		// .env is optional outside development
		slog.Debug("no .env file loaded", "error", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := config.Load()
	if cfg.DevSecretInUse() {
		logger.Warn("JWT_SECRET is not set, using insecure development default")
	}

	if err := run(cfg, logger); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *slog.Logger) error {
	ctx := context.Background()

	client, err := db.Connect(ctx, cfg.MongoURL)
	if err != nil {
		return err
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Error("store disconnect failed", "error", err)
		}
	}()
	logger.Info("connected to store", "url", cfg.MongoURL, "db", cfg.MongoDB)

	database := client.Database(cfg.MongoDB)
	users := user.NewMongoStore(database)
	cards := card.NewMongoStore(database)
	if err := users.EnsureIndexes(ctx); err != nil {
		return err
	}

	e := app.New(cfg, logger, users, cards)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "port", cfg.Port)
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		logger.Info("shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}
