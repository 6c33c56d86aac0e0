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

	"github.com/luckpix/raspadinha/internal/config"
	"github.com/luckpix/raspadinha/internal/database"
	"github.com/luckpix/raspadinha/internal/database/postgres"
	"github.com/luckpix/raspadinha/internal/handler"
	"github.com/luckpix/raspadinha/internal/round"
	"github.com/luckpix/raspadinha/internal/rules"
	"github.com/luckpix/raspadinha/internal/server"
	"github.com/luckpix/raspadinha/internal/wallet"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)
	handler.InitValidator()

	connString := cfg.GetDBConnString()

	if err := database.Migrate(connString); err != nil {
		slog.Error("Failed to apply migrations", "error", err)
		os.Exit(1)
	}

	pool, err := database.NewPool(connString, database.DefaultPoolConfig())
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	rulesService, err := rules.NewService(postgres.NewRulesRepository(pool))
	if err != nil {
		slog.Error("Failed to create rules service", "error", err)
		os.Exit(1)
	}
	walletService := wallet.NewService(postgres.NewWalletRepository(pool))
	roundService := round.NewService(rulesService, postgres.NewRoundRepository(pool))

	srv := server.NewServer(cfg.Port, cfg.APIKey, nil, pool, roundService, walletService, rulesService)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	case sig := <-stop:
		slog.Info("Shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Stop(ctx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Server stopped")
}
