// Package server runs the storefront process: it opens every shared
// resource, serves HTTP (and gRPC health when GRPC_PORT is set) and shuts
// down gracefully on SIGINT or SIGTERM.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/shashiranjanraj/storefront/config"
	"github.com/shashiranjanraj/storefront/internal/kernel"
	"github.com/shashiranjanraj/storefront/pkg/cache"
	"github.com/shashiranjanraj/storefront/pkg/database"
	"github.com/shashiranjanraj/storefront/pkg/event"
	"github.com/shashiranjanraj/storefront/pkg/grpc"
	"github.com/shashiranjanraj/storefront/pkg/logger"
	"github.com/shashiranjanraj/storefront/pkg/storage"
	"github.com/shashiranjanraj/storefront/pkg/workerpool"
)

const shutdownTimeout = 15 * time.Second

// Start blocks until ctx is cancelled or a termination signal arrives.
func Start(ctx context.Context) error {
	if err := config.Load(); err != nil {
		return fmt.Errorf("server: config: %w", err)
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.Connect(ctx)
	if err != nil {
		return fmt.Errorf("server: %w", err)
	}
	defer database.Close(db)

	store, err := cache.Connect(ctx)
	if err != nil {
		logger.Warn("redis unavailable, idempotency keys disabled", "error", err)
	}
	defer store.Close()

	disks, err := storage.Connect(ctx)
	if err != nil {
		return fmt.Errorf("server: %w", err)
	}

	events := event.New()
	defer events.Flush()
	if sink := event.NewKafkaSink(); sink != nil {
		defer sink.Close()
		pool := workerpool.New(config.EventWorkers(), 0)
		defer pool.Shutdown()
		sink.Subscribe(events, pool)
		logger.Info("order events published to kafka", "topic", config.KafkaTopic())
	}

	if port := config.GRPCPort(); port != "" {
		srv, err := grpc.Start(port, func(ctx context.Context) error { return database.Ping(ctx, db) })
		if err != nil {
			return fmt.Errorf("server: %w", err)
		}
		defer grpc.Stop(srv)
	}

	k := kernel.NewHTTPKernel(kernel.Deps{DB: db, Cache: store, Events: events, Disks: disks})
	httpSrv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           k.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("storefront listening", "addr", httpSrv.Addr, "env", config.AppEnv())
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server: listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	return nil
}
