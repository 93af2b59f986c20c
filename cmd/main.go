package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/davidbz/brandcost/internal/catalog"
	"github.com/davidbz/brandcost/internal/config"
	"github.com/davidbz/brandcost/internal/domain"
	"github.com/davidbz/brandcost/internal/httpserver"
	"github.com/davidbz/brandcost/internal/httpserver/middleware"
	"github.com/davidbz/brandcost/internal/observability"
	"github.com/davidbz/brandcost/internal/vendors"
)

const shutdownTimeout = 10 * time.Second

func main() {
	container := buildContainer()

	err := container.Invoke(func(server *httpserver.Server, logger *zap.Logger) error {
		defer func() { _ = logger.Sync() }()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() { errCh <- server.Start() }()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return errors.Join(server.Shutdown(shutdownCtx), <-errCh)
	})
	if err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

func buildContainer() *dig.Container {
	container := dig.New()

	// Configuration
	if err := container.Provide(config.Load); err != nil {
		log.Fatalf("Failed to provide config: %v", err)
	}
	if err := container.Provide(config.ParseDependenciesConfig); err != nil {
		log.Fatalf("Failed to provide config dependencies: %v", err)
	}

	// Observability
	if err := container.Provide(observability.InitLogger); err != nil {
		log.Fatalf("Failed to provide logger: %v", err)
	}
	if err := container.Provide(observability.NewMetrics); err != nil {
		log.Fatalf("Failed to provide metrics: %v", err)
	}

	// Pricing
	if err := container.Provide(func() (domain.Catalog, error) {
		return catalog.Load()
	}); err != nil {
		log.Fatalf("Failed to provide catalog: %v", err)
	}
	if err := container.Provide(func(c domain.Catalog) (domain.Quoter, error) {
		return vendors.NewEngine(c)
	}); err != nil {
		log.Fatalf("Failed to provide pricing engine: %v", err)
	}

	// HTTP Layer
	if err := container.Provide(middleware.BuildMiddlewareChain); err != nil {
		log.Fatalf("Failed to provide middleware chain: %v", err)
	}
	if err := container.Provide(httpserver.NewHandler); err != nil {
		log.Fatalf("Failed to provide HTTP handler: %v", err)
	}
	if err := container.Provide(httpserver.NewServer); err != nil {
		log.Fatalf("Failed to provide HTTP server: %v", err)
	}

	return container
}
