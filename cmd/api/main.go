package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/multierr"

	"github.com/angelmondragon/lojavirtual-backend/api/routes"
	"github.com/angelmondragon/lojavirtual-backend/internal/address"
	"github.com/angelmondragon/lojavirtual-backend/internal/auth"
	"github.com/angelmondragon/lojavirtual-backend/internal/cart"
	"github.com/angelmondragon/lojavirtual-backend/internal/categories"
	"github.com/angelmondragon/lojavirtual-backend/internal/companies"
	product "github.com/angelmondragon/lojavirtual-backend/internal/products"
	"github.com/angelmondragon/lojavirtual-backend/internal/users"
	"github.com/angelmondragon/lojavirtual-backend/pkg/config"
	"github.com/angelmondragon/lojavirtual-backend/pkg/db"
	"github.com/angelmondragon/lojavirtual-backend/pkg/instance"
	"github.com/angelmondragon/lojavirtual-backend/pkg/logger"
	"github.com/angelmondragon/lojavirtual-backend/pkg/metrics"
	"github.com/angelmondragon/lojavirtual-backend/pkg/migrate"
	"github.com/angelmondragon/lojavirtual-backend/pkg/redis"
)

const shutdownTimeout = 15 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	if err := run(cfg, logg); err != nil {
		logg.Error(context.Background(), "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logg *logger.Logger) (err error) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbClient, err := db.Open(ctx, cfg, logg)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, dbClient.Close())
	}()

	if err := migrate.MaybeRunDev(ctx, cfg, logg, dbClient); err != nil {
		return err
	}

	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient, err = redis.New(ctx, cfg.Redis, logg)
		if err != nil {
			return err
		}
		defer func() {
			err = multierr.Append(err, redisClient.Close())
		}()
	} else {
		logg.Warn(ctx, "redis not configured, rate limiting and idempotency disabled")
	}

	registry := metrics.NewRegistry()
	services, err := buildServices(cfg, logg, dbClient, registry)
	if err != nil {
		return err
	}

	addr := ":" + cfg.App.Port
	server := &http.Server{
		Addr:              addr,
		Handler:           routes.NewRouter(cfg, logg, dbClient, redisClient, registry, services),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logg.Info(logg.WithFields(ctx, map[string]any{
			"env":      cfg.App.Env,
			"addr":     addr,
			"dialect":  dbClient.Dialect(),
			"instance": instance.ID(),
		}), "starting api server")
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logg.Info(context.Background(), "shutting down api server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func buildServices(cfg *config.Config, logg *logger.Logger, dbClient *db.Client, registry *prometheus.Registry) (routes.Services, error) {
	conn := dbClient.DB()

	authService, err := auth.NewService(auth.ServiceParams{
		UserRepo:       users.NewRepository(conn),
		JWTConfig:      cfg.JWT,
		PasswordConfig: cfg.Password,
		Logger:         logg,
	})
	if err != nil {
		return routes.Services{}, err
	}
	companyService, err := companies.NewService(companies.NewRepository(conn))
	if err != nil {
		return routes.Services{}, err
	}
	categoryService, err := categories.NewService(categories.NewRepository(conn))
	if err != nil {
		return routes.Services{}, err
	}
	productService, err := product.NewService(product.NewRepository(conn))
	if err != nil {
		return routes.Services{}, err
	}
	addressService, err := address.NewService(address.NewRepository(conn), time.Now)
	if err != nil {
		return routes.Services{}, err
	}
	cartService, err := cart.NewService(cart.NewRepository(conn), metrics.NewCartMetrics(registry))
	if err != nil {
		return routes.Services{}, err
	}

	return routes.Services{
		Auth:       authService,
		Companies:  companyService,
		Categories: categoryService,
		Products:   productService,
		Addresses:  addressService,
		Cart:       cartService,
	}, nil
}
