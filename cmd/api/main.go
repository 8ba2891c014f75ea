package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/felipeimp22/menuflow-backend/api/routes"
	"github.com/felipeimp22/menuflow-backend/internal/catalog"
	"github.com/felipeimp22/menuflow-backend/internal/delivery"
	"github.com/felipeimp22/menuflow-backend/internal/orders"
	"github.com/felipeimp22/menuflow-backend/internal/pricing"
	"github.com/felipeimp22/menuflow-backend/internal/settings"
	"github.com/felipeimp22/menuflow-backend/pkg/config"
	"github.com/felipeimp22/menuflow-backend/pkg/db"
	"github.com/felipeimp22/menuflow-backend/pkg/logger"
	"github.com/felipeimp22/menuflow-backend/pkg/maps"
	"github.com/felipeimp22/menuflow-backend/pkg/metrics"
	"github.com/felipeimp22/menuflow-backend/pkg/migrate"
	"github.com/felipeimp22/menuflow-backend/pkg/redis"
)

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

	dbClient, err := db.New(context.Background(), cfg.DB, cfg.FeatureFlags.UseSQLite, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	pricingMetrics := metrics.NewPricingMetrics(registry)

	settingsService, err := settings.NewService(
		settings.NewRepository(dbClient.DB()),
		redisClient,
		cfg.Settings.CacheTTL,
		logg,
	)
	if err != nil {
		logg.Error(context.Background(), "failed to create settings service", err)
		os.Exit(1)
	}

	var provider pricing.EstimateProvider
	if cfg.Delivery.Enabled {
		client, err := delivery.NewClient(cfg.Delivery)
		if err != nil {
			logg.Error(context.Background(), "failed to create delivery provider client", err)
			os.Exit(1)
		}
		provider = client
	}

	var geocoder orders.Geocoder
	if cfg.Maps.AccessToken != "" {
		client, err := maps.NewClient(cfg.Maps.AccessToken)
		if err != nil {
			logg.Error(context.Background(), "failed to create maps client", err)
			os.Exit(1)
		}
		geocoder = client
	}

	ordersService, err := orders.NewService(
		orders.NewRepository(dbClient.DB()),
		catalog.NewRepository(dbClient.DB()),
		settingsService,
		dbClient,
		provider,
		geocoder,
		logg,
		pricingMetrics,
	)
	if err != nil {
		logg.Error(context.Background(), "failed to create orders service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:              addr,
		Handler:           routes.NewRouter(cfg, logg, dbClient, redisClient, registry, ordersService, settingsService),
		ReadHeaderTimeout: 10 * time.Second,
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
