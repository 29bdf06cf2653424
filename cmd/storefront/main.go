package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"storefront/internal/catalog"
	"storefront/internal/catalog/client"
	"storefront/internal/catalog/messaging"
	"storefront/internal/catalog/service"
	"storefront/internal/config"
	"storefront/internal/storefront"
	storefronthttp "storefront/internal/storefront/http"

	_ "storefront/docs"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	amqp "github.com/rabbitmq/amqp091-go"
	"golang.org/x/time/rate"
)

const (
	metricCreatedTotal    = "products_created_total"
	metricUpdatedTotal    = "products_updated_total"
	metricDeletedTotal    = "products_deleted_total"
	metricSupersededTotal = "storefront_searches_superseded_total"
	metricLimitedTotal    = "storefront_searches_rate_limited_total"
)

// @title        Storefront
// @version      1.0
// @description  Server-rendered storefront over the catalog API: listing with live search, product detail, create, edit and delete.
// @host         localhost:8080
// @BasePath     /
func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.LoadStorefront()
	if err != nil {
		logger.Error("load config", "error", err)
		os.Exit(1)
	}

	publisher, closePublisher, err := newPublisher(cfg.RabbitMQURL, logger)
	if err != nil {
		logger.Error("init publisher", "error", err)
		os.Exit(1)
	}
	defer closePublisher()

	counters := service.Counters{
		Created: prometheus.NewCounter(prometheus.CounterOpts{
			Name: metricCreatedTotal,
			Help: "Total number of products created through the storefront",
		}),
		Updated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: metricUpdatedTotal,
			Help: "Total number of products updated through the storefront",
		}),
		Deleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: metricDeletedTotal,
			Help: "Total number of products deleted through the storefront",
		}),
	}
	searchCounters := storefronthttp.SearchCounters{
		Superseded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: metricSupersededTotal,
			Help: "Total number of live searches discarded because a newer one started",
		}),
		Limited: prometheus.NewCounter(prometheus.CounterOpts{
			Name: metricLimitedTotal,
			Help: "Total number of live searches refused by the session rate limiter",
		}),
	}
	prometheus.MustRegister(counters.Created, counters.Updated, counters.Deleted, searchCounters.Superseded, searchCounters.Limited)

	api := client.New(cfg.CatalogAPIURL,
		client.WithTimeout(cfg.CatalogTimeout),
		client.WithMetrics(client.NewMetrics(prometheus.DefaultRegisterer)),
	)
	svc := service.New(api, publisher, logger, counters)

	sessions := storefronthttp.NewSessions(func() *storefront.CatalogView {
		return storefront.NewCatalogView(svc, logger)
	}, rate.Limit(cfg.SearchRate), cfg.SearchBurst, cfg.SessionTTL)
	handler := storefronthttp.NewHandler(svc, sessions, logger, searchCounters)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(storefronthttp.RequestIDMiddleware())
	router.Use(storefronthttp.AccessLogMiddleware(logger))
	storefronthttp.RegisterRoutes(router, handler, api)

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go sessions.Run(ctx, cfg.SessionSweep)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("storefront started", "addr", cfg.HTTPAddr, "catalog_api", cfg.CatalogAPIURL)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("http server failed", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	logger.Info("storefront stopped")
}

// newPublisher connects to RabbitMQ when a URL is configured and falls back
// to logging events otherwise.
func newPublisher(rabbitURL string, logger *slog.Logger) (service.Publisher, func(), error) {
	if rabbitURL == "" {
		logger.Warn("RABBITMQ_URL not set, catalog events are only logged")
		return messaging.NewLogPublisher(logger), func() {}, nil
	}

	conn, err := amqp.Dial(rabbitURL)
	if err != nil {
		return nil, nil, err
	}

	publisher, err := messaging.NewRabbitPublisher(conn, catalog.EventsQueue)
	if err != nil {
		_ = conn.Close()
		return nil, nil, err
	}

	return publisher, func() {
		_ = publisher.Close()
		_ = conn.Close()
	}, nil
}
