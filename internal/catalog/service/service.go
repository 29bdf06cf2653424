package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"storefront/internal/catalog"
	"storefront/internal/requestid"

	"github.com/prometheus/client_golang/prometheus"
)

type API interface {
	List(ctx context.Context, filter catalog.Filter) (catalog.Page, error)
	Get(ctx context.Context, id int64) (catalog.Product, error)
	Create(ctx context.Context, fields catalog.Fields) (catalog.Product, error)
	Update(ctx context.Context, id int64, fields catalog.Fields) (catalog.Product, error)
	Delete(ctx context.Context, id int64) error
}

type Publisher interface {
	Publish(ctx context.Context, event catalog.Event) error
}

// Counters tracks successful catalog mutations made through the storefront.
type Counters struct {
	Created prometheus.Counter
	Updated prometheus.Counter
	Deleted prometheus.Counter
}

type Service struct {
	api       API
	publisher Publisher
	logger    *slog.Logger
	counters  Counters
}

func New(api API, publisher Publisher, logger *slog.Logger, counters Counters) *Service {
	return &Service{
		api:       api,
		publisher: publisher,
		logger:    logger,
		counters:  counters,
	}
}

func (s *Service) ListProducts(ctx context.Context, filter catalog.Filter) (catalog.Page, error) {
	page, err := s.api.List(ctx, filter)
	if err != nil {
		return catalog.Page{}, fmt.Errorf("api list: %w", err)
	}
	return page, nil
}

func (s *Service) GetProduct(ctx context.Context, id int64) (catalog.Product, error) {
	product, err := s.api.Get(ctx, id)
	if err != nil {
		return catalog.Product{}, fmt.Errorf("api get: %w", err)
	}
	return product, nil
}

func (s *Service) CreateProduct(ctx context.Context, fields catalog.Fields) (catalog.Product, error) {
	product, err := s.api.Create(ctx, fields)
	if err != nil {
		return catalog.Product{}, fmt.Errorf("api create: %w", err)
	}

	s.publish(ctx, catalog.EventCreated, product.ID, product.Title)
	s.counters.Created.Inc()
	return product, nil
}

func (s *Service) UpdateProduct(ctx context.Context, id int64, fields catalog.Fields) (catalog.Product, error) {
	product, err := s.api.Update(ctx, id, fields)
	if err != nil {
		return catalog.Product{}, fmt.Errorf("api update: %w", err)
	}

	s.publish(ctx, catalog.EventUpdated, product.ID, product.Title)
	s.counters.Updated.Inc()
	return product, nil
}

func (s *Service) DeleteProduct(ctx context.Context, id int64) error {
	if err := s.api.Delete(ctx, id); err != nil {
		return fmt.Errorf("api delete: %w", err)
	}

	s.publish(ctx, catalog.EventDeleted, id, "")
	s.counters.Deleted.Inc()
	return nil
}

func (s *Service) publish(ctx context.Context, eventType string, productID int64, title string) {
	if err := s.publisher.Publish(ctx, catalog.Event{
		EventType: eventType,
		ProductID: productID,
		Title:     title,
		RequestID: requestid.FromContext(ctx),
		Timestamp: time.Now().UTC(),
	}); err != nil {
		s.logger.Error("publish "+eventType+" event failed",
			"product_id", productID,
			"error", err,
		)
	}
}
