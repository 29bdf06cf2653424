package messaging

import (
	"context"
	"log/slog"

	"storefront/internal/catalog"
)

// LogPublisher stands in for RabbitMQ when no broker is configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, event catalog.Event) error {
	p.logger.InfoContext(ctx, "catalog event",
		"event_type", event.EventType,
		"product_id", event.ProductID,
		"title", event.Title,
		"request_id", event.RequestID,
	)
	return nil
}
