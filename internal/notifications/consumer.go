package notifications

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"storefront/internal/catalog"
	"storefront/internal/catalog/messaging"

	amqp "github.com/rabbitmq/amqp091-go"
)

const consumerTag = "notifications-service"

// ErrMalformedEvent marks a message that can never be processed. Such
// messages are dropped instead of requeued.
var ErrMalformedEvent = errors.New("malformed catalog event")

// Recorder stores a received catalog event.
type Recorder interface {
	Record(ctx context.Context, event catalog.Event) error
}

type Consumer struct {
	channel  *amqp.Channel
	queue    string
	recorder Recorder
	logger   *slog.Logger
}

func NewConsumer(conn *amqp.Connection, queue string, recorder Recorder, logger *slog.Logger) (*Consumer, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if _, err := messaging.DeclareQueue(ch, queue); err != nil {
		_ = ch.Close()
		return nil, err
	}

	return &Consumer{
		channel:  ch,
		queue:    queue,
		recorder: recorder,
		logger:   logger,
	}, nil
}

func (c *Consumer) Listen(ctx context.Context) error {
	msgs, err := c.channel.Consume(
		c.queue,
		consumerTag,
		false, // manual ack
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("consume queue %q: %w", c.queue, err)
	}

	return c.consume(ctx, msgs)
}

func (c *Consumer) consume(ctx context.Context, msgs <-chan amqp.Delivery) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-msgs:
			if !ok {
				return nil
			}

			if err := c.handleMessage(ctx, msg.Body); err != nil {
				requeue := !errors.Is(err, ErrMalformedEvent)
				c.logger.Error("handle message failed", "error", err, "requeue", requeue)
				_ = msg.Nack(false, requeue)
				continue
			}

			_ = msg.Ack(false)
		}
	}
}

func (c *Consumer) handleMessage(ctx context.Context, body []byte) error {
	var event catalog.Event
	if err := json.Unmarshal(body, &event); err != nil {
		return fmt.Errorf("unmarshal event: %w: %w", ErrMalformedEvent, err)
	}
	if err := validateEvent(event); err != nil {
		return err
	}

	c.logger.Info("notification event",
		"event_type", event.EventType,
		"product_id", event.ProductID,
		"title", event.Title,
		"request_id", event.RequestID,
		"timestamp", event.Timestamp,
	)

	if err := c.recorder.Record(ctx, event); err != nil {
		return fmt.Errorf("record event: %w", err)
	}
	return nil
}

func validateEvent(event catalog.Event) error {
	switch event.EventType {
	case catalog.EventCreated, catalog.EventUpdated, catalog.EventDeleted:
	default:
		return fmt.Errorf("%w: unknown event type %q", ErrMalformedEvent, event.EventType)
	}
	if event.ProductID < 1 {
		return fmt.Errorf("%w: invalid product id %d", ErrMalformedEvent, event.ProductID)
	}
	if event.Timestamp.IsZero() {
		return fmt.Errorf("%w: missing timestamp", ErrMalformedEvent)
	}
	return nil
}

func (c *Consumer) Close() error {
	return c.channel.Close()
}
