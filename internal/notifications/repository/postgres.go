package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"storefront/internal/catalog"
)

const healthCheckTimeout = 2 * time.Second

// RecordedEvent is a catalog event as stored in the event log.
type RecordedEvent struct {
	ID         int64
	Event      catalog.Event
	RecordedAt time.Time
}

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Record(ctx context.Context, event catalog.Event) error {
	query := `
		INSERT INTO catalog_events (event_type, product_id, title, request_id, occurred_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	if _, err := r.db.ExecContext(ctx, query,
		event.EventType,
		event.ProductID,
		event.Title,
		event.RequestID,
		event.Timestamp,
	); err != nil {
		return fmt.Errorf("insert catalog event: %w", err)
	}
	return nil
}

// ListByProduct returns the recorded events of one product, oldest first.
func (r *PostgresRepository) ListByProduct(ctx context.Context, productID int64) ([]RecordedEvent, error) {
	query := `
		SELECT id, event_type, product_id, title, request_id, occurred_at, recorded_at
		FROM catalog_events
		WHERE product_id = $1
		ORDER BY occurred_at, id
	`

	rows, err := r.db.QueryContext(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("query catalog events: %w", err)
	}
	defer rows.Close()

	list := make([]RecordedEvent, 0)
	for rows.Next() {
		var e RecordedEvent
		if err := rows.Scan(
			&e.ID,
			&e.Event.EventType,
			&e.Event.ProductID,
			&e.Event.Title,
			&e.Event.RequestID,
			&e.Event.Timestamp,
			&e.RecordedAt,
		); err != nil {
			return nil, fmt.Errorf("scan catalog event: %w", err)
		}
		list = append(list, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate catalog events: %w", err)
	}

	return list, nil
}

func (r *PostgresRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM catalog_events`).Scan(&total); err != nil {
		return 0, fmt.Errorf("count catalog events: %w", err)
	}
	return total, nil
}

func (r *PostgresRepository) Health() error {
	ctx, cancel := context.WithTimeout(context.Background(), healthCheckTimeout)
	defer cancel()
	return r.db.PingContext(ctx)
}
