package catalog

import (
	"errors"
	"time"
)

var (
	ErrNotFound     = errors.New("product not found")
	ErrRejected     = errors.New("request rejected by catalog")
	ErrUnavailable  = errors.New("catalog unavailable")
	ErrInvalidPrice = errors.New("price must be a non-negative decimal amount")
)

const (
	EventsQueue  = "storefront.catalog.events"
	EventCreated = "product_created"
	EventUpdated = "product_updated"
	EventDeleted = "product_deleted"
)

// Product is the catalog record as served by the catalog API. Timestamps are
// kept as the opaque strings the API returns.
type Product struct {
	ID          int64  `json:"id" example:"1"`
	Title       string `json:"title" example:"Mug"`
	PriceCents  int64  `json:"priceCents" example:"950"`
	ImageURL    string `json:"imageUrl" example:"https://example.com/mug.png"`
	Category    string `json:"category" example:"Kitchen"`
	Inventory   int    `json:"inventory" example:"12"`
	Description string `json:"description" example:"A mug"`
	CreatedAt   string `json:"createdAt" example:"2026-02-24T12:00:00Z"`
	UpdatedAt   string `json:"updatedAt" example:"2026-02-24T12:00:00Z"`
}

// Fields is the body of create and update requests.
type Fields struct {
	Title       string `json:"title"`
	PriceCents  int64  `json:"priceCents"`
	ImageURL    string `json:"imageUrl"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

// Filter holds query parameters passed verbatim to the list endpoint.
type Filter map[string]string

type Page struct {
	Items []Product `json:"items"`
	Total int64     `json:"total"`
	Page  int       `json:"page"`
	Limit int       `json:"limit"`
}

type Event struct {
	EventType string    `json:"event_type"`
	ProductID int64     `json:"product_id"`
	Title     string    `json:"title,omitempty"`
	RequestID string    `json:"request_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
