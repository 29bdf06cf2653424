package storefront

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"storefront/internal/catalog"
)

type call struct {
	op     string
	id     int64
	filter catalog.Filter
	fields catalog.Fields
}

type stubCatalog struct {
	mu    sync.Mutex
	calls []call

	listFn   func(ctx context.Context, filter catalog.Filter) (catalog.Page, error)
	getFn    func(ctx context.Context, id int64) (catalog.Product, error)
	createFn func(ctx context.Context, fields catalog.Fields) (catalog.Product, error)
	updateFn func(ctx context.Context, id int64, fields catalog.Fields) (catalog.Product, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (s *stubCatalog) record(c call) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, c)
}

func (s *stubCatalog) recorded() []call {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]call, len(s.calls))
	copy(out, s.calls)
	return out
}

func (s *stubCatalog) ListProducts(ctx context.Context, filter catalog.Filter) (catalog.Page, error) {
	s.record(call{op: "list", filter: filter})
	return s.listFn(ctx, filter)
}

func (s *stubCatalog) GetProduct(ctx context.Context, id int64) (catalog.Product, error) {
	s.record(call{op: "get", id: id})
	return s.getFn(ctx, id)
}

func (s *stubCatalog) CreateProduct(ctx context.Context, fields catalog.Fields) (catalog.Product, error) {
	s.record(call{op: "create", fields: fields})
	return s.createFn(ctx, fields)
}

func (s *stubCatalog) UpdateProduct(ctx context.Context, id int64, fields catalog.Fields) (catalog.Product, error) {
	s.record(call{op: "update", id: id, fields: fields})
	return s.updateFn(ctx, id, fields)
}

func (s *stubCatalog) DeleteProduct(ctx context.Context, id int64) error {
	s.record(call{op: "delete", id: id})
	return s.deleteFn(ctx, id)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

var mug = catalog.Product{
	ID:          3,
	Title:       "Mug",
	PriceCents:  950,
	ImageURL:    "https://x/y.png",
	Category:    "Kitchen",
	Inventory:   4,
	Description: "A mug",
}

func mugForm() ProductForm {
	return ProductForm{
		Title:       "Mug",
		Price:       "9.50",
		ImageURL:    "https://x/y.png",
		Category:    "Kitchen",
		Description: "A mug",
	}
}
