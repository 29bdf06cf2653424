// Package storefront holds the view models behind the storefront pages: the
// catalog listing with its create form, and the product detail with its edit
// form and delete confirmation. Views own their fetched snapshot and form
// state; nothing is shared between views.
package storefront

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/catalog"
)

var (
	ErrRequired   = errors.New("field is required")
	ErrBusy       = errors.New("another request is in flight")
	ErrNotLoaded  = errors.New("product not loaded")
	ErrSuperseded = errors.New("search superseded by a newer one")
)

const (
	actionCreate = "create item"
	actionUpdate = "update product"
	actionDelete = "delete product"
)

// Catalog is the subset of the catalog service the views call.
type Catalog interface {
	ListProducts(ctx context.Context, filter catalog.Filter) (catalog.Page, error)
	GetProduct(ctx context.Context, id int64) (catalog.Product, error)
	CreateProduct(ctx context.Context, fields catalog.Fields) (catalog.Product, error)
	UpdateProduct(ctx context.Context, id int64, fields catalog.Fields) (catalog.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

type State int

const (
	StateIdle State = iota
	StateLoading
	StateLoaded
	StateError
	StateSubmitting
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateError:
		return "error"
	case StateSubmitting:
		return "submitting"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// FieldError reports a required form field left empty.
type FieldError struct {
	Field string
}

func (e *FieldError) Error() string {
	return e.Field + " is required"
}

func (e *FieldError) Is(target error) bool {
	return target == ErrRequired
}

// alertFor turns a failed action into the message shown to the user.
func alertFor(action string, err error) string {
	var fieldErr *FieldError
	switch {
	case errors.As(err, &fieldErr):
		return fieldErr.Error() + "."
	case errors.Is(err, catalog.ErrInvalidPrice):
		return "Price must be a non-negative amount, for example 9.50."
	case errors.Is(err, catalog.ErrNotFound):
		return "This product no longer exists."
	case errors.Is(err, catalog.ErrRejected):
		return fmt.Sprintf("The catalog did not accept this %s request. Please check the form and try again.", action)
	default:
		return fmt.Sprintf("Failed to %s. Please try again.", action)
	}
}
