package storefront

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"storefront/internal/catalog"
)

// Confirmer answers the yes/no prompt shown before a destructive action.
type Confirmer interface {
	Confirm(prompt string) bool
}

type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool {
	return f(prompt)
}

// DetailView is a single product plus its edit form and delete flow.
type DetailView struct {
	catalog Catalog
	logger  *slog.Logger
	id      int64

	mu       sync.Mutex
	state    State
	product  catalog.Product
	loaded   bool
	err      error
	form     ProductForm
	formOpen bool
	updating bool
	deleting bool
	alert    string
}

type DetailSnapshot struct {
	ID           int64
	State        State
	Product      catalog.Product
	Loaded       bool
	Err          error
	Form         ProductForm
	FormOpen     bool
	Updating     bool
	Deleting     bool
	Alert        string
	DeletePrompt string
}

func NewDetailView(c Catalog, logger *slog.Logger, id int64) *DetailView {
	return &DetailView{
		catalog: c,
		logger:  logger,
		id:      id,
	}
}

// Load fetches the product and seeds the edit form from it.
func (v *DetailView) Load(ctx context.Context) error {
	v.mu.Lock()
	v.state = StateLoading
	v.mu.Unlock()

	p, err := v.catalog.GetProduct(ctx, v.id)

	v.mu.Lock()
	defer v.mu.Unlock()
	if err != nil {
		v.state = StateError
		v.err = err
		return fmt.Errorf("load product %d: %w", v.id, err)
	}

	v.state = StateLoaded
	v.err = nil
	v.product = p
	v.loaded = true
	v.form = FormFromProduct(p)
	return nil
}

func (v *DetailView) OpenEditForm() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.formOpen = true
}

func (v *DetailView) CloseEditForm() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.formOpen = false
	v.alert = ""
}

func (v *DetailView) SetForm(form ProductForm) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.form = form
}

// Edit submits the edit form and replaces the displayed product with the
// server's response. On failure the form stays open with the user's input.
func (v *DetailView) Edit(ctx context.Context) error {
	v.mu.Lock()
	if err := v.readyLocked(); err != nil {
		v.mu.Unlock()
		return err
	}
	fields, err := v.form.Fields()
	if err != nil {
		v.formOpen = true
		v.alert = alertFor(actionUpdate, err)
		v.mu.Unlock()
		return err
	}
	v.updating = true
	v.alert = ""
	v.mu.Unlock()

	p, err := v.catalog.UpdateProduct(ctx, v.id, fields)

	v.mu.Lock()
	defer v.mu.Unlock()
	v.updating = false
	if err != nil {
		v.formOpen = true
		v.alert = alertFor(actionUpdate, err)
		v.logger.ErrorContext(ctx, "update product failed", "product_id", v.id, "error", err)
		return fmt.Errorf("update product %d: %w", v.id, err)
	}

	v.product = p
	v.form = FormFromProduct(p)
	v.formOpen = false
	return nil
}

func (v *DetailView) DeletePrompt() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return deletePrompt(v.product.Title)
}

// Delete asks confirm before deleting. Declining sends no request and returns
// false with a nil error. On success it returns true and the caller
// navigates back to the catalog.
func (v *DetailView) Delete(ctx context.Context, confirm Confirmer) (bool, error) {
	v.mu.Lock()
	if err := v.readyLocked(); err != nil {
		v.mu.Unlock()
		return false, err
	}
	prompt := deletePrompt(v.product.Title)
	v.mu.Unlock()

	if !confirm.Confirm(prompt) {
		return false, nil
	}

	v.mu.Lock()
	if err := v.readyLocked(); err != nil {
		v.mu.Unlock()
		return false, err
	}
	v.deleting = true
	v.alert = ""
	v.mu.Unlock()

	err := v.catalog.DeleteProduct(ctx, v.id)

	v.mu.Lock()
	defer v.mu.Unlock()
	v.deleting = false
	if err != nil {
		v.alert = alertFor(actionDelete, err)
		v.logger.ErrorContext(ctx, "delete product failed", "product_id", v.id, "error", err)
		return false, fmt.Errorf("delete product %d: %w", v.id, err)
	}
	return true, nil
}

func (v *DetailView) readyLocked() error {
	if !v.loaded {
		return ErrNotLoaded
	}
	if v.updating || v.deleting {
		return ErrBusy
	}
	return nil
}

func (v *DetailView) Alert() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.alert
}

func (v *DetailView) Snapshot() DetailSnapshot {
	v.mu.Lock()
	defer v.mu.Unlock()

	state := v.state
	if v.updating || v.deleting {
		state = StateSubmitting
	}
	return DetailSnapshot{
		ID:           v.id,
		State:        state,
		Product:      v.product,
		Loaded:       v.loaded,
		Err:          v.err,
		Form:         v.form,
		FormOpen:     v.formOpen,
		Updating:     v.updating,
		Deleting:     v.deleting,
		Alert:        v.alert,
		DeletePrompt: deletePrompt(v.product.Title),
	}
}

func deletePrompt(title string) string {
	return fmt.Sprintf("Are you sure you want to delete \"%s\"? This action cannot be undone.", title)
}
