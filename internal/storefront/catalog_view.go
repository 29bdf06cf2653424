package storefront

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"storefront/internal/catalog"
)

const searchParam = "search"

// CatalogView is the product listing plus the create form. Searches are
// sequenced: starting one cancels the one in flight, and a response that is
// no longer the latest is discarded instead of overwriting newer results.
type CatalogView struct {
	catalog Catalog
	logger  *slog.Logger

	mu       sync.Mutex
	seq      uint64
	cancel   context.CancelFunc
	state    State
	search   string
	items    []catalog.Product
	total    int64
	err      error
	form     ProductForm
	formOpen bool
	creating bool
	alert    string
}

type CatalogSnapshot struct {
	State    State
	Search   string
	Seq      uint64
	Items    []catalog.Product
	Total    int64
	Err      error
	Form     ProductForm
	FormOpen bool
	Busy     bool
	Alert    string
}

func NewCatalogView(c Catalog, logger *slog.Logger) *CatalogView {
	return &CatalogView{
		catalog: c,
		logger:  logger,
		items:   []catalog.Product{},
	}
}

// Search lists products matching term and replaces the displayed items with
// exactly the returned set. It returns ErrSuperseded when a later search was
// started before this one completed.
func (v *CatalogView) Search(ctx context.Context, term string) error {
	v.mu.Lock()
	v.seq++
	seq := v.seq
	if v.cancel != nil {
		v.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	v.cancel = cancel
	v.search = term
	v.state = StateLoading
	v.mu.Unlock()

	v.logger.DebugContext(ctx, "search products", "search", term, "seq", seq)
	page, err := v.catalog.ListProducts(ctx, catalog.Filter{searchParam: term})

	v.mu.Lock()
	defer v.mu.Unlock()
	cancel()

	if seq != v.seq {
		v.logger.DebugContext(ctx, "discard superseded search", "search", term, "seq", seq, "latest", v.seq)
		return ErrSuperseded
	}
	v.cancel = nil

	if err != nil {
		v.state = StateError
		v.err = err
		v.logger.ErrorContext(ctx, "search failed", "search", term, "error", err)
		return fmt.Errorf("search %q: %w", term, err)
	}

	v.state = StateLoaded
	v.err = nil
	v.items = page.Items
	v.total = page.Total
	return nil
}

// Refresh re-runs the current search term.
func (v *CatalogView) Refresh(ctx context.Context) error {
	v.mu.Lock()
	term := v.search
	v.mu.Unlock()
	return v.Search(ctx, term)
}

func (v *CatalogView) OpenCreateForm() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.formOpen = true
}

func (v *CatalogView) CloseCreateForm() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.formOpen = false
	v.alert = ""
}

func (v *CatalogView) SetForm(form ProductForm) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.form = form
}

// Create submits the create form. On success the form is reset and closed
// and the current search is re-run; a failing refresh is reported through
// the view state, not as a create failure. On failure the form stays open
// with the user's input and Alert carries the message to show.
func (v *CatalogView) Create(ctx context.Context) error {
	v.mu.Lock()
	if v.creating {
		v.mu.Unlock()
		return ErrBusy
	}
	fields, err := v.form.Fields()
	if err != nil {
		v.formOpen = true
		v.alert = alertFor(actionCreate, err)
		v.mu.Unlock()
		return err
	}
	v.creating = true
	v.alert = ""
	v.mu.Unlock()

	_, err = v.catalog.CreateProduct(ctx, fields)

	v.mu.Lock()
	v.creating = false
	if err != nil {
		v.formOpen = true
		v.alert = alertFor(actionCreate, err)
		v.mu.Unlock()
		v.logger.ErrorContext(ctx, "create product failed", "error", err)
		return fmt.Errorf("create product: %w", err)
	}
	v.form = ProductForm{}
	v.formOpen = false
	v.mu.Unlock()

	// The refresh outcome is recorded in the view state.
	_ = v.Refresh(ctx)
	return nil
}

func (v *CatalogView) Alert() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.alert
}

func (v *CatalogView) Snapshot() CatalogSnapshot {
	v.mu.Lock()
	defer v.mu.Unlock()

	state := v.state
	if v.creating {
		state = StateSubmitting
	}
	items := make([]catalog.Product, len(v.items))
	copy(items, v.items)

	return CatalogSnapshot{
		State:    state,
		Search:   v.search,
		Seq:      v.seq,
		Items:    items,
		Total:    v.total,
		Err:      v.err,
		Form:     v.form,
		FormOpen: v.formOpen,
		Busy:     v.creating,
		Alert:    v.alert,
	}
}
