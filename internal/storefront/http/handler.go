package http

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"storefront/internal/catalog"
	"storefront/internal/storefront"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"
)

const (
	searchQuery  = "search"
	newQuery     = "new"
	editQuery    = "edit"
	confirmField = "confirm"
	confirmYes   = "yes"
	confirmNo    = "no"
	seqHeader    = "X-Search-Seq"

	catalogTemplate       = "catalog.html"
	detailTemplate        = "detail.html"
	confirmDeleteTemplate = "confirm_delete.html"
	errorTemplate         = "error.html"
	gridTemplate          = "grid"
)

// SearchCounters count live searches that never reached the page.
type SearchCounters struct {
	Superseded prometheus.Counter
	Limited    prometheus.Counter
}

type Handler struct {
	catalog  storefront.Catalog
	sessions *Sessions
	logger   *slog.Logger
	counters SearchCounters
}

func NewHandler(svc storefront.Catalog, sessions *Sessions, logger *slog.Logger, counters SearchCounters) *Handler {
	return &Handler{
		catalog:  svc,
		sessions: sessions,
		logger:   logger,
		counters: counters,
	}
}

type productFormRequest struct {
	Title       string `form:"title" example:"Mug"`
	Price       string `form:"price" example:"9.50"`
	ImageURL    string `form:"imageUrl" example:"https://example.com/mug.jpg"`
	Category    string `form:"category" example:"Kitchen"`
	Description string `form:"description" example:"Ceramic mug, 350 ml"`
}

func (r productFormRequest) form() storefront.ProductForm {
	return storefront.ProductForm{
		Title:       r.Title,
		Price:       r.Price,
		ImageURL:    r.ImageURL,
		Category:    r.Category,
		Description: r.Description,
	}
}

type catalogPage struct {
	Title      string
	Alert      string
	ReplaceURL string
	Search     string
	Items      []catalog.Product
	Total      int64
	Failed     bool
	Form       storefront.ProductForm
	FormOpen   bool
	Busy       bool
}

type detailPage struct {
	Title        string
	Alert        string
	ReplaceURL   string
	ID           int64
	Product      catalog.Product
	Form         storefront.ProductForm
	FormOpen     bool
	Updating     bool
	Deleting     bool
	DeletePrompt string
}

type errorPage struct {
	Title      string
	Alert      string
	ReplaceURL string
	Message    string
}

// CatalogPage godoc
// @Summary      Catalog page
// @Description  Lists products matching the search term. new=1 opens the create form.
// @Tags         pages
// @Produce      html
// @Param        search  query     string  false  "Search term"
// @Param        new     query     int     false  "Open the create form"
// @Success      200     {string}  string  "catalog page"
// @Failure      502     {string}  string  "catalog page with load error"
// @Router       / [get]
func (h *Handler) CatalogPage(c *gin.Context) {
	view, _ := h.session(c)
	if c.Query(newQuery) != "" {
		view.OpenCreateForm()
	} else {
		view.CloseCreateForm()
	}

	status := http.StatusOK
	if err := view.Search(c.Request.Context(), c.Query(searchQuery)); err != nil && !errors.Is(err, storefront.ErrSuperseded) {
		status = statusFor(err)
	}
	h.renderCatalog(c, status, view.Snapshot(), "", "")
}

// Search godoc
// @Summary      Live search
// @Description  Renders the product grid fragment for the session's latest search. The X-Search-Seq request header is echoed back.
// @Tags         search
// @Produce      html
// @Param        search        query     string  false  "Search term"
// @Param        X-Search-Seq  header    int     false  "Client search sequence number"
// @Success      200           {string}  string  "product grid fragment"
// @Success      204           "superseded by a newer search"
// @Failure      429           {string}  string  "too many searches"
// @Failure      502           {string}  string  "product grid fragment with load error"
// @Router       /search [get]
func (h *Handler) Search(c *gin.Context) {
	view, limiter := h.session(c)
	if seq := c.GetHeader(seqHeader); seq != "" {
		c.Header(seqHeader, seq)
	}

	if !limiter.Allow() {
		inc(h.counters.Limited)
		c.String(http.StatusTooManyRequests, "too many searches")
		return
	}

	err := view.Search(c.Request.Context(), c.Query(searchQuery))
	if errors.Is(err, storefront.ErrSuperseded) {
		inc(h.counters.Superseded)
		c.Status(http.StatusNoContent)
		return
	}

	status := http.StatusOK
	if err != nil {
		status = statusFor(err)
	}
	c.HTML(status, gridTemplate, newCatalogPage(view.Snapshot(), "", ""))
}

// CreateProduct godoc
// @Summary      Create a product
// @Description  Submits the create form. Success re-renders the catalog for the active search with the form closed.
// @Tags         products
// @Accept       x-www-form-urlencoded
// @Produce      html
// @Param        body  formData  productFormRequest  true  "Product form"
// @Success      200   {string}  string  "refreshed catalog page"
// @Failure      404   {string}  string  "catalog page with alert"
// @Failure      409   {string}  string  "another create is in flight"
// @Failure      422   {string}  string  "catalog page with alert"
// @Failure      502   {string}  string  "catalog page with alert"
// @Router       /products [post]
func (h *Handler) CreateProduct(c *gin.Context) {
	var req productFormRequest
	if err := c.ShouldBind(&req); err != nil {
		h.renderError(c, http.StatusBadRequest, "Invalid form submission.")
		return
	}

	view, _ := h.session(c)
	ctx := c.Request.Context()

	view.SetForm(req.form())
	view.OpenCreateForm()
	if err := view.Create(ctx); err != nil {
		h.renderCatalog(c, statusFor(err), view.Snapshot(), alertFor(err), "")
		return
	}

	snap := view.Snapshot()
	h.logger.InfoContext(ctx, "item created via storefront", "search", snap.Search)
	h.renderCatalog(c, http.StatusOK, snap, "", catalogURL(snap.Search))
}

// ProductPage godoc
// @Summary      Product detail page
// @Tags         pages
// @Produce      html
// @Param        id    path      int     true   "Product ID"
// @Param        edit  query     int     false  "Open the edit form"
// @Success      200   {string}  string  "detail page"
// @Failure      400   {string}  string  "error page"
// @Failure      404   {string}  string  "error page"
// @Failure      502   {string}  string  "error page"
// @Router       /products/{id} [get]
func (h *Handler) ProductPage(c *gin.Context) {
	id, ok := h.productID(c)
	if !ok {
		return
	}
	view, ok := h.loadDetail(c, id)
	if !ok {
		return
	}
	if c.Query(editQuery) != "" {
		view.OpenEditForm()
	}
	h.renderDetail(c, detailTemplate, http.StatusOK, view.Snapshot(), "", "")
}

// UpdateProduct godoc
// @Summary      Update a product
// @Description  Submits the edit form. Success renders the updated product with the form closed.
// @Tags         products
// @Accept       x-www-form-urlencoded
// @Produce      html
// @Param        id    path      int                 true  "Product ID"
// @Param        body  formData  productFormRequest  true  "Product form"
// @Success      200   {string}  string  "updated detail page"
// @Failure      404   {string}  string  "detail page with alert"
// @Failure      422   {string}  string  "detail page with alert"
// @Failure      502   {string}  string  "detail page with alert"
// @Router       /products/{id} [post]
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, ok := h.productID(c)
	if !ok {
		return
	}
	var req productFormRequest
	if err := c.ShouldBind(&req); err != nil {
		h.renderError(c, http.StatusBadRequest, "Invalid form submission.")
		return
	}
	view, ok := h.loadDetail(c, id)
	if !ok {
		return
	}

	view.SetForm(req.form())
	view.OpenEditForm()
	if err := view.Edit(c.Request.Context()); err != nil {
		h.renderDetail(c, detailTemplate, statusFor(err), view.Snapshot(), alertFor(err), "")
		return
	}
	h.renderDetail(c, detailTemplate, http.StatusOK, view.Snapshot(), "", productURL(id))
}

// DeleteProduct godoc
// @Summary      Delete a product
// @Description  Without confirm the confirmation page is shown and nothing is deleted. confirm=yes deletes and redirects to the catalog; confirm=no returns to the product.
// @Tags         products
// @Accept       x-www-form-urlencoded
// @Produce      html
// @Param        id       path      int     true   "Product ID"
// @Param        confirm  formData  string  false  "yes or no"
// @Success      200      {string}  string  "confirmation page"
// @Success      303      "redirect"
// @Failure      404      {string}  string  "error page"
// @Failure      502      {string}  string  "detail page with alert"
// @Router       /products/{id}/delete [post]
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, ok := h.productID(c)
	if !ok {
		return
	}

	answer := c.PostForm(confirmField)
	if answer == confirmNo {
		c.Redirect(http.StatusSeeOther, productURL(id))
		return
	}

	view, ok := h.loadDetail(c, id)
	if !ok {
		return
	}
	if answer != confirmYes {
		h.renderDetail(c, confirmDeleteTemplate, http.StatusOK, view.Snapshot(), "", "")
		return
	}

	ctx := c.Request.Context()
	deleted, err := view.Delete(ctx, storefront.ConfirmFunc(func(string) bool { return true }))
	if err != nil {
		h.renderDetail(c, detailTemplate, statusFor(err), view.Snapshot(), alertFor(err), "")
		return
	}
	if deleted {
		h.logger.InfoContext(ctx, "product deleted via storefront", "product_id", id)
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) session(c *gin.Context) (*storefront.CatalogView, *rate.Limiter) {
	return h.sessions.Get(c.GetString(sessionKey))
}

func (h *Handler) productID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		h.renderError(c, http.StatusBadRequest, "Invalid product id.")
		return 0, false
	}
	return id, true
}

func (h *Handler) loadDetail(c *gin.Context, id int64) (*storefront.DetailView, bool) {
	ctx := c.Request.Context()
	view := storefront.NewDetailView(h.catalog, h.logger, id)
	if err := view.Load(ctx); err != nil {
		h.logger.ErrorContext(ctx, "load product failed", "product_id", id, "error", err)
		message := "Failed to load product. Please try again."
		if errors.Is(err, catalog.ErrNotFound) {
			message = "Product not found."
		}
		h.renderError(c, statusFor(err), message)
		return nil, false
	}
	return view, true
}

func (h *Handler) renderCatalog(c *gin.Context, status int, snap storefront.CatalogSnapshot, alert, replaceURL string) {
	c.HTML(status, catalogTemplate, newCatalogPage(snap, alert, replaceURL))
}

func (h *Handler) renderDetail(c *gin.Context, name string, status int, snap storefront.DetailSnapshot, alert, replaceURL string) {
	if snap.Alert != "" {
		alert = snap.Alert
	}
	c.HTML(status, name, detailPage{
		Title:        snap.Product.Title,
		Alert:        alert,
		ReplaceURL:   replaceURL,
		ID:           snap.ID,
		Product:      snap.Product,
		Form:         snap.Form,
		FormOpen:     snap.FormOpen,
		Updating:     snap.Updating,
		Deleting:     snap.Deleting,
		DeletePrompt: snap.DeletePrompt,
	})
}

func (h *Handler) renderError(c *gin.Context, status int, message string) {
	c.HTML(status, errorTemplate, errorPage{Title: "Error", Message: message})
}

func newCatalogPage(snap storefront.CatalogSnapshot, alert, replaceURL string) catalogPage {
	if snap.Alert != "" {
		alert = snap.Alert
	}
	return catalogPage{
		Title:      "Products",
		Alert:      alert,
		ReplaceURL: replaceURL,
		Search:     snap.Search,
		Items:      snap.Items,
		Total:      snap.Total,
		Failed:     snap.State == storefront.StateError,
		Form:       snap.Form,
		FormOpen:   snap.FormOpen,
		Busy:       snap.Busy,
	}
}

// statusFor maps a failed action to the status of the re-rendered page.
func statusFor(err error) int {
	switch {
	case errors.Is(err, storefront.ErrRequired),
		errors.Is(err, catalog.ErrInvalidPrice),
		errors.Is(err, catalog.ErrRejected):
		return http.StatusUnprocessableEntity
	case errors.Is(err, catalog.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, storefront.ErrBusy):
		return http.StatusConflict
	default:
		return http.StatusBadGateway
	}
}

// alertFor covers failures the views do not put into their own alert.
func alertFor(err error) string {
	if errors.Is(err, storefront.ErrBusy) {
		return "Your previous request is still being processed."
	}
	return "Something went wrong. Please try again."
}

func catalogURL(search string) string {
	return "/?" + url.Values{searchQuery: {search}}.Encode()
}

func productURL(id int64) string {
	return "/products/" + strconv.FormatInt(id, 10)
}

func inc(counter prometheus.Counter) {
	if counter != nil {
		counter.Inc()
	}
}
