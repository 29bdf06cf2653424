package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"storefront/internal/catalog"
	"storefront/internal/requestid"
)

const (
	defaultTimeout  = 10 * time.Second
	productsPath    = "/products"
	contentTypeJSON = "application/json"

	opList   = "list products"
	opGet    = "get product"
	opCreate = "create product"
	opUpdate = "update product"
	opDelete = "delete product"
	opPing   = "ping catalog"
)

// Client talks to the catalog REST API rooted at baseURL (for example
// "http://localhost:3000/api").
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	metrics    *Metrics
}

type Option func(*Client)

// WithHTTPClient replaces the default client; its own Timeout applies.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

func WithMetrics(m *Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: c.timeout}
	}
	return c
}

// List fetches one page of products. Filter entries are sent as query
// parameters unchanged; a nil filter sends none.
func (c *Client) List(ctx context.Context, filter catalog.Filter) (catalog.Page, error) {
	var query url.Values
	if filter != nil {
		query = make(url.Values, len(filter))
		for key, value := range filter {
			query.Set(key, value)
		}
	}

	var page catalog.Page
	if err := c.do(ctx, opList, http.MethodGet, productsPath, query, nil, &page); err != nil {
		return catalog.Page{}, err
	}
	if page.Items == nil {
		page.Items = []catalog.Product{}
	}
	return page, nil
}

func (c *Client) Get(ctx context.Context, id int64) (catalog.Product, error) {
	var p catalog.Product
	if err := c.do(ctx, opGet, http.MethodGet, productPath(id), nil, nil, &p); err != nil {
		return catalog.Product{}, err
	}
	return p, nil
}

func (c *Client) Create(ctx context.Context, fields catalog.Fields) (catalog.Product, error) {
	var p catalog.Product
	if err := c.do(ctx, opCreate, http.MethodPost, productsPath, nil, fields, &p); err != nil {
		return catalog.Product{}, err
	}
	return p, nil
}

// Update sends fields with PATCH; the API applies them as a partial update
// and returns the stored record.
func (c *Client) Update(ctx context.Context, id int64, fields catalog.Fields) (catalog.Product, error) {
	var p catalog.Product
	if err := c.do(ctx, opUpdate, http.MethodPatch, productPath(id), nil, fields, &p); err != nil {
		return catalog.Product{}, err
	}
	return p, nil
}

// Delete removes a product. A nil error means the API acknowledged the
// deletion; the response body is ignored.
func (c *Client) Delete(ctx context.Context, id int64) error {
	return c.do(ctx, opDelete, http.MethodDelete, productPath(id), nil, nil, nil)
}

// Ping checks that the catalog API answers a minimal list request.
func (c *Client) Ping(ctx context.Context) error {
	query := url.Values{"limit": []string{"1"}}
	return c.do(ctx, opPing, http.MethodGet, productsPath, query, nil, nil)
}

func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, body, out any) (err error) {
	start := time.Now()
	defer func() {
		c.metrics.observe(op, err, time.Since(start))
	}()

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, marshalErr := json.Marshal(body)
		if marshalErr != nil {
			return fmt.Errorf("%s: marshal body: %w", op, marshalErr)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", op, err)
	}
	req.Header.Set("Accept", contentTypeJSON)
	if body != nil {
		req.Header.Set("Content-Type", contentTypeJSON)
	}
	if id := requestid.FromContext(ctx); id != "" {
		req.Header.Set(requestid.Header, id)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &Error{Op: op, Err: fmt.Errorf("%w: %w", catalog.ErrUnavailable, err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &Error{
			Op:         op,
			StatusCode: resp.StatusCode,
			Message:    readErrorMessage(resp.Body),
			Err:        classify(resp.StatusCode),
		}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{
			Op:         op,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("%w: decode response: %w", catalog.ErrUnavailable, err),
		}
	}
	return nil
}

func productPath(id int64) string {
	return productsPath + "/" + strconv.FormatInt(id, 10)
}
