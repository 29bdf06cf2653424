package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/internal/catalog"
	"storefront/internal/requestid"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL+"/api/", opts...)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Errorf("encode response: %v", err)
	}
}

func TestClient_List(t *testing.T) {
	tests := []struct {
		name      string
		filter    catalog.Filter
		wantQuery string
	}{
		{name: "search term passed through", filter: catalog.Filter{"search": "mug"}, wantQuery: "search=mug"},
		{name: "empty search still sent", filter: catalog.Filter{"search": ""}, wantQuery: "search="},
		{name: "arbitrary parameters", filter: catalog.Filter{"page": "2", "limit": "5"}, wantQuery: "limit=5&page=2"},
		{name: "nil filter sends no query", filter: nil, wantQuery: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodGet || r.URL.Path != "/api/products" {
					t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
				}
				if r.URL.RawQuery != tt.wantQuery {
					t.Errorf("want query %q, got %q", tt.wantQuery, r.URL.RawQuery)
				}
				writeJSON(t, w, http.StatusOK, map[string]any{
					"items": []catalog.Product{{ID: 1, Title: "Mug", PriceCents: 950}},
					"total": 1,
					"page":  1,
					"limit": 10,
				})
			})

			page, err := c.List(context.Background(), tt.filter)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(page.Items) != 1 || page.Items[0].Title != "Mug" {
				t.Fatalf("unexpected items: %+v", page.Items)
			}
			if page.Total != 1 || page.Page != 1 || page.Limit != 10 {
				t.Fatalf("unexpected page meta: %+v", page)
			}
		})
	}
}

func TestClient_ListNullItems(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"items":null,"total":0,"page":1,"limit":10}`)
	})

	page, err := c.List(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Items == nil {
		t.Fatal("expected non-nil empty slice")
	}
}

func TestClient_Get(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/products/7" {
			writeJSON(t, w, http.StatusNotFound, map[string]string{"error": "product not found"})
			return
		}
		writeJSON(t, w, http.StatusOK, catalog.Product{ID: 7, Title: "Lamp", PriceCents: 4999, Inventory: 3})
	})

	p, err := c.Get(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID != 7 || p.Title != "Lamp" || p.PriceCents != 4999 || p.Inventory != 3 {
		t.Fatalf("unexpected product: %+v", p)
	}

	_, err = c.Get(context.Background(), 8)
	if !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("want *Error, got %T", err)
	}
	if apiErr.StatusCode != http.StatusNotFound || apiErr.Message != "product not found" {
		t.Fatalf("unexpected error details: %+v", apiErr)
	}
}

func TestClient_CreateSendsCents(t *testing.T) {
	fields := catalog.Fields{
		Title:       "Mug",
		PriceCents:  950,
		ImageURL:    "https://x/y.png",
		Category:    "Kitchen",
		Description: "A mug",
	}

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/products" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != contentTypeJSON {
			t.Errorf("want content type %q, got %q", contentTypeJSON, ct)
		}

		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		if body["priceCents"] != float64(950) {
			t.Errorf("want priceCents 950, got %v", body["priceCents"])
		}
		if body["imageUrl"] != "https://x/y.png" {
			t.Errorf("want imageUrl, got %v", body["imageUrl"])
		}
		writeJSON(t, w, http.StatusCreated, catalog.Product{ID: 3, Title: "Mug", PriceCents: 950, CreatedAt: "now"})
	})

	p, err := c.Create(context.Background(), fields)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID != 3 || p.CreatedAt != "now" {
		t.Fatalf("unexpected product: %+v", p)
	}
}

func TestClient_UpdateUsesPatch(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch || r.URL.Path != "/api/products/3" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var fields catalog.Fields
		if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
			t.Errorf("decode body: %v", err)
		}
		writeJSON(t, w, http.StatusOK, catalog.Product{ID: 3, Title: fields.Title, PriceCents: fields.PriceCents})
	})

	p, err := c.Update(context.Background(), 3, catalog.Fields{Title: "Big mug", PriceCents: 1200})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Title != "Big mug" || p.PriceCents != 1200 {
		t.Fatalf("unexpected product: %+v", p)
	}
}

func TestClient_Delete(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "no content", status: http.StatusNoContent},
		{name: "boolean body", status: http.StatusOK, body: "true"},
		{name: "not found", status: http.StatusNotFound, wantErr: catalog.ErrNotFound},
		{name: "server error", status: http.StatusInternalServerError, wantErr: catalog.ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodDelete || r.URL.Path != "/api/products/9" {
					t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
				}
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			err := c.Delete(context.Background(), 9)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("want %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestClient_ErrorClassification(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{name: "bad request", status: http.StatusBadRequest, wantErr: catalog.ErrRejected},
		{name: "unprocessable", status: http.StatusUnprocessableEntity, wantErr: catalog.ErrRejected},
		{name: "conflict", status: http.StatusConflict, wantErr: catalog.ErrRejected},
		{name: "not found", status: http.StatusNotFound, wantErr: catalog.ErrNotFound},
		{name: "bad gateway", status: http.StatusBadGateway, wantErr: catalog.ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			})

			_, err := c.Create(context.Background(), catalog.Fields{Title: "x"})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("want %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestClient_TransportFailureIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	baseURL := srv.URL
	srv.Close()

	_, err := New(baseURL).Get(context.Background(), 1)
	if !errors.Is(err, catalog.ErrUnavailable) {
		t.Fatalf("want ErrUnavailable, got %v", err)
	}
}

func TestClient_UndecodableBodyIsUnavailable(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "<html>proxy error</html>")
	})

	_, err := c.Get(context.Background(), 1)
	if !errors.Is(err, catalog.ErrUnavailable) {
		t.Fatalf("want ErrUnavailable, got %v", err)
	}
}

func TestClient_Timeout(t *testing.T) {
	release := make(chan struct{})
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}, WithTimeout(50*time.Millisecond))
	defer close(release)

	_, err := c.Get(context.Background(), 1)
	if !errors.Is(err, catalog.ErrUnavailable) {
		t.Fatalf("want ErrUnavailable, got %v", err)
	}
}

func TestClient_CanceledContext(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusOK, catalog.Page{})
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.List(ctx, catalog.Filter{"search": "x"})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
	if Outcome(err) != OutcomeCanceled {
		t.Fatalf("want outcome %q, got %q", OutcomeCanceled, Outcome(err))
	}
}

func TestClient_ForwardsRequestID(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get(requestid.Header); got != "req-123" {
			t.Errorf("want request id req-123, got %q", got)
		}
		writeJSON(t, w, http.StatusOK, catalog.Product{ID: 1})
	})

	ctx := requestid.With(context.Background(), "req-123")
	if _, err := c.Get(ctx, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClient_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/products/1" {
			writeJSON(t, w, http.StatusOK, catalog.Product{ID: 1})
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}, WithMetrics(metrics))

	_, _ = c.Get(context.Background(), 1)
	_, _ = c.Get(context.Background(), 2)
	_, _ = c.Get(context.Background(), 3)

	if got := testutil.ToFloat64(metrics.requests.WithLabelValues(opGet, OutcomeSuccess)); got != 1 {
		t.Fatalf("want 1 success, got %v", got)
	}
	if got := testutil.ToFloat64(metrics.requests.WithLabelValues(opGet, OutcomeNotFound)); got != 2 {
		t.Fatalf("want 2 not found, got %v", got)
	}
}

func TestClient_Ping(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.RawQuery != "limit=1" {
			t.Errorf("want limit=1, got %q", r.URL.RawQuery)
		}
		writeJSON(t, w, http.StatusOK, catalog.Page{})
	})

	if err := c.Ping(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
