package client

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"storefront/internal/catalog"
)

const maxErrorBody = 4 << 10

// Error is returned for every failed catalog call. Err unwraps to one of
// catalog.ErrNotFound, catalog.ErrRejected or catalog.ErrUnavailable.
type Error struct {
	Op         string
	StatusCode int
	Message    string
	Err        error
}

func (e *Error) Error() string {
	switch {
	case e.StatusCode != 0 && e.Message != "":
		return fmt.Sprintf("%s: status %d: %s", e.Op, e.StatusCode, e.Message)
	case e.StatusCode != 0:
		return fmt.Sprintf("%s: status %d: %v", e.Op, e.StatusCode, e.Err)
	default:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

func classify(status int) error {
	switch {
	case status == http.StatusNotFound:
		return catalog.ErrNotFound
	case status >= http.StatusBadRequest && status < http.StatusInternalServerError:
		return catalog.ErrRejected
	default:
		return catalog.ErrUnavailable
	}
}

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func readErrorMessage(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, maxErrorBody))
	if err != nil || len(raw) == 0 {
		return ""
	}

	var body errorBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	if body.Error != "" {
		return strings.TrimSpace(body.Error)
	}
	return strings.TrimSpace(body.Message)
}
