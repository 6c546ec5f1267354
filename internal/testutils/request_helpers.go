package testutils

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"

	"github.com/maryanafarm/storefront/internal/api/middleware"
)

// CreateTestRequest builds a request carrying a discard logger and an
// optional cart cookie, mirroring what the middleware chain provides.
func CreateTestRequest(method, target string, body io.Reader, cartID string, pathParams map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, body)

	for key, value := range pathParams {
		req.SetPathValue(key, value)
	}

	if cartID != "" {
		req.AddCookie(&http.Cookie{Name: "farm_cart_id", Value: cartID})
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.WithValue(req.Context(), middleware.LoggerKey, logger)

	return req.WithContext(ctx)
}
