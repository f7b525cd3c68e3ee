package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

func runRequest(t *testing.T, mw echo.MiddlewareFunc, h echo.HandlerFunc) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return rec, mw(h)(c)
}

func TestRequestID_Generated(t *testing.T) {
	rec, err := runRequest(t, RequestID(), func(c echo.Context) error {
		rid, _ := c.Get("request_id").(string)
		if rid == "" {
			t.Error("expected request_id on context")
		}
		return c.NoContent(http.StatusOK)
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("expected X-Request-ID response header")
	}
}

func TestRequestID_HonorsIncoming(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "client-rid")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := RequestID()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Header().Get("X-Request-ID") != "client-rid" {
		t.Errorf("expected client-rid, got %q", rec.Header().Get("X-Request-ID"))
	}
}

func TestRecovery_ConvertsPanic(t *testing.T) {
	logger := zerolog.New(io.Discard)
	_, err := runRequest(t, Recovery(logger), func(c echo.Context) error {
		panic("boom")
	})
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 HTTPError, got %v", err)
	}
}

func TestLogger_PassesThrough(t *testing.T) {
	logger := zerolog.New(io.Discard)
	_, err := runRequest(t, Logger(logger), func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLogger_PropagatesError(t *testing.T) {
	logger := zerolog.New(io.Discard)
	want := echo.NewHTTPError(http.StatusBadRequest, "bad")
	_, err := runRequest(t, Logger(logger), func(c echo.Context) error {
		return want
	})
	if err != want {
		t.Fatalf("expected handler error back, got %v", err)
	}
}
