package doctor

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func newTestHandler() (*Handler, *echo.Echo) {
	h := NewHandler(NewService(newMockRepo()))
	e := echo.New()
	return h, e
}

func TestHandler_Create(t *testing.T) {
	h, e := newTestHandler()
	body := `{"first_name":"Ivan","last_name":"Kovac","specialty":"Cardiology"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h.Create(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}
}

func TestHandler_Create_InvalidSpecialty(t *testing.T) {
	h, e := newTestHandler()
	body := `{"first_name":"Ivan","last_name":"Kovac","specialty":"Phrenology"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	err := h.Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

type failingRepo struct{ Repository }

func (failingRepo) Create(context.Context, *Doctor) error {
	return errors.New(`ERROR: duplicate key value violates unique constraint (SQLSTATE 23505)`)
}

func TestHandler_Create_StoreErrorIsGeneric500(t *testing.T) {
	h := NewHandler(NewService(failingRepo{newMockRepo()}))
	e := echo.New()
	body := `{"first_name":"Ivan","last_name":"Kovac","specialty":"Cardiology"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	err := h.Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 for store failure, got %v", err)
	}
	if msg, _ := he.Message.(string); strings.Contains(msg, "SQLSTATE") {
		t.Errorf("driver error leaked to the client: %q", msg)
	}
}
