package patient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func newTestHandler() (*Handler, *echo.Echo) {
	h := NewHandler(NewService(newMockRepo()))
	e := echo.New()
	return h, e
}

func TestHandler_Create(t *testing.T) {
	h, e := newTestHandler()
	body := `{"first_name":"Ana","last_name":"Horvat","birth_date":"1990-06-15T00:00:00Z","sex":"female","national_id":"12345678901"}`
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
	var got Patient
	json.Unmarshal(rec.Body.Bytes(), &got)
	if got.Age <= 0 {
		t.Errorf("expected age in response, got %d", got.Age)
	}
}

func TestHandler_Create_Invalid(t *testing.T) {
	h, e := newTestHandler()
	body := `{"first_name":"Ana","last_name":"Horvat","birth_date":"1990-06-15T00:00:00Z","sex":"female","national_id":"123"}`
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

func (failingRepo) Create(context.Context, *Patient) error {
	return errors.New(`ERROR: insert or update on table "patients" violates foreign key constraint (SQLSTATE 23503)`)
}

func TestHandler_Create_StoreErrorIsGeneric500(t *testing.T) {
	h := NewHandler(NewService(failingRepo{newMockRepo()}))
	e := echo.New()
	body := `{"first_name":"Ana","last_name":"Horvat","birth_date":"1990-06-15T00:00:00Z","sex":"female","national_id":"12345678901"}`
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

func TestHandler_Get_NotFound(t *testing.T) {
	h, e := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(uuid.New().String())
	err := h.Get(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %v", err)
	}
}

func TestHandler_List(t *testing.T) {
	h, e := newTestHandler()
	h.svc.Create(context.Background(), validPatient())
	req := httptest.NewRequest(http.MethodGet, "/?q=hor", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h.List(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestHandler_Delete(t *testing.T) {
	h, e := newTestHandler()
	p := validPatient()
	h.svc.Create(context.Background(), p)
	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(p.ID.String())
	if err := h.Delete(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rec.Code)
	}
}
