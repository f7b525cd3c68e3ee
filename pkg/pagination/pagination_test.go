package pagination

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func ctxWithQuery(query string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?"+query, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func TestFromContext_Defaults(t *testing.T) {
	p := FromContext(ctxWithQuery(""))
	if p.Limit != DefaultLimit {
		t.Errorf("expected limit %d, got %d", DefaultLimit, p.Limit)
	}
	if p.Offset != 0 {
		t.Errorf("expected offset 0, got %d", p.Offset)
	}
}

func TestFromContext_Explicit(t *testing.T) {
	p := FromContext(ctxWithQuery("limit=50&offset=10"))
	if p.Limit != 50 || p.Offset != 10 {
		t.Errorf("expected 50/10, got %d/%d", p.Limit, p.Offset)
	}
}

func TestFromContext_ClampsLimit(t *testing.T) {
	p := FromContext(ctxWithQuery("limit=9999"))
	if p.Limit != MaxLimit {
		t.Errorf("expected limit clamped to %d, got %d", MaxLimit, p.Limit)
	}
}

func TestFromContext_NegativeOffset(t *testing.T) {
	p := FromContext(ctxWithQuery("offset=-5"))
	if p.Offset != 0 {
		t.Errorf("expected offset 0, got %d", p.Offset)
	}
}

func TestNewResponse_HasMore(t *testing.T) {
	r := NewResponse(nil, 100, 20, 0)
	if !r.HasMore {
		t.Error("expected has_more true")
	}
	r = NewResponse(nil, 15, 20, 0)
	if r.HasMore {
		t.Error("expected has_more false")
	}
}

func TestNewResponse_PageOffsets(t *testing.T) {
	r := NewResponse(nil, 100, 20, 20)
	if r.NextOffset == nil || *r.NextOffset != 40 {
		t.Errorf("expected next_offset 40, got %v", r.NextOffset)
	}
	if r.PreviousOffset == nil || *r.PreviousOffset != 0 {
		t.Errorf("expected previous_offset 0, got %v", r.PreviousOffset)
	}

	first := NewResponse(nil, 100, 20, 0)
	if first.PreviousOffset != nil {
		t.Error("expected no previous_offset on the first page")
	}
	last := NewResponse(nil, 30, 20, 20)
	if last.NextOffset != nil {
		t.Error("expected no next_offset on the last page")
	}
}

func TestOffsets(t *testing.T) {
	p := Params{Limit: 20, Offset: 20}
	if p.NextOffset() != 40 {
		t.Errorf("expected next 40, got %d", p.NextOffset())
	}
	if p.PreviousOffset() != 0 {
		t.Errorf("expected previous 0, got %d", p.PreviousOffset())
	}
	if !p.HasPrevious() {
		t.Error("expected has previous")
	}
	if p.HasNext(30) {
		t.Error("expected no next page at total 30")
	}
}
