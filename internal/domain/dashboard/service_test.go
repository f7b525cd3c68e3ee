package dashboard

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type mockRepo struct {
	stats       *Stats
	findings    []*RecentFinding
	recentLimit int
}

func (m *mockRepo) Stats(_ context.Context, now time.Time) (*Stats, error) {
	return m.stats, nil
}
func (m *mockRepo) RecentFindings(_ context.Context, limit int) ([]*RecentFinding, error) {
	m.recentLimit = limit
	if limit < len(m.findings) {
		return m.findings[:limit], nil
	}
	return m.findings, nil
}

func TestStats(t *testing.T) {
	repo := &mockRepo{stats: &Stats{Patients: 3, Doctors: 2, Findings: 7, AppointmentsToday: 1}}
	svc := NewService(repo)
	got, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Patients != 3 || got.AppointmentsToday != 1 {
		t.Errorf("unexpected stats: %+v", got)
	}
}

func TestRecentFindings_CappedAtFive(t *testing.T) {
	repo := &mockRepo{}
	for i := 0; i < 8; i++ {
		repo.findings = append(repo.findings, &RecentFinding{ID: uuid.New()})
	}
	svc := NewService(repo)
	got, err := svc.RecentFindings(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.recentLimit != 5 {
		t.Errorf("expected limit 5, got %d", repo.recentLimit)
	}
	if len(got) != 5 {
		t.Errorf("expected 5 findings, got %d", len(got))
	}
}

func TestHandler_Stats(t *testing.T) {
	repo := &mockRepo{stats: &Stats{Patients: 1}}
	h := NewHandler(NewService(repo))
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h.Stats(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}
