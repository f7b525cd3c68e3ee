package appointment

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
)

type mockRepo struct {
	rows []*Row
}

func (m *mockRepo) Search(_ context.Context, params map[string]string, limit, offset int) ([]*Row, int, error) {
	var r []*Row
	for _, a := range m.rows {
		if st := params["status"]; st != "" && a.Status != st {
			continue
		}
		r = append(r, a)
	}
	sort.Slice(r, func(i, j int) bool { return r[i].Datetime.Before(r[j].Datetime) })
	return r, len(r), nil
}
func (m *mockRepo) ListToday(_ context.Context, now time.Time) ([]*Row, error) {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)
	var r []*Row
	for _, a := range m.rows {
		if !a.Datetime.Before(dayStart) && a.Datetime.Before(dayEnd) {
			r = append(r, a)
		}
	}
	return r, nil
}
func (m *mockRepo) ListUpcomingByPatient(_ context.Context, pid uuid.UUID, now time.Time) ([]*Row, error) {
	var r []*Row
	for _, a := range m.rows {
		if a.PatientID == pid && !a.Datetime.Before(now) && a.Status == "scheduled" {
			r = append(r, a)
		}
	}
	return r, nil
}
func (m *mockRepo) ListUpcomingByDoctor(_ context.Context, did uuid.UUID, now time.Time) ([]*Row, error) {
	var r []*Row
	for _, a := range m.rows {
		if a.DoctorID == did && !a.Datetime.Before(now) && a.Status == "scheduled" {
			r = append(r, a)
		}
	}
	return r, nil
}

func appt(dt time.Time, status string) *Row {
	return &Row{Appointment: Appointment{
		ID: uuid.New(), PatientID: uuid.New(), DoctorID: uuid.New(),
		Datetime: dt, Status: status,
	}}
}

func fixedNow() time.Time {
	return time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
}

func newTestService(rows ...*Row) (*Service, *mockRepo) {
	repo := &mockRepo{rows: rows}
	svc := NewService(repo)
	svc.now = fixedNow
	return svc, repo
}

func TestSearch_InvalidStatus(t *testing.T) {
	svc, _ := newTestService()
	if _, _, err := svc.Search(context.Background(), map[string]string{"status": "pending"}, 20, 0); err == nil {
		t.Fatal("expected error")
	}
}

func TestSearch_StatusFilter(t *testing.T) {
	svc, _ := newTestService(
		appt(fixedNow(), "scheduled"),
		appt(fixedNow().Add(time.Hour), "cancelled"),
	)
	items, total, err := svc.Search(context.Background(), map[string]string{"status": "scheduled"}, 20, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 1 || items[0].Status != "scheduled" {
		t.Errorf("expected single scheduled match, got %d", total)
	}
}

func TestListToday(t *testing.T) {
	svc, _ := newTestService(
		appt(fixedNow().Add(2*time.Hour), "scheduled"),
		appt(fixedNow().AddDate(0, 0, 1), "scheduled"),
		appt(fixedNow().AddDate(0, 0, -1), "completed"),
	)
	items, err := svc.ListToday(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Errorf("expected 1 appointment today, got %d", len(items))
	}
}

func TestListUpcomingByPatient(t *testing.T) {
	upcoming := appt(fixedNow().Add(time.Hour), "scheduled")
	past := appt(fixedNow().Add(-time.Hour), "scheduled")
	past.PatientID = upcoming.PatientID
	cancelled := appt(fixedNow().Add(time.Hour), "cancelled")
	cancelled.PatientID = upcoming.PatientID

	svc, _ := newTestService(upcoming, past, cancelled)
	items, err := svc.ListUpcomingByPatient(context.Background(), upcoming.PatientID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 || items[0].ID != upcoming.ID {
		t.Errorf("expected only the future scheduled appointment, got %d", len(items))
	}
}
