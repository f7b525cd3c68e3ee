package patient

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
)

type mockRepo struct {
	store        map[uuid.UUID]*Patient
	searchParams map[string]string
	createCalls  int
}

func newMockRepo() *mockRepo { return &mockRepo{store: make(map[uuid.UUID]*Patient)} }

func (m *mockRepo) Create(_ context.Context, p *Patient) error {
	m.createCalls++
	p.ID = uuid.New()
	m.store[p.ID] = p
	return nil
}
func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*Patient, error) {
	p, ok := m.store[id]
	if !ok {
		return nil, ErrNotFound
	}
	return p, nil
}
func (m *mockRepo) Update(_ context.Context, p *Patient) error {
	if _, ok := m.store[p.ID]; !ok {
		return ErrNotFound
	}
	m.store[p.ID] = p
	return nil
}
func (m *mockRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.store[id]; !ok {
		return ErrNotFound
	}
	delete(m.store, id)
	return nil
}
func (m *mockRepo) Search(_ context.Context, params map[string]string, limit, offset int) ([]*Patient, int, error) {
	m.searchParams = params
	var r []*Patient
	for _, p := range m.store {
		r = append(r, p)
	}
	return r, len(r), nil
}

func str(s string) *string { return &s }

func validPatient() *Patient {
	return &Patient{
		FirstName:  "Ana",
		LastName:   "Horvat",
		BirthDate:  time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC),
		Sex:        "female",
		NationalID: "12345678901",
	}
}

func TestCreate_Success(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	p := validPatient()
	if err := svc.Create(context.Background(), p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID == uuid.Nil {
		t.Error("expected id to be assigned")
	}
	if p.Age <= 0 {
		t.Errorf("expected derived age, got %d", p.Age)
	}
}

func TestCreate_MissingNames(t *testing.T) {
	svc := NewService(newMockRepo())
	p := validPatient()
	p.FirstName = ""
	if err := svc.Create(context.Background(), p); err == nil {
		t.Fatal("expected error for missing first_name")
	}
	p = validPatient()
	p.LastName = ""
	if err := svc.Create(context.Background(), p); err == nil {
		t.Fatal("expected error for missing last_name")
	}
}

func TestCreate_InvalidSex(t *testing.T) {
	svc := NewService(newMockRepo())
	p := validPatient()
	p.Sex = "other"
	if err := svc.Create(context.Background(), p); err == nil {
		t.Fatal("expected error")
	}
}

func TestCreate_NationalIDLengthOnly(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)

	p := validPatient()
	p.NationalID = "1234567890"
	if err := svc.Create(context.Background(), p); err == nil {
		t.Fatal("expected error for 10 characters")
	}
	if repo.createCalls != 0 {
		t.Errorf("expected no store call on validation failure, got %d", repo.createCalls)
	}

	p = validPatient()
	p.NationalID = "123456789012"
	if err := svc.Create(context.Background(), p); err == nil {
		t.Fatal("expected error for 12 characters")
	}

	// Non-digit content of length 11 passes; only length is checked.
	p = validPatient()
	p.NationalID = "abcdefghijk"
	if err := svc.Create(context.Background(), p); err != nil {
		t.Fatalf("expected length-11 value to pass, got %v", err)
	}
}

func TestCreate_InvalidBloodType(t *testing.T) {
	svc := NewService(newMockRepo())
	p := validPatient()
	p.BloodType = str("C+")
	if err := svc.Create(context.Background(), p); err == nil {
		t.Fatal("expected error")
	}
}

func TestCreate_NormalizesEmptyOptionals(t *testing.T) {
	svc := NewService(newMockRepo())
	p := validPatient()
	p.Address = str("")
	p.Phone = str("")
	p.Email = str("ana@example.com")
	if err := svc.Create(context.Background(), p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Address != nil || p.Phone != nil {
		t.Error("expected empty optionals to normalize to nil")
	}
	if p.Email == nil || *p.Email != "ana@example.com" {
		t.Error("expected non-empty email to survive")
	}
}

func TestUpdate_NotFound(t *testing.T) {
	svc := NewService(newMockRepo())
	p := validPatient()
	p.ID = uuid.New()
	if err := svc.Update(context.Background(), p); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGet_DerivesAge(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	p := validPatient()
	svc.Create(context.Background(), p)

	got, err := svc.Get(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Age <= 0 {
		t.Errorf("expected derived age, got %d", got.Age)
	}
}

func TestSearch_PassesQuery(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	svc.Create(context.Background(), validPatient())

	_, total, err := svc.Search(context.Background(), map[string]string{"q": "hor"}, 20, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 1 {
		t.Errorf("expected 1 result, got %d", total)
	}
	if repo.searchParams["q"] != "hor" {
		t.Errorf("expected q criterion to reach the repository, got %v", repo.searchParams)
	}
}
