package vet

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
)

type mockRepo struct {
	vets []*Veterinarian
}

func (m *mockRepo) Create(_ context.Context, v *Veterinarian) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	m.vets = append(m.vets, v)
	return nil
}

func (m *mockRepo) List(_ context.Context, limit, offset int) ([]*Veterinarian, int, error) {
	return m.vets, len(m.vets), nil
}

func (m *mockRepo) SearchByLocation(_ context.Context, location string, limit, offset int) ([]*Veterinarian, int, error) {
	var r []*Veterinarian
	for _, v := range m.vets {
		if strings.Contains(strings.ToLower(v.Location), strings.ToLower(location)) {
			r = append(r, v)
		}
	}
	return r, len(r), nil
}

func TestCreateVet_Success(t *testing.T) {
	svc := NewService(&mockRepo{})
	v := &Veterinarian{Name: "Dr. Rao", Location: "Pune", Rating: 4.5}
	if err := svc.CreateVet(context.Background(), v); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.ID == uuid.Nil {
		t.Error("expected ID to be set")
	}
}

func TestCreateVet_Validation(t *testing.T) {
	svc := NewService(&mockRepo{})
	if err := svc.CreateVet(context.Background(), &Veterinarian{Location: "Pune"}); err == nil {
		t.Error("expected error without name")
	}
	if err := svc.CreateVet(context.Background(), &Veterinarian{Name: "Dr. Rao"}); err == nil {
		t.Error("expected error without location")
	}
	if err := svc.CreateVet(context.Background(), &Veterinarian{Name: "Dr. Rao", Location: "Pune", Rating: 6}); err == nil {
		t.Error("expected error for rating above 5")
	}
}

func TestSearchVets_LocationFilter(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo)
	repo.Create(context.Background(), &Veterinarian{Name: "A", Location: "Pune West"})
	repo.Create(context.Background(), &Veterinarian{Name: "B", Location: "Nagpur"})

	items, total, err := svc.SearchVets(context.Background(), "pune", 20, 0)
	if err != nil {
		t.Fatal(err)
	}
	if total != 1 || items[0].Name != "A" {
		t.Errorf("unexpected result: %v", items)
	}

	items, total, err = svc.SearchVets(context.Background(), "", 20, 0)
	if err != nil {
		t.Fatal(err)
	}
	if total != 2 {
		t.Errorf("expected all vets without a filter, got %d", total)
	}
	_ = items
}
