package animal

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
)

// -- Mock Repository --

type mockRepo struct {
	store map[uuid.UUID]*Animal
}

func newMockRepo() *mockRepo {
	return &mockRepo{store: make(map[uuid.UUID]*Animal)}
}

func (m *mockRepo) Create(_ context.Context, a *Animal) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	m.store[a.ID] = a
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*Animal, error) {
	a, ok := m.store[id]
	if !ok {
		return nil, fmt.Errorf("not found")
	}
	return a, nil
}

func (m *mockRepo) ListByOwner(_ context.Context, userID uuid.UUID, limit, offset int) ([]*Animal, int, error) {
	var r []*Animal
	for _, a := range m.store {
		if a.UserID == userID {
			r = append(r, a)
		}
	}
	return r, len(r), nil
}

func (m *mockRepo) Update(_ context.Context, a *Animal) error {
	if _, ok := m.store[a.ID]; !ok {
		return fmt.Errorf("not found")
	}
	m.store[a.ID] = a
	return nil
}

func (m *mockRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.store, id)
	return nil
}

// -- Service Tests --

func TestCreateAnimal_Success(t *testing.T) {
	svc := NewService(newMockRepo())
	a := &Animal{UserID: uuid.New(), Name: "Daisy", Type: "Cow"}
	if err := svc.CreateAnimal(context.Background(), a); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.ID == uuid.Nil {
		t.Error("expected ID to be set")
	}
}

func TestCreateAnimal_MissingFields(t *testing.T) {
	svc := NewService(newMockRepo())
	cases := []*Animal{
		{Name: "Daisy", Type: "Cow"},
		{UserID: uuid.New(), Type: "Cow"},
		{UserID: uuid.New(), Name: "Daisy"},
	}
	for i, a := range cases {
		if err := svc.CreateAnimal(context.Background(), a); err == nil {
			t.Errorf("case %d: expected error", i)
		}
	}
}

func TestCreateAnimal_UnsupportedType(t *testing.T) {
	svc := NewService(newMockRepo())
	a := &Animal{UserID: uuid.New(), Name: "Nessie", Type: "Dragon"}
	if err := svc.CreateAnimal(context.Background(), a); err == nil {
		t.Fatal("expected error for unsupported type")
	}
}

func TestGetOwnedAnimal_OwnershipEnforced(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	owner := uuid.New()
	a := &Animal{UserID: owner, Name: "Rex", Type: "Dog"}
	repo.Create(context.Background(), a)

	if _, err := svc.GetOwnedAnimal(context.Background(), owner, a.ID); err != nil {
		t.Fatalf("owner should see their animal: %v", err)
	}
	if _, err := svc.GetOwnedAnimal(context.Background(), uuid.New(), a.ID); err == nil {
		t.Fatal("strangers must not see the animal")
	}
}

func TestUpdateAnimal_CannotReassignOwner(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	owner := uuid.New()
	a := &Animal{UserID: owner, Name: "Rex", Type: "Dog"}
	repo.Create(context.Background(), a)

	upd := &Animal{ID: a.ID, UserID: uuid.New(), Name: "Rexy", Type: "Dog"}
	if err := svc.UpdateAnimal(context.Background(), owner, upd); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.store[a.ID].UserID != owner {
		t.Error("updates must not change ownership")
	}
}

func TestDeleteAnimal_OwnershipEnforced(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	owner := uuid.New()
	a := &Animal{UserID: owner, Name: "Rex", Type: "Dog"}
	repo.Create(context.Background(), a)

	if err := svc.DeleteAnimal(context.Background(), uuid.New(), a.ID); err == nil {
		t.Fatal("strangers must not delete the animal")
	}
	if err := svc.DeleteAnimal(context.Background(), owner, a.ID); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if _, ok := repo.store[a.ID]; ok {
		t.Error("animal should be gone")
	}
}

func TestListAnimals_ScopedToOwner(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	alice, bob := uuid.New(), uuid.New()
	repo.Create(context.Background(), &Animal{UserID: alice, Name: "A1", Type: "Cow"})
	repo.Create(context.Background(), &Animal{UserID: alice, Name: "A2", Type: "Goat"})
	repo.Create(context.Background(), &Animal{UserID: bob, Name: "B1", Type: "Dog"})

	items, total, err := svc.ListAnimals(context.Background(), alice, 20, 0)
	if err != nil {
		t.Fatal(err)
	}
	if total != 2 || len(items) != 2 {
		t.Errorf("expected 2 animals for alice, got %d", len(items))
	}
}
