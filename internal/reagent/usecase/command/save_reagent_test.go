package command

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/labflow/reagent-inventory/internal/reagent/domain"
)

// Mock ReagentRepository
type mockRepo struct {
	reagents    map[uint]*domain.Reagent
	nextID      uint
	createCalls int
	updateCalls int
	failWrites  bool
}

func newMockRepo() *mockRepo {
	return &mockRepo{reagents: make(map[uint]*domain.Reagent), nextID: 1}
}

func (m *mockRepo) Create(ctx context.Context, r *domain.Reagent) error {
	m.createCalls++
	if m.failWrites {
		return errors.New("connection refused")
	}
	r.ID = m.nextID
	m.nextID++
	stored := *r
	m.reagents[r.ID] = &stored
	return nil
}

func (m *mockRepo) FindByID(ctx context.Context, id uint) (*domain.Reagent, error) {
	r, ok := m.reagents[id]
	if !ok {
		return nil, fmt.Errorf("record not found")
	}
	copied := *r
	return &copied, nil
}

func (m *mockRepo) FindAll(ctx context.Context) ([]domain.Reagent, error) {
	out := make([]domain.Reagent, 0, len(m.reagents))
	for _, r := range m.reagents {
		out = append(out, *r)
	}
	return out, nil
}

func (m *mockRepo) Update(ctx context.Context, r *domain.Reagent) error {
	m.updateCalls++
	if m.failWrites {
		return errors.New("connection refused")
	}
	stored := *r
	m.reagents[r.ID] = &stored
	return nil
}

func (m *mockRepo) Delete(ctx context.Context, id uint) error {
	delete(m.reagents, id)
	return nil
}

// Mock EventPublisher
type mockPublisher struct {
	savedEvents int
	lowEvents   int
}

func (m *mockPublisher) PublishReagentSaved(ctx context.Context, r *domain.Reagent, created bool) error {
	m.savedEvents++
	return nil
}

func (m *mockPublisher) PublishReagentLow(ctx context.Context, r *domain.Reagent) error {
	m.lowEvents++
	return nil
}

func TestSaveReagent_Create(t *testing.T) {
	repo := newMockRepo()
	h := NewSaveReagentHandler(repo, nil)

	reagent, err := h.Handle(context.Background(), SaveReagentCommand{
		Draft: domain.Draft{Name: "TRIzol", IsStock: false, Remaining: 50},
	})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}

	if reagent.ID == 0 {
		t.Error("expected store-assigned id")
	}
	if reagent.Status != domain.StatusOK {
		t.Errorf("expected status ok, got %q", reagent.Status)
	}
}

func TestSaveReagent_EmptyNameMakesNoStoreCall(t *testing.T) {
	repo := newMockRepo()
	h := NewSaveReagentHandler(repo, nil)

	_, err := h.Handle(context.Background(), SaveReagentCommand{
		Draft: domain.Draft{Name: "", Remaining: 50},
	})
	if !errors.Is(err, domain.ErrNameRequired) {
		t.Fatalf("expected ErrNameRequired, got %v", err)
	}

	if repo.createCalls != 0 || repo.updateCalls != 0 {
		t.Errorf("validation failure must not reach the store: %d creates, %d updates",
			repo.createCalls, repo.updateCalls)
	}
}

func TestSaveReagent_Update(t *testing.T) {
	repo := newMockRepo()
	seed := domain.Reagent{Name: "PBS", Remaining: 100, Status: domain.StatusStock}
	if err := repo.Create(context.Background(), &seed); err != nil {
		t.Fatal(err)
	}

	h := NewSaveReagentHandler(repo, nil)
	id := seed.ID

	updated, err := h.Handle(context.Background(), SaveReagentCommand{
		Draft:     domain.Draft{Name: "PBS", IsStock: false, Remaining: 10},
		EditingID: &id,
	})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}

	if updated.Status != domain.StatusLow {
		t.Errorf("expected status low, got %q", updated.Status)
	}
	if updated.Category() != domain.TabOngoing {
		t.Errorf("expected ongoing category, got %s", updated.Category())
	}
}

func TestSaveReagent_UpdateMissingRecord(t *testing.T) {
	repo := newMockRepo()
	h := NewSaveReagentHandler(repo, nil)

	id := uint(99)
	_, err := h.Handle(context.Background(), SaveReagentCommand{
		Draft:     domain.Draft{Name: "PBS", Remaining: 50},
		EditingID: &id,
	})
	if err == nil {
		t.Fatal("expected error for missing record")
	}
	if repo.updateCalls != 0 {
		t.Errorf("missing record must not be written: %d updates", repo.updateCalls)
	}
}

func TestSaveReagent_StoreFailureSurfaced(t *testing.T) {
	repo := newMockRepo()
	repo.failWrites = true
	h := NewSaveReagentHandler(repo, nil)

	_, err := h.Handle(context.Background(), SaveReagentCommand{
		Draft: domain.Draft{Name: "Ethanol", Remaining: 50},
	})
	if err == nil {
		t.Fatal("expected store failure to propagate")
	}
}

func TestSaveReagent_PublishesLowStockEvent(t *testing.T) {
	repo := newMockRepo()
	pub := &mockPublisher{}
	h := NewSaveReagentHandler(repo, pub)

	_, err := h.Handle(context.Background(), SaveReagentCommand{
		Draft: domain.Draft{Name: "Ethanol", IsStock: false, Remaining: 5},
	})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}

	if pub.savedEvents != 1 {
		t.Errorf("expected 1 saved event, got %d", pub.savedEvents)
	}
	if pub.lowEvents != 1 {
		t.Errorf("expected 1 low stock event, got %d", pub.lowEvents)
	}
}

func TestDeleteReagent(t *testing.T) {
	repo := newMockRepo()
	seed := domain.Reagent{Name: "PBS", Remaining: 100}
	if err := repo.Create(context.Background(), &seed); err != nil {
		t.Fatal(err)
	}

	h := NewDeleteReagentHandler(repo)
	if err := h.Handle(context.Background(), DeleteReagentCommand{ID: seed.ID}); err != nil {
		t.Fatalf("expected success, got %v", err)
	}

	if err := h.Handle(context.Background(), DeleteReagentCommand{ID: seed.ID}); err == nil {
		t.Error("expected error deleting missing record")
	}
}
