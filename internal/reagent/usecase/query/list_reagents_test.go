package query

import (
	"context"
	"errors"
	"testing"

	"github.com/labflow/reagent-inventory/internal/reagent/domain"
)

// Mock ReagentRepository
type mockRepo struct {
	reagents []domain.Reagent
	err      error
}

func (m *mockRepo) Create(ctx context.Context, r *domain.Reagent) error { return nil }
func (m *mockRepo) Update(ctx context.Context, r *domain.Reagent) error { return nil }
func (m *mockRepo) Delete(ctx context.Context, id uint) error           { return nil }
func (m *mockRepo) FindAll(ctx context.Context) ([]domain.Reagent, error) {
	return m.reagents, m.err
}
func (m *mockRepo) FindByID(ctx context.Context, id uint) (*domain.Reagent, error) {
	for i := range m.reagents {
		if m.reagents[i].ID == id {
			return &m.reagents[i], nil
		}
	}
	return nil, errors.New("record not found")
}

func TestListReagents_AppliesSearchAndTab(t *testing.T) {
	repo := &mockRepo{reagents: []domain.Reagent{
		{ID: 2, Name: "PBS", Brand: "Gibco", Remaining: 100, Status: domain.StatusStock},
		{ID: 1, Name: "TRIzol", Brand: "Invitrogen", Remaining: 60, Status: domain.StatusOK},
	}}
	h := NewListReagentsHandler(repo)

	all, err := h.Handle(context.Background(), ListReagentsQuery{})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 reagents, got %d", len(all))
	}
	if all[0].ID != 2 {
		t.Error("repository order must be preserved")
	}

	stock, err := h.Handle(context.Background(), ListReagentsQuery{Tab: domain.TabStock})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if len(stock) != 1 || stock[0].Name != "PBS" {
		t.Errorf("expected only PBS on the stock tab, got %+v", stock)
	}

	searched, err := h.Handle(context.Background(), ListReagentsQuery{Search: "invitrogen", Tab: domain.TabAll})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if len(searched) != 1 || searched[0].Name != "TRIzol" {
		t.Errorf("expected brand search to match TRIzol, got %+v", searched)
	}
}

func TestListReagents_StoreError(t *testing.T) {
	repo := &mockRepo{err: errors.New("connection refused")}
	h := NewListReagentsHandler(repo)

	if _, err := h.Handle(context.Background(), ListReagentsQuery{}); err == nil {
		t.Fatal("expected store error to propagate")
	}
}

func TestGetReagent(t *testing.T) {
	repo := &mockRepo{reagents: []domain.Reagent{{ID: 7, Name: "PBS"}}}
	h := NewGetReagentHandler(repo)

	r, err := h.Handle(context.Background(), GetReagentQuery{ID: 7})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if r.Name != "PBS" {
		t.Errorf("unexpected reagent %+v", r)
	}

	if _, err := h.Handle(context.Background(), GetReagentQuery{ID: 0}); err == nil {
		t.Error("expected error for zero id")
	}
	if _, err := h.Handle(context.Background(), GetReagentQuery{ID: 42}); err == nil {
		t.Error("expected error for missing record")
	}
}
