package query

import (
	"context"
	"fmt"

	"github.com/labflow/reagent-inventory/internal/reagent/domain"
)

// ListReagentsQuery represents the query to list reagents. Search and tab
// compose with logical AND; both default to "match everything".
type ListReagentsQuery struct {
	Search string
	Tab    domain.Tab
}

// ListReagentsHandler handles the list reagents query
type ListReagentsHandler struct {
	repo domain.ReagentRepository
}

// NewListReagentsHandler creates a new list reagents handler
func NewListReagentsHandler(repo domain.ReagentRepository) *ListReagentsHandler {
	return &ListReagentsHandler{repo: repo}
}

// Handle loads the full collection, newest first, and applies the search
// and tab predicates in memory.
func (h *ListReagentsHandler) Handle(ctx context.Context, q ListReagentsQuery) ([]domain.Reagent, error) {
	if q.Tab == "" {
		q.Tab = domain.TabAll
	}

	reagents, err := h.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list reagents: %w", err)
	}

	return domain.Filter(reagents, q.Search, q.Tab), nil
}
