package query

import (
	"context"
	"fmt"

	"github.com/labflow/reagent-inventory/internal/reagent/domain"
)

// GetReagentQuery represents the query to get a single reagent
type GetReagentQuery struct {
	ID uint
}

// GetReagentHandler handles the get reagent query
type GetReagentHandler struct {
	repo domain.ReagentRepository
}

// NewGetReagentHandler creates a new get reagent handler
func NewGetReagentHandler(repo domain.ReagentRepository) *GetReagentHandler {
	return &GetReagentHandler{repo: repo}
}

// Handle executes the get reagent query
func (h *GetReagentHandler) Handle(ctx context.Context, q GetReagentQuery) (*domain.Reagent, error) {
	if q.ID == 0 {
		return nil, fmt.Errorf("invalid reagent id")
	}

	reagent, err := h.repo.FindByID(ctx, q.ID)
	if err != nil {
		return nil, fmt.Errorf("reagent not found: %w", err)
	}

	return reagent, nil
}
