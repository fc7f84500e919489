package command

import (
	"context"
	"fmt"

	"github.com/labflow/reagent-inventory/internal/reagent/domain"
)

// DeleteReagentCommand represents the command to delete a reagent
type DeleteReagentCommand struct {
	ID uint
}

// DeleteReagentHandler handles the delete reagent command
type DeleteReagentHandler struct {
	repo domain.ReagentRepository
}

// NewDeleteReagentHandler creates a new delete reagent handler
func NewDeleteReagentHandler(repo domain.ReagentRepository) *DeleteReagentHandler {
	return &DeleteReagentHandler{repo: repo}
}

// Handle executes the delete reagent command
func (h *DeleteReagentHandler) Handle(ctx context.Context, cmd DeleteReagentCommand) error {
	if cmd.ID == 0 {
		return fmt.Errorf("invalid reagent id")
	}

	if _, err := h.repo.FindByID(ctx, cmd.ID); err != nil {
		return fmt.Errorf("reagent not found: %w", err)
	}

	if err := h.repo.Delete(ctx, cmd.ID); err != nil {
		return fmt.Errorf("failed to delete reagent: %w", err)
	}

	return nil
}
