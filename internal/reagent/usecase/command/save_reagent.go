package command

import (
	"context"
	"fmt"

	"github.com/labflow/reagent-inventory/internal/reagent/domain"
	"github.com/labflow/reagent-inventory/pkg/logger"
)

// EventPublisher publishes inventory change events. Publishing is
// best-effort: a broker failure never fails the save.
type EventPublisher interface {
	PublishReagentSaved(ctx context.Context, reagent *domain.Reagent, created bool) error
	PublishReagentLow(ctx context.Context, reagent *domain.Reagent) error
}

// SaveReagentCommand represents a submitted edit draft. EditingID is nil
// for a new record and set for an update of an existing one.
type SaveReagentCommand struct {
	Draft     domain.Draft
	EditingID *uint
}

// SaveReagentHandler handles the save reagent command
type SaveReagentHandler struct {
	repo      domain.ReagentRepository
	publisher EventPublisher
}

// NewSaveReagentHandler creates a new save reagent handler. The publisher
// may be nil when no broker is configured.
func NewSaveReagentHandler(repo domain.ReagentRepository, publisher EventPublisher) *SaveReagentHandler {
	return &SaveReagentHandler{repo: repo, publisher: publisher}
}

// Handle validates the draft, maps it to a store payload and inserts or
// updates. Validation failures happen before any store call so a rejected
// draft commits nothing.
func (h *SaveReagentHandler) Handle(ctx context.Context, cmd SaveReagentCommand) (*domain.Reagent, error) {
	if err := cmd.Draft.Validate(); err != nil {
		return nil, err
	}

	payload := cmd.Draft.ToReagent()

	if cmd.EditingID != nil {
		existing, err := h.repo.FindByID(ctx, *cmd.EditingID)
		if err != nil {
			return nil, fmt.Errorf("reagent not found: %w", err)
		}

		existing.Name = payload.Name
		existing.Brand = payload.Brand
		existing.Location = payload.Location
		existing.Remaining = payload.Remaining
		existing.Status = payload.Status

		if err := h.repo.Update(ctx, existing); err != nil {
			return nil, fmt.Errorf("failed to update reagent: %w", err)
		}

		h.publishEvents(ctx, existing, false)
		return existing, nil
	}

	if err := h.repo.Create(ctx, &payload); err != nil {
		return nil, fmt.Errorf("failed to create reagent: %w", err)
	}

	h.publishEvents(ctx, &payload, true)
	return &payload, nil
}

func (h *SaveReagentHandler) publishEvents(ctx context.Context, reagent *domain.Reagent, created bool) {
	if h.publisher == nil {
		return
	}

	if err := h.publisher.PublishReagentSaved(ctx, reagent, created); err != nil {
		logger.Warn(ctx).Err(err).Uint("reagent_id", reagent.ID).Msg("Failed to publish saved event")
	}

	if reagent.Status == domain.StatusLow {
		if err := h.publisher.PublishReagentLow(ctx, reagent); err != nil {
			logger.Warn(ctx).Err(err).Uint("reagent_id", reagent.ID).Msg("Failed to publish low stock event")
		}
	}
}
