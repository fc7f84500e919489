package domain

import "errors"

var (
	// ErrNameRequired is returned when a draft is submitted without a name.
	ErrNameRequired = errors.New("reagent name is required")
	// ErrRemainingOutOfRange is returned when remaining is outside [0,100].
	ErrRemainingOutOfRange = errors.New("remaining must be between 0 and 100")
)

// Draft is the transient, user-editable copy of a reagent's fields during
// a create or edit session. It is never persisted; on submit it maps to a
// store payload via ToReagent.
type Draft struct {
	Name      string `json:"name"`
	Brand     string `json:"brand"`
	Location  string `json:"location"`
	Remaining int    `json:"remaining"`
	IsStock   bool   `json:"is_stock"`
}

// NewDraft returns the default draft for a manually created reagent:
// a fresh, unopened item.
func NewDraft() Draft {
	return Draft{Remaining: 100, IsStock: true}
}

// DraftFromReagent pre-fills a draft from an existing record for editing.
func DraftFromReagent(r *Reagent) Draft {
	return Draft{
		Name:      r.Name,
		Brand:     r.Brand,
		Location:  r.Location,
		Remaining: r.Remaining,
		IsStock:   r.Status == StatusStock,
	}
}

// Normalize applies the stocked convention: marking a draft as stock means
// "new and unopened", so the remaining quantity resets to full.
func (d *Draft) Normalize() {
	if d.IsStock {
		d.Remaining = 100
	}
}

// Validate checks the draft before any store call is made.
func (d *Draft) Validate() error {
	if d.Name == "" {
		return ErrNameRequired
	}
	if d.Remaining < 0 || d.Remaining > 100 {
		return ErrRemainingOutOfRange
	}
	return nil
}

// ToReagent maps the draft to a store payload. The status column is
// assigned from the user's stocked claim and the remaining quantity:
// stock when stocked, low below the threshold, ok otherwise.
func (d *Draft) ToReagent() Reagent {
	draft := *d
	draft.Normalize()

	status := StatusOK
	switch {
	case draft.IsStock:
		status = StatusStock
	case draft.Remaining < LowThreshold:
		status = StatusLow
	}

	return Reagent{
		Name:      draft.Name,
		Brand:     draft.Brand,
		Location:  draft.Location,
		Remaining: draft.Remaining,
		Status:    status,
	}
}
