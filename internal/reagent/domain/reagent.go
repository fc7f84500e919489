package domain

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// Reagent status values. Status is persisted for query convenience but is
// derivable from Remaining and the stocked flag chosen at save time.
const (
	StatusStock = "stock"
	StatusOK    = "ok"
	StatusLow   = "low"
)

// Remaining quantity below this percentage marks an opened reagent as low.
const LowThreshold = 20

// Reagent represents a single reagent's persisted inventory entry.
type Reagent struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Name      string         `json:"name" gorm:"not null"`
	Brand     string         `json:"brand"`
	Location  string         `json:"location"`
	Remaining int            `json:"remaining" gorm:"not null;default:100"`
	Status    string         `json:"status" gorm:"not null;default:'ok'"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (Reagent) TableName() string {
	return "reagents"
}

// IsStocked reports whether the reagent counts as unopened stock.
// A full remaining quantity is treated the same as an explicit stock
// status: legacy rows never had the status column set, so the predicate
// must not depend on it alone.
func (r *Reagent) IsStocked() bool {
	return r.Status == StatusStock || r.Remaining == 100
}

// IsLow reports whether an opened reagent is close to running out.
func (r *Reagent) IsLow() bool {
	return !r.IsStocked() && r.Remaining < LowThreshold
}

// Category returns the display category of the reagent.
func (r *Reagent) Category() Tab {
	if r.IsStocked() {
		return TabStock
	}
	return TabOngoing
}

// ReagentRepository defines the contract for reagent data access.
// FindAll returns rows ordered newest first.
type ReagentRepository interface {
	Create(ctx context.Context, reagent *Reagent) error
	FindByID(ctx context.Context, id uint) (*Reagent, error)
	FindAll(ctx context.Context) ([]Reagent, error)
	Update(ctx context.Context, reagent *Reagent) error
	Delete(ctx context.Context, id uint) error
}
