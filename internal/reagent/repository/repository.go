package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/labflow/reagent-inventory/internal/reagent/domain"
)

type GormReagentRepository struct {
	db *gorm.DB
}

func NewGormReagentRepository(db *gorm.DB) *GormReagentRepository {
	return &GormReagentRepository{db: db}
}

func (r *GormReagentRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Reagent{})
}

func (r *GormReagentRepository) Create(ctx context.Context, reagent *domain.Reagent) error {
	return r.db.WithContext(ctx).Create(reagent).Error
}

func (r *GormReagentRepository) FindByID(ctx context.Context, id uint) (*domain.Reagent, error) {
	var reagent domain.Reagent
	err := r.db.WithContext(ctx).First(&reagent, id).Error
	if err != nil {
		return nil, err
	}
	return &reagent, nil
}

// FindAll returns every reagent, newest first. The listing view owns
// ordering; filtering happens in memory on top of this.
func (r *GormReagentRepository) FindAll(ctx context.Context) ([]domain.Reagent, error) {
	var reagents []domain.Reagent
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&reagents).Error
	return reagents, err
}

func (r *GormReagentRepository) Update(ctx context.Context, reagent *domain.Reagent) error {
	return r.db.WithContext(ctx).Save(reagent).Error
}

func (r *GormReagentRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&domain.Reagent{}, id).Error
}
