package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/labflow/reagent-inventory/internal/reagent/domain"
)

var tracer = otel.Tracer("reagent-repository")

// GormReagentRepositoryWithTracing decorates GormReagentRepository with a
// span per store operation.
type GormReagentRepositoryWithTracing struct {
	base *GormReagentRepository
}

// NewGormReagentRepositoryWithTracing creates a new repository with tracing
func NewGormReagentRepositoryWithTracing(db *gorm.DB) *GormReagentRepositoryWithTracing {
	return &GormReagentRepositoryWithTracing{
		base: NewGormReagentRepository(db),
	}
}

func (r *GormReagentRepositoryWithTracing) AutoMigrate() error {
	return r.base.AutoMigrate()
}

func (r *GormReagentRepositoryWithTracing) Create(ctx context.Context, reagent *domain.Reagent) error {
	ctx, span := tracer.Start(ctx, "repository.Create",
		trace.WithAttributes(
			attribute.String("reagent.name", reagent.Name),
			attribute.String("reagent.status", reagent.Status),
			attribute.Int("reagent.remaining", reagent.Remaining),
		),
	)
	defer span.End()

	if err := r.base.Create(ctx, reagent); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(attribute.Int("reagent.id", int(reagent.ID)))
	return nil
}

func (r *GormReagentRepositoryWithTracing) FindByID(ctx context.Context, id uint) (*domain.Reagent, error) {
	ctx, span := tracer.Start(ctx, "repository.FindByID",
		trace.WithAttributes(attribute.Int("reagent.id", int(id))),
	)
	defer span.End()

	reagent, err := r.base.FindByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return reagent, nil
}

func (r *GormReagentRepositoryWithTracing) FindAll(ctx context.Context) ([]domain.Reagent, error) {
	ctx, span := tracer.Start(ctx, "repository.FindAll")
	defer span.End()

	reagents, err := r.base.FindAll(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("reagent.count", len(reagents)))
	return reagents, nil
}

func (r *GormReagentRepositoryWithTracing) Update(ctx context.Context, reagent *domain.Reagent) error {
	ctx, span := tracer.Start(ctx, "repository.Update",
		trace.WithAttributes(
			attribute.Int("reagent.id", int(reagent.ID)),
			attribute.String("reagent.status", reagent.Status),
		),
	)
	defer span.End()

	if err := r.base.Update(ctx, reagent); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

func (r *GormReagentRepositoryWithTracing) Delete(ctx context.Context, id uint) error {
	ctx, span := tracer.Start(ctx, "repository.Delete",
		trace.WithAttributes(attribute.Int("reagent.id", int(id))),
	)
	defer span.End()

	if err := r.base.Delete(ctx, id); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}
