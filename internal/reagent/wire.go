//go:build wireinject
// +build wireinject

package reagent

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/labflow/reagent-inventory/internal/reagent/delivery/http"
	"github.com/labflow/reagent-inventory/internal/reagent/domain"
	"github.com/labflow/reagent-inventory/internal/reagent/repository"
	"github.com/labflow/reagent-inventory/internal/reagent/usecase/command"
	"github.com/labflow/reagent-inventory/internal/reagent/usecase/query"
	"github.com/labflow/reagent-inventory/internal/scan"
)

// ProvideReagentRepository provides the reagent repository wrapped with
// the tracing decorator.
func ProvideReagentRepository(db *gorm.DB) domain.ReagentRepository {
	return repository.NewGormReagentRepositoryWithTracing(db)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideReagentRepository,
)

var UsecaseSet = wire.NewSet(
	query.NewListReagentsHandler,
	query.NewGetReagentHandler,
	command.NewSaveReagentHandler,
	command.NewDeleteReagentHandler,
)

// InitializeHTTPHandler initializes the HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB, publisher command.EventPublisher, coordinator *scan.Coordinator) (*http.ReagentHandler, error) {
	wire.Build(
		RepositorySet,
		UsecaseSet,
		http.NewReagentHandler,
	)
	return nil, nil
}
