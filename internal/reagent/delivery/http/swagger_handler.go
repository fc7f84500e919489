package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterSwaggerDocs registers Swagger documentation routes
// @Summary Swagger documentation
// @Description Swagger API documentation for the Reagent Service
// @Tags Swagger
// @Success 200 {string} string "Swagger UI"
// @Router /swagger/ [get]
func RegisterSwaggerDocs(router *mux.Router, swaggerHandler http.Handler) {
	router.PathPrefix("/swagger/").Handler(swaggerHandler)
}

// ListReagents godoc
// @Summary List reagents
// @Description List reagents, newest first, filtered by search text and category tab
// @Tags Reagents
// @Produce json
// @Param q query string false "Search text (matches name, brand, location)"
// @Param tab query string false "Category tab: all, ongoing or stock" Enums(all, ongoing, stock)
// @Success 200 {object} object{success=bool,data=array}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /api/reagents [get]
func (h *ReagentHandler) ListReagentsDoc() {}

// GetReagent godoc
// @Summary Get reagent by ID
// @Description Get a single reagent record by its ID
// @Tags Reagents
// @Produce json
// @Param id path int true "Reagent ID"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/reagents/{id} [get]
func (h *ReagentHandler) GetReagentDoc() {}

// CreateReagent godoc
// @Summary Create a reagent
// @Description Create a new reagent from an edit draft; status is derived from the stocked flag and remaining quantity
// @Tags Reagents
// @Accept json
// @Produce json
// @Param request body object{name=string,brand=string,location=string,remaining=int,is_stock=bool} true "Edit draft"
// @Success 201 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/reagents [post]
func (h *ReagentHandler) CreateReagentDoc() {}

// UpdateReagent godoc
// @Summary Update a reagent
// @Description Update an existing reagent from an edit draft
// @Tags Reagents
// @Accept json
// @Produce json
// @Param id path int true "Reagent ID"
// @Param request body object{name=string,brand=string,location=string,remaining=int,is_stock=bool} true "Edit draft"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/reagents/{id} [put]
func (h *ReagentHandler) UpdateReagentDoc() {}

// DeleteReagent godoc
// @Summary Delete a reagent
// @Description Delete a reagent record by its ID
// @Tags Reagents
// @Produce json
// @Param id path int true "Reagent ID"
// @Success 200 {object} object{success=bool,message=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/reagents/{id} [delete]
func (h *ReagentHandler) DeleteReagentDoc() {}

// ScanLabel godoc
// @Summary Scan a reagent label
// @Description Upload a label photo; the recognition service returns a pre-filled draft for review. Only one scan may be in flight at a time.
// @Tags Reagents
// @Accept mpfd
// @Produce json
// @Param file formData file true "Label image"
// @Success 200 {object} object{success=bool,message=string,data=object{name=string,brand=string,location=string,remaining=int,is_stock=bool}}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 409 {object} object{success=bool,error=string}
// @Failure 502 {object} object{success=bool,error=string}
// @Router /api/reagents/scan [post]
func (h *ReagentHandler) ScanLabelDoc() {}

// HealthCheck godoc
// @Summary Health check
// @Description Check service health and database connectivity
// @Tags Health
// @Produce json
// @Success 200 {object} object{success=bool,message=string}
// @Failure 503 {object} object{success=bool,error=string}
// @Router /health [get]
func (h *ReagentHandler) HealthCheckDoc() {}
