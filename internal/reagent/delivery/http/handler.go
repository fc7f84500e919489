package http

import (
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/labflow/reagent-inventory/internal/reagent/domain"
	"github.com/labflow/reagent-inventory/internal/reagent/usecase/command"
	"github.com/labflow/reagent-inventory/internal/reagent/usecase/query"
	"github.com/labflow/reagent-inventory/internal/scan"
	"github.com/labflow/reagent-inventory/pkg/logger"
)

// maxScanImageBytes caps label uploads at 10 MiB.
const maxScanImageBytes = 10 << 20

// ReagentHandler handles HTTP requests for reagents
type ReagentHandler struct {
	listHandler   *query.ListReagentsHandler
	getHandler    *query.GetReagentHandler
	saveHandler   *command.SaveReagentHandler
	deleteHandler *command.DeleteReagentHandler
	coordinator   *scan.Coordinator
}

// NewReagentHandler creates a new reagent handler
func NewReagentHandler(
	listHandler *query.ListReagentsHandler,
	getHandler *query.GetReagentHandler,
	saveHandler *command.SaveReagentHandler,
	deleteHandler *command.DeleteReagentHandler,
	coordinator *scan.Coordinator,
) *ReagentHandler {
	return &ReagentHandler{
		listHandler:   listHandler,
		getHandler:    getHandler,
		saveHandler:   saveHandler,
		deleteHandler: deleteHandler,
		coordinator:   coordinator,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

type draftRequest struct {
	Name      string `json:"name"`
	Brand     string `json:"brand"`
	Location  string `json:"location"`
	Remaining int    `json:"remaining"`
	IsStock   bool   `json:"is_stock"`
}

func (d draftRequest) toDraft() domain.Draft {
	return domain.Draft{
		Name:      d.Name,
		Brand:     d.Brand,
		Location:  d.Location,
		Remaining: d.Remaining,
		IsStock:   d.IsStock,
	}
}

// ListReagents handles GET /api/reagents
func (h *ReagentHandler) ListReagents(w http.ResponseWriter, r *http.Request) {
	q := query.ListReagentsQuery{
		Search: r.URL.Query().Get("q"),
		Tab:    domain.ParseTab(r.URL.Query().Get("tab")),
	}

	reagents, err := h.listHandler.Handle(r.Context(), q)
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list reagents")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list reagents",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    reagents,
	})
}

// GetReagent handles GET /api/reagents/{id}
func (h *ReagentHandler) GetReagent(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	reagent, err := h.getHandler.Handle(r.Context(), query.GetReagentQuery{ID: id})
	if err != nil {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "Reagent not found",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    reagent,
	})
}

// CreateReagent handles POST /api/reagents
func (h *ReagentHandler) CreateReagent(w http.ResponseWriter, r *http.Request) {
	var req draftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	reagent, err := h.saveHandler.Handle(r.Context(), command.SaveReagentCommand{
		Draft: req.toDraft(),
	})
	if err != nil {
		h.respondSaveError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Reagent created successfully",
		Data:    reagent,
	})
}

// UpdateReagent handles PUT /api/reagents/{id}
func (h *ReagentHandler) UpdateReagent(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req draftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	reagent, err := h.saveHandler.Handle(r.Context(), command.SaveReagentCommand{
		Draft:     req.toDraft(),
		EditingID: &id,
	})
	if err != nil {
		h.respondSaveError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Reagent updated successfully",
		Data:    reagent,
	})
}

// DeleteReagent handles DELETE /api/reagents/{id}
func (h *ReagentHandler) DeleteReagent(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.deleteHandler.Handle(r.Context(), command.DeleteReagentCommand{ID: id}); err != nil {
		logger.Error(r.Context()).Err(err).Uint("reagent_id", id).Msg("Failed to delete reagent")
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "Reagent not found",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Reagent deleted successfully",
	})
}

// ScanLabel handles POST /api/reagents/scan. The uploaded label image is
// forwarded to the recognition service; a successful guess comes back as
// a pre-filled draft for a new record, never as a committed row.
func (h *ReagentHandler) ScanLabel(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxScanImageBytes); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid multipart form",
		})
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "No file supplied",
		})
		return
	}
	defer file.Close()

	image, err := io.ReadAll(io.LimitReader(file, maxScanImageBytes))
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Failed to read uploaded file",
		})
		return
	}

	draft, err := h.coordinator.Scan(r.Context(), header.Filename, image)
	if err != nil {
		if errors.Is(err, scan.ErrScanInProgress) {
			respondJSON(w, http.StatusConflict, Response{
				Success: false,
				Error:   "A scan is already in progress",
			})
			return
		}

		logger.Error(r.Context()).Err(err).Msg("Label recognition failed")
		respondJSON(w, http.StatusBadGateway, Response{
			Success: false,
			Error:   "Label recognition failed",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Label recognized",
		Data:    draft,
	})
}

func (h *ReagentHandler) respondSaveError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrNameRequired) || errors.Is(err, domain.ErrRemainingOutOfRange) {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	logger.Error(r.Context()).Err(err).Msg("Failed to save reagent")
	respondJSON(w, http.StatusInternalServerError, Response{
		Success: false,
		Error:   "Failed to save reagent",
	})
}

// RegisterRoutes registers all reagent routes
func (h *ReagentHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/reagents", h.ListReagents).Methods("GET")
	router.HandleFunc("/api/reagents", h.CreateReagent).Methods("POST")
	router.HandleFunc("/api/reagents/scan", h.ScanLabel).Methods("POST")
	router.HandleFunc("/api/reagents/{id}", h.GetReagent).Methods("GET")
	router.HandleFunc("/api/reagents/{id}", h.UpdateReagent).Methods("PUT")
	router.HandleFunc("/api/reagents/{id}", h.DeleteReagent).Methods("DELETE")
}

// RegisterHealthCheck registers health check endpoint
func (h *ReagentHandler) RegisterHealthCheck(router *mux.Router, db *sql.DB) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(); err != nil {
			respondJSON(w, http.StatusServiceUnavailable, Response{
				Success: false,
				Error:   "Database unavailable",
			})
			return
		}

		respondJSON(w, http.StatusOK, Response{
			Success: true,
			Message: "Reagent service is healthy",
		})
	}).Methods("GET")
}

func parseID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid reagent ID",
		})
		return 0, false
	}
	return uint(id), true
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
