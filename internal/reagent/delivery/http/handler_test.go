package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"

	"github.com/labflow/reagent-inventory/internal/reagent/domain"
	"github.com/labflow/reagent-inventory/internal/reagent/usecase/command"
	"github.com/labflow/reagent-inventory/internal/reagent/usecase/query"
	"github.com/labflow/reagent-inventory/internal/recognition"
	"github.com/labflow/reagent-inventory/internal/scan"
)

// Mock ReagentRepository backed by a slice, newest first.
type mockRepo struct {
	reagents []domain.Reagent
	nextID   uint
}

func newMockRepo() *mockRepo { return &mockRepo{nextID: 1} }

func (m *mockRepo) Create(ctx context.Context, r *domain.Reagent) error {
	r.ID = m.nextID
	r.CreatedAt = time.Now()
	m.nextID++
	m.reagents = append([]domain.Reagent{*r}, m.reagents...)
	return nil
}

func (m *mockRepo) FindByID(ctx context.Context, id uint) (*domain.Reagent, error) {
	for i := range m.reagents {
		if m.reagents[i].ID == id {
			copied := m.reagents[i]
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("record not found")
}

func (m *mockRepo) FindAll(ctx context.Context) ([]domain.Reagent, error) {
	out := make([]domain.Reagent, len(m.reagents))
	copy(out, m.reagents)
	return out, nil
}

func (m *mockRepo) Update(ctx context.Context, r *domain.Reagent) error {
	for i := range m.reagents {
		if m.reagents[i].ID == r.ID {
			m.reagents[i] = *r
			return nil
		}
	}
	return fmt.Errorf("record not found")
}

func (m *mockRepo) Delete(ctx context.Context, id uint) error {
	for i := range m.reagents {
		if m.reagents[i].ID == id {
			m.reagents = append(m.reagents[:i], m.reagents[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("record not found")
}

// Mock Recognizer
type mockRecognizer struct {
	guess *recognition.LabelGuess
	err   error
}

func (m *mockRecognizer) Recognize(ctx context.Context, filename string, image []byte) (*recognition.LabelGuess, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.guess, nil
}

func newTestRouter(repo domain.ReagentRepository, rec recognition.Recognizer) *mux.Router {
	handler := NewReagentHandler(
		query.NewListReagentsHandler(repo),
		query.NewGetReagentHandler(repo),
		command.NewSaveReagentHandler(repo, nil),
		command.NewDeleteReagentHandler(repo),
		scan.NewCoordinator(rec, time.Second),
	)

	router := mux.NewRouter()
	handler.RegisterRoutes(router)
	return router
}

func doJSON(t *testing.T, router *mux.Router, method, path string, body interface{}) (*httptest.ResponseRecorder, Response) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	var resp Response
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body %q: %v", rr.Body.String(), err)
	}
	return rr, resp
}

func TestCreateReloadEditReload(t *testing.T) {
	repo := newMockRepo()
	router := newTestRouter(repo, &mockRecognizer{})

	// Insert a fresh reagent.
	rr, _ := doJSON(t, router, http.MethodPost, "/api/reagents", draftRequest{
		Name: "TRIzol", Remaining: 100, IsStock: true,
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", rr.Code, rr.Body.String())
	}

	// Reload: it classifies as stock.
	rr, resp := doJSON(t, router, http.MethodGet, "/api/reagents?tab=stock", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", rr.Code)
	}
	var listed []domain.Reagent
	raw, _ := json.Marshal(resp.Data)
	if err := json.Unmarshal(raw, &listed); err != nil {
		t.Fatal(err)
	}
	if len(listed) != 1 || listed[0].Category() != domain.TabStock {
		t.Fatalf("expected one stocked reagent, got %+v", listed)
	}

	// Edit it down to 10% in use.
	id := listed[0].ID
	rr, _ = doJSON(t, router, http.MethodPut, fmt.Sprintf("/api/reagents/%d", id), draftRequest{
		Name: "TRIzol", Remaining: 10, IsStock: false,
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	// Reload: now ongoing and low.
	rr, resp = doJSON(t, router, http.MethodGet, "/api/reagents?tab=ongoing", nil)
	raw, _ = json.Marshal(resp.Data)
	listed = nil
	if err := json.Unmarshal(raw, &listed); err != nil {
		t.Fatal(err)
	}
	if len(listed) != 1 || listed[0].ID != id {
		t.Fatalf("expected the edited reagent on the ongoing tab, got %+v", listed)
	}
	if listed[0].Status != domain.StatusLow {
		t.Errorf("expected status low, got %q", listed[0].Status)
	}
}

func TestCreateReagent_EmptyNameRejected(t *testing.T) {
	repo := newMockRepo()
	router := newTestRouter(repo, &mockRecognizer{})

	rr, resp := doJSON(t, router, http.MethodPost, "/api/reagents", draftRequest{
		Name: "", Remaining: 50,
	})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	if resp.Success {
		t.Error("expected failure response")
	}

	if all, _ := repo.FindAll(context.Background()); len(all) != 0 {
		t.Errorf("validation failure must not persist anything, store has %d rows", len(all))
	}
}

func TestListReagents_SearchQuery(t *testing.T) {
	repo := newMockRepo()
	router := newTestRouter(repo, &mockRecognizer{})

	for _, d := range []draftRequest{
		{Name: "PBS", Brand: "Gibco", Remaining: 100, IsStock: true},
		{Name: "Ethanol 99%", Location: "Cabinet 1", Remaining: 40},
	} {
		if rr, _ := doJSON(t, router, http.MethodPost, "/api/reagents", d); rr.Code != http.StatusCreated {
			t.Fatalf("seed failed: %d", rr.Code)
		}
	}

	rr, resp := doJSON(t, router, http.MethodGet, "/api/reagents?q=cabinet", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var listed []domain.Reagent
	raw, _ := json.Marshal(resp.Data)
	if err := json.Unmarshal(raw, &listed); err != nil {
		t.Fatal(err)
	}
	if len(listed) != 1 || listed[0].Name != "Ethanol 99%" {
		t.Errorf("expected location search to match Ethanol, got %+v", listed)
	}
}

func scanRequest(t *testing.T, withFile bool) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	if withFile {
		part, err := writer.CreateFormFile("file", "label.jpg")
		if err != nil {
			t.Fatal(err)
		}
		if _, err := part.Write([]byte("fake image bytes")); err != nil {
			t.Fatal(err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/reagents/scan", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestScanLabel_PrefillsDraft(t *testing.T) {
	repo := newMockRepo()
	router := newTestRouter(repo, &mockRecognizer{guess: &recognition.LabelGuess{
		Name: "Phosphate-Buffered Saline (PBS)", Brand: "Gibco", IsStock: true, Remaining: 100,
	}})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, scanRequest(t, true))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp Response
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	var draft domain.Draft
	raw, _ := json.Marshal(resp.Data)
	if err := json.Unmarshal(raw, &draft); err != nil {
		t.Fatal(err)
	}
	if draft.Name != "Phosphate-Buffered Saline (PBS)" || draft.Brand != "Gibco" || draft.Remaining != 100 {
		t.Errorf("unexpected draft %+v", draft)
	}

	// The guess is advisory: nothing was persisted.
	if all, _ := repo.FindAll(context.Background()); len(all) != 0 {
		t.Errorf("scan must not write to the store, found %d rows", len(all))
	}
}

func TestScanLabel_NoFile(t *testing.T) {
	router := newTestRouter(newMockRepo(), &mockRecognizer{})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, scanRequest(t, false))

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestScanLabel_RecognitionFailure(t *testing.T) {
	repo := newMockRepo()
	router := newTestRouter(repo, &mockRecognizer{err: errors.New("analysis failed")})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, scanRequest(t, true))

	if rr.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rr.Code)
	}
	if all, _ := repo.FindAll(context.Background()); len(all) != 0 {
		t.Errorf("failed scan must leave the store unchanged, found %d rows", len(all))
	}
}

func TestDeleteReagent(t *testing.T) {
	repo := newMockRepo()
	router := newTestRouter(repo, &mockRecognizer{})

	rr, resp := doJSON(t, router, http.MethodPost, "/api/reagents", draftRequest{
		Name: "PBS", Remaining: 100, IsStock: true,
	})
	if rr.Code != http.StatusCreated {
		t.Fatal("seed failed")
	}
	var created domain.Reagent
	raw, _ := json.Marshal(resp.Data)
	if err := json.Unmarshal(raw, &created); err != nil {
		t.Fatal(err)
	}

	rr, _ = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/reagents/%d", created.ID), nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	rr, _ = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/reagents/%d", created.ID), nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", rr.Code)
	}
}
