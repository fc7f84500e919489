package domain

import (
	"errors"
	"testing"
)

func TestDraftToReagent_StockForcesFullRemaining(t *testing.T) {
	draft := Draft{Name: "PBS", IsStock: true, Remaining: 42}

	r := draft.ToReagent()
	if r.Status != StatusStock {
		t.Errorf("expected status %q, got %q", StatusStock, r.Status)
	}
	if r.Remaining != 100 {
		t.Errorf("stocked draft must reset remaining to 100, got %d", r.Remaining)
	}
}

func TestDraftToReagent_StatusFromRemaining(t *testing.T) {
	cases := []struct {
		name       string
		remaining  int
		wantStatus string
	}{
		{"low below threshold", 15, StatusLow},
		{"ok above threshold", 50, StatusOK},
		{"ok at threshold", 20, StatusOK},
		{"low at zero", 0, StatusLow},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			draft := Draft{Name: "Ethanol", IsStock: false, Remaining: tc.remaining}
			r := draft.ToReagent()
			if r.Status != tc.wantStatus {
				t.Errorf("remaining %d: expected status %q, got %q", tc.remaining, tc.wantStatus, r.Status)
			}
			if r.Remaining != tc.remaining {
				t.Errorf("remaining changed: got %d, want %d", r.Remaining, tc.remaining)
			}
		})
	}
}

func TestDraftValidate(t *testing.T) {
	draft := Draft{Name: "", Remaining: 50}
	if err := draft.Validate(); !errors.Is(err, ErrNameRequired) {
		t.Errorf("expected ErrNameRequired, got %v", err)
	}

	draft = Draft{Name: "TRIzol", Remaining: 101}
	if err := draft.Validate(); !errors.Is(err, ErrRemainingOutOfRange) {
		t.Errorf("expected ErrRemainingOutOfRange, got %v", err)
	}

	draft = Draft{Name: "TRIzol", Remaining: 100}
	if err := draft.Validate(); err != nil {
		t.Errorf("expected valid draft, got %v", err)
	}
}

func TestNewDraftDefaults(t *testing.T) {
	draft := NewDraft()
	if !draft.IsStock || draft.Remaining != 100 {
		t.Errorf("new draft should default to unopened stock, got %+v", draft)
	}
}

func TestDraftFromReagent(t *testing.T) {
	r := Reagent{Name: "TRIzol", Brand: "Invitrogen", Location: "Freezer A", Remaining: 60, Status: StatusOK}

	draft := DraftFromReagent(&r)
	if draft.IsStock {
		t.Error("ok status should not pre-fill as stocked")
	}
	if draft.Name != r.Name || draft.Brand != r.Brand || draft.Location != r.Location || draft.Remaining != r.Remaining {
		t.Errorf("draft fields do not mirror record: %+v", draft)
	}

	r.Status = StatusStock
	if !DraftFromReagent(&r).IsStock {
		t.Error("stock status should pre-fill as stocked")
	}
}
