package domain

import "testing"

func TestIsStocked_FullRemainingWithoutStatus(t *testing.T) {
	// Legacy rows may have remaining=100 but a status that was never set
	// to stock; they must still classify as stocked.
	cases := []struct {
		name    string
		reagent Reagent
		want    bool
	}{
		{"explicit stock status", Reagent{Status: StatusStock, Remaining: 40}, true},
		{"full remaining, ok status", Reagent{Status: StatusOK, Remaining: 100}, true},
		{"full remaining, empty status", Reagent{Remaining: 100}, true},
		{"opened", Reagent{Status: StatusOK, Remaining: 60}, false},
		{"low", Reagent{Status: StatusLow, Remaining: 5}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.reagent.IsStocked(); got != tc.want {
				t.Errorf("IsStocked() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestCategory(t *testing.T) {
	stocked := Reagent{Status: StatusStock, Remaining: 100}
	if stocked.Category() != TabStock {
		t.Errorf("expected stock category, got %s", stocked.Category())
	}

	opened := Reagent{Status: StatusOK, Remaining: 55}
	if opened.Category() != TabOngoing {
		t.Errorf("expected ongoing category, got %s", opened.Category())
	}
}

func TestIsLow(t *testing.T) {
	cases := []struct {
		name    string
		reagent Reagent
		want    bool
	}{
		{"below threshold", Reagent{Status: StatusOK, Remaining: 19}, true},
		{"at threshold", Reagent{Status: StatusOK, Remaining: 20}, false},
		{"stocked never low", Reagent{Status: StatusStock, Remaining: 10}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.reagent.IsLow(); got != tc.want {
				t.Errorf("IsLow() = %v, want %v", got, tc.want)
			}
		})
	}
}
