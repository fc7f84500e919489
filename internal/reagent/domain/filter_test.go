package domain

import "testing"

func sampleReagents() []Reagent {
	return []Reagent{
		{ID: 3, Name: "TRIzol Reagent", Brand: "Invitrogen", Location: "Freezer A", Remaining: 80, Status: StatusOK},
		{ID: 2, Name: "Phosphate-Buffered Saline (PBS)", Brand: "Gibco", Location: "Shelf 2", Remaining: 100, Status: StatusStock},
		{ID: 1, Name: "Ethanol 99%", Location: "Cabinet 1", Remaining: 15, Status: StatusLow},
	}
}

func TestFilter_EmptyQueryAllTabIsIdentity(t *testing.T) {
	reagents := sampleReagents()
	got := Filter(reagents, "", TabAll)

	if len(got) != len(reagents) {
		t.Fatalf("expected %d reagents, got %d", len(reagents), len(got))
	}
	for i := range got {
		if got[i].ID != reagents[i].ID {
			t.Errorf("order changed at %d: got id %d, want %d", i, got[i].ID, reagents[i].ID)
		}
	}
}

func TestFilter_TabMatchesCategory(t *testing.T) {
	reagents := sampleReagents()

	for _, tab := range []Tab{TabOngoing, TabStock} {
		got := Filter(reagents, "", tab)
		for i := range got {
			if got[i].Category() != tab {
				t.Errorf("tab %s returned reagent %d with category %s", tab, got[i].ID, got[i].Category())
			}
		}
	}

	ongoing := Filter(reagents, "", TabOngoing)
	stock := Filter(reagents, "", TabStock)
	if len(ongoing)+len(stock) != len(reagents) {
		t.Errorf("tabs should partition the collection: %d + %d != %d",
			len(ongoing), len(stock), len(reagents))
	}
}

func TestFilter_SearchIsCaseInsensitive(t *testing.T) {
	reagents := []Reagent{{Name: "PBS"}}

	got := Filter(reagents, "pbs", TabAll)
	if len(got) != 1 {
		t.Fatalf("expected case-insensitive name match, got %d results", len(got))
	}
}

func TestFilter_SearchMatchesBrandAndLocation(t *testing.T) {
	reagents := sampleReagents()

	byBrand := Filter(reagents, "gibco", TabAll)
	if len(byBrand) != 1 || byBrand[0].Brand != "Gibco" {
		t.Errorf("expected brand match, got %+v", byBrand)
	}

	byLocation := Filter(reagents, "freezer", TabAll)
	if len(byLocation) != 1 || byLocation[0].Location != "Freezer A" {
		t.Errorf("expected location match, got %+v", byLocation)
	}
}

func TestFilter_SearchTrimsWhitespace(t *testing.T) {
	reagents := sampleReagents()

	got := Filter(reagents, "  ethanol  ", TabAll)
	if len(got) != 1 || got[0].Name != "Ethanol 99%" {
		t.Errorf("expected trimmed query to match, got %+v", got)
	}
}

func TestFilter_SearchAndTabCompose(t *testing.T) {
	reagents := sampleReagents()

	// TRIzol is ongoing; searching for it under the stock tab yields nothing.
	got := Filter(reagents, "trizol", TabStock)
	if len(got) != 0 {
		t.Errorf("expected no results, got %d", len(got))
	}

	got = Filter(reagents, "trizol", TabOngoing)
	if len(got) != 1 {
		t.Errorf("expected one result, got %d", len(got))
	}
}

func TestParseTab(t *testing.T) {
	cases := map[string]Tab{
		"all":     TabAll,
		"ongoing": TabOngoing,
		"stock":   TabStock,
		"":        TabAll,
		"bogus":   TabAll,
	}

	for in, want := range cases {
		if got := ParseTab(in); got != want {
			t.Errorf("ParseTab(%q) = %s, want %s", in, got, want)
		}
	}
}
