package domain

import "strings"

// Tab selects which category of reagents a listing shows.
type Tab string

const (
	TabAll     Tab = "all"
	TabOngoing Tab = "ongoing"
	TabStock   Tab = "stock"
)

// ParseTab maps a request parameter to a Tab. Anything unrecognized,
// including the empty string, means no category filter.
func ParseTab(s string) Tab {
	switch Tab(s) {
	case TabOngoing:
		return TabOngoing
	case TabStock:
		return TabStock
	default:
		return TabAll
	}
}

// MatchesSearch reports whether the query is a case-insensitive substring
// of the reagent's name, brand or location. An empty query matches
// everything.
func (r *Reagent) MatchesSearch(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}

	return strings.Contains(strings.ToLower(r.Name), q) ||
		(r.Brand != "" && strings.Contains(strings.ToLower(r.Brand), q)) ||
		(r.Location != "" && strings.Contains(strings.ToLower(r.Location), q))
}

// Filter applies the search and tab predicates over a reagent collection.
// Input order is preserved; callers supply rows already sorted newest
// first. The function is pure and cheap enough to run on every keystroke.
func Filter(reagents []Reagent, query string, tab Tab) []Reagent {
	filtered := make([]Reagent, 0, len(reagents))
	for i := range reagents {
		r := &reagents[i]
		if !r.MatchesSearch(query) {
			continue
		}
		if tab != TabAll && r.Category() != tab {
			continue
		}
		filtered = append(filtered, *r)
	}
	return filtered
}
