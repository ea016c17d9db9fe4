// Package filter derives the visible opportunity list and its statistics from application state.
// Every function here is pure and preserves input order.
package filter

import "github.com/jonathan/opportunity-hub/internal/types"

// Visible returns the items of collection that pass the view gate and every active filter.
// The result is never nil.
func Visible(collection []types.Opportunity, mode types.ViewMode, saved types.SavedSet, f types.FilterState) []types.Opportunity {
	out := make([]types.Opportunity, 0, len(collection))
	for _, item := range collection {
		if Match(item, mode, saved, f) {
			out = append(out, item)
		}
	}
	return out
}

// Match reports whether a single item passes the view gate and the filters.
func Match(item types.Opportunity, mode types.ViewMode, saved types.SavedSet, f types.FilterState) bool {
	if mode == types.ViewSaved && !saved.Has(item.ID) {
		return false
	}
	if !axis(f.Category, string(item.Category)) {
		return false
	}
	if !axis(f.Type, string(item.Type)) {
		return false
	}
	if !axis(f.Level, string(item.Level)) {
		return false
	}
	return !f.OnlyPaid || item.IsPaid
}

// axis treats both the wildcard and an unset selection as match-all.
func axis(selected, value string) bool {
	return selected == "" || selected == types.Wildcard || selected == value
}
