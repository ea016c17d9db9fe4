//nolint:revive // types is a standard Go package name pattern
package types

import "sort"

// SavedSet is the set of bookmarked opportunity identifiers.
// Membership does not depend on the currently loaded collection.
type SavedSet map[string]struct{}

// NewSavedSet builds a set from ids, ignoring empty strings and duplicates.
func NewSavedSet(ids ...string) SavedSet {
	s := make(SavedSet, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		s[id] = struct{}{}
	}
	return s
}

// Has reports whether id is saved.
func (s SavedSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Toggle flips membership of id and reports whether it is now saved.
func (s SavedSet) Toggle(id string) bool {
	if s.Has(id) {
		delete(s, id)
		return false
	}
	s[id] = struct{}{}
	return true
}

// Len returns the number of saved ids.
func (s SavedSet) Len() int {
	return len(s)
}

// IDs returns the saved ids in sorted order.
func (s SavedSet) IDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
