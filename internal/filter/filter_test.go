package filter

import (
	"fmt"
	"testing"

	"github.com/jonathan/opportunity-hub/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func opp(id string, category types.Category, typ types.OpportunityType, level types.Level, paid bool) types.Opportunity {
	return types.Opportunity{
		ID:         id,
		Title:      "Title " + id,
		Category:   category,
		Type:       typ,
		Level:      level,
		IsPaid:     paid,
		IsVerified: true,
	}
}

func sampleCollection() []types.Opportunity {
	return []types.Opportunity{
		opp("a", types.CategoryAIML, types.TypeInternship, types.LevelNational, true),
		opp("b", types.CategoryAIML, types.TypeHackathon, types.LevelInternational, false),
		opp("c", types.CategoryIT, types.TypeJob, types.LevelState, true),
		opp("d", types.CategorySports, types.TypeCompetition, types.LevelState, false),
		opp("e", types.CategoryAIML, types.TypeWorkshop, types.LevelInternational, true),
	}
}

func ids(items []types.Opportunity) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.ID
	}
	return out
}

func TestVisible_CategoryScenario(t *testing.T) {
	f := types.FilterState{Category: "AI/ML", Type: types.Wildcard, Level: types.Wildcard}

	got := Visible(sampleCollection(), types.ViewDiscover, types.NewSavedSet(), f)

	assert.Equal(t, []string{"a", "b", "e"}, ids(got))
}

func TestVisible_Predicates(t *testing.T) {
	tests := []struct {
		name     string
		mode     types.ViewMode
		saved    types.SavedSet
		filters  types.FilterState
		expected []string
	}{
		{
			name:     "defaults keep everything",
			mode:     types.ViewDiscover,
			filters:  types.DefaultFilters(),
			expected: []string{"a", "b", "c", "d", "e"},
		},
		{
			name:     "zero value filters keep everything",
			mode:     types.ViewDiscover,
			expected: []string{"a", "b", "c", "d", "e"},
		},
		{
			name:     "type gate",
			mode:     types.ViewDiscover,
			filters:  types.FilterState{Category: "All", Type: "Job", Level: "All"},
			expected: []string{"c"},
		},
		{
			name:     "level gate",
			mode:     types.ViewDiscover,
			filters:  types.FilterState{Category: "All", Type: "All", Level: "International"},
			expected: []string{"b", "e"},
		},
		{
			name:     "paid gate",
			mode:     types.ViewDiscover,
			filters:  types.FilterState{Category: "All", Type: "All", Level: "All", OnlyPaid: true},
			expected: []string{"a", "c", "e"},
		},
		{
			name:     "gates combine with AND",
			mode:     types.ViewDiscover,
			filters:  types.FilterState{Category: "AI/ML", Type: "All", Level: "International", OnlyPaid: true},
			expected: []string{"e"},
		},
		{
			name:     "saved view intersects saved set",
			mode:     types.ViewSaved,
			saved:    types.NewSavedSet("e", "c", "stale-id"),
			filters:  types.DefaultFilters(),
			expected: []string{"c", "e"},
		},
		{
			name:     "saved view with filters",
			mode:     types.ViewSaved,
			saved:    types.NewSavedSet("a", "c", "d"),
			filters:  types.FilterState{Category: "All", Type: "All", Level: "State"},
			expected: []string{"c", "d"},
		},
		{
			name:     "saved view with empty set is empty",
			mode:     types.ViewSaved,
			saved:    types.NewSavedSet(),
			filters:  types.DefaultFilters(),
			expected: []string{},
		},
		{
			name:     "saved view with nil set is empty",
			mode:     types.ViewSaved,
			filters:  types.DefaultFilters(),
			expected: []string{},
		},
		{
			name:     "no match",
			mode:     types.ViewDiscover,
			filters:  types.FilterState{Category: "Law/Policy", Type: "All", Level: "All"},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Visible(sampleCollection(), tt.mode, tt.saved, tt.filters)
			require.NotNil(t, got)
			assert.Equal(t, tt.expected, ids(got))
		})
	}
}

func TestVisible_EmptyCollection(t *testing.T) {
	got := Visible(nil, types.ViewDiscover, nil, types.DefaultFilters())
	require.NotNil(t, got)
	assert.Empty(t, got)
}

// Exhaustive check over every filter combination: output is an ordered subset and every item passes.
func TestVisible_SubsetAndOrderProperty(t *testing.T) {
	collection := sampleCollection()
	position := map[string]int{}
	for i, item := range collection {
		position[item.ID] = i
	}
	saved := types.NewSavedSet("a", "d")

	for _, mode := range []types.ViewMode{types.ViewDiscover, types.ViewSaved} {
		for _, category := range types.CategoryOptions() {
			for _, typ := range types.TypeOptions() {
				for _, level := range types.LevelOptions() {
					for _, paid := range []bool{false, true} {
						f := types.FilterState{Category: category, Type: typ, Level: level, OnlyPaid: paid}
						name := fmt.Sprintf("%s/%s/%s/%s/%v", mode, category, typ, level, paid)

						got := Visible(collection, mode, saved, f)

						last := -1
						for _, item := range got {
							pos, ok := position[item.ID]
							require.True(t, ok, name)
							require.Greater(t, pos, last, "order not preserved: %s", name)
							last = pos

							assert.True(t, category == types.Wildcard || string(item.Category) == category, name)
							assert.True(t, typ == types.Wildcard || string(item.Type) == typ, name)
							assert.True(t, level == types.Wildcard || string(item.Level) == level, name)
							assert.True(t, !paid || item.IsPaid, name)
							if mode == types.ViewSaved {
								assert.True(t, saved.Has(item.ID), name)
							}
						}
					}
				}
			}
		}
	}
}

func TestVisible_DoesNotMutateInput(t *testing.T) {
	collection := sampleCollection()
	before := ids(collection)

	_ = Visible(collection, types.ViewDiscover, nil, types.FilterState{Category: "Sports"})

	assert.Equal(t, before, ids(collection))
}
