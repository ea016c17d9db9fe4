package filter

import "github.com/jonathan/opportunity-hub/internal/types"

// CategoryCount is one slice of the category breakdown.
type CategoryCount struct {
	Category types.Category `json:"category"`
	Count    int            `json:"count"`
}

// Stats summarizes a collection.
type Stats struct {
	Total      int             `json:"total"`
	Paid       int             `json:"paid"`
	Verified   int             `json:"verified"`
	Categories []CategoryCount `json:"categories"`
}

// CountByCategory counts items per category in order of first appearance.
// Categories with no items are omitted.
func CountByCategory(collection []types.Opportunity) []CategoryCount {
	counts := make([]CategoryCount, 0)
	index := make(map[types.Category]int)
	for _, item := range collection {
		i, ok := index[item.Category]
		if !ok {
			i = len(counts)
			index[item.Category] = i
			counts = append(counts, CategoryCount{Category: item.Category})
		}
		counts[i].Count++
	}
	return counts
}

// Summary computes totals and the category breakdown for collection.
func Summary(collection []types.Opportunity) Stats {
	s := Stats{
		Total:      len(collection),
		Categories: CountByCategory(collection),
	}
	for _, item := range collection {
		if item.IsPaid {
			s.Paid++
		}
		if item.IsVerified {
			s.Verified++
		}
	}
	return s
}
