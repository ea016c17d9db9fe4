//nolint:revive // types is a standard Go package name pattern
package types

import "fmt"

// ViewMode selects the base collection the filters run over.
type ViewMode string

// View modes
const (
	ViewDiscover ViewMode = "discover"
	ViewSaved    ViewMode = "saved"
)

// ParseViewMode converts a string into a ViewMode.
func ParseViewMode(s string) (ViewMode, error) {
	switch ViewMode(s) {
	case ViewDiscover, ViewSaved:
		return ViewMode(s), nil
	default:
		return "", fmt.Errorf("unknown view mode %q (want %q or %q)", s, ViewDiscover, ViewSaved)
	}
}

// FilterState is the current sidebar selection. Each axis holds an enum value or Wildcard.
type FilterState struct {
	Category string `json:"category" validate:"required,filter_category"`
	Type     string `json:"type" validate:"required,filter_type"`
	Level    string `json:"level" validate:"required,filter_level"`
	OnlyPaid bool   `json:"onlyPaid"`
}

// DefaultFilters returns the all-wildcard filter selection.
func DefaultFilters() FilterState {
	return FilterState{
		Category: Wildcard,
		Type:     Wildcard,
		Level:    Wildcard,
		OnlyPaid: false,
	}
}

// Validate validates the FilterState using the validator.
func (f *FilterState) Validate() error {
	return Validator().Struct(f)
}

// Normalize replaces empty axes with Wildcard.
func (f FilterState) Normalize() FilterState {
	if f.Category == "" {
		f.Category = Wildcard
	}
	if f.Type == "" {
		f.Type = Wildcard
	}
	if f.Level == "" {
		f.Level = Wildcard
	}
	return f
}

// CategoryOptions returns the category filter choices, starting with Wildcard.
func CategoryOptions() []string {
	opts := []string{Wildcard}
	for _, c := range AllCategories() {
		opts = append(opts, string(c))
	}
	return opts
}

// TypeOptions returns the type filter choices, starting with Wildcard.
// "Other" is not offered as a filter choice.
func TypeOptions() []string {
	opts := []string{Wildcard}
	for _, t := range AllTypes() {
		if t == TypeOther {
			continue
		}
		opts = append(opts, string(t))
	}
	return opts
}

// LevelOptions returns the level filter choices, starting with Wildcard.
func LevelOptions() []string {
	opts := []string{Wildcard}
	for _, l := range AllLevels() {
		opts = append(opts, string(l))
	}
	return opts
}
