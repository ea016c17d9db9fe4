package app

import "errors"

var (
	// ErrNotAuthenticated is returned for operations that need a signed-in user.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrSearchInProgress is returned when a search is requested while another is loading.
	ErrSearchInProgress = errors.New("search already in progress")
	// ErrInvalidFilter is returned when a filter selection is outside the option lists.
	ErrInvalidFilter = errors.New("invalid filter")
	// ErrInvalidID is returned for an empty opportunity identifier.
	ErrInvalidID = errors.New("invalid opportunity id")
)
