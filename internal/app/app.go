// Package app owns the application state and serializes every user event against it.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/jonathan/opportunity-hub/internal/discovery"
	"github.com/jonathan/opportunity-hub/internal/filter"
	"github.com/jonathan/opportunity-hub/internal/session"
	"github.com/jonathan/opportunity-hub/internal/storage"
	"github.com/jonathan/opportunity-hub/internal/types"
)

// Fetcher produces the opportunity collection for a query.
type Fetcher interface {
	FetchResult(ctx context.Context, query string) discovery.Result
}

// Deps are the collaborators of an App.
type Deps struct {
	Fetcher     Fetcher
	Store       *storage.Store
	Logger      *slog.Logger
	GateOptions []session.Option
}

// State is a copy of the application state for rendering.
type State struct {
	Session       session.Snapshot    `json:"session"`
	Opportunities []types.Opportunity `json:"opportunities"`
	Saved         []string            `json:"saved"`
	Filters       types.FilterState   `json:"filters"`
	ViewMode      types.ViewMode      `json:"viewMode"`
	Loading       bool                `json:"loading"`
	HasSearched   bool                `json:"hasSearched"`
	Query         string              `json:"query"`
	Source        discovery.Source    `json:"source,omitempty"`
}

// App is the single-user controller.
type App struct {
	fetcher Fetcher
	store   *storage.Store
	logger  *slog.Logger
	gate    *session.Gate

	mu            sync.Mutex
	opportunities []types.Opportunity
	saved         types.SavedSet
	filters       types.FilterState
	viewMode      types.ViewMode
	loading       bool
	hasSearched   bool
	query         string
	source        discovery.Source
	// epoch invalidates in-flight searches across logout.
	epoch uint64
}

// New restores the persisted user and saved ids and builds the session gate.
func New(ctx context.Context, deps Deps) (*App, error) {
	if deps.Fetcher == nil {
		return nil, fmt.Errorf("fetcher is required")
	}
	if deps.Store == nil {
		return nil, fmt.Errorf("store is required")
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	user, _ := deps.Store.LoadUser(ctx)
	saved := deps.Store.LoadSavedIDs(ctx)

	a := &App{
		fetcher:  deps.Fetcher,
		store:    deps.Store,
		logger:   logger,
		gate:     session.NewGate(user, deps.GateOptions...),
		saved:    saved,
		filters:  types.DefaultFilters(),
		viewMode: types.ViewDiscover,
	}

	if user != nil {
		logger.Debug("restored session", "email", user.Email, "saved", saved.Len())
	}
	return a, nil
}

// Bootstrap runs the automatic first search when a restored user has no results yet.
func (a *App) Bootstrap(ctx context.Context) error {
	if !a.gate.Authenticated() {
		return nil
	}
	a.mu.Lock()
	empty := len(a.opportunities) == 0
	a.mu.Unlock()
	if !empty {
		return nil
	}

	err := a.Search(ctx, "")
	if errors.Is(err, ErrSearchInProgress) {
		return nil
	}
	return err
}

// ChooseAuth opens the entry form.
func (a *App) ChooseAuth(mode types.AuthMode) error {
	return a.gate.ChooseAuth(mode)
}

// Back leaves the entry form.
func (a *App) Back() error {
	return a.gate.Back()
}

// Login submits the entry form, persists the user and runs the automatic search.
func (a *App) Login(ctx context.Context, req types.LoginRequest) (*types.User, error) {
	user, err := a.gate.Submit(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := a.store.SaveUser(ctx, user); err != nil {
		a.logger.Error("failed to persist user", "error", err)
	}
	a.logger.Info("user signed in", "email", user.Email)

	if err := a.Bootstrap(ctx); err != nil {
		a.logger.Warn("automatic search failed", "error", err)
	}
	return user, nil
}

// Search replaces the collection with the results for query. An empty query lets the
// fetcher use its default. At most one fetch is outstanding, across logout too.
func (a *App) Search(ctx context.Context, query string) error {
	query = strings.TrimSpace(query)

	a.mu.Lock()
	// Checked under mu so a concurrent Logout either precedes this or bumps the epoch after it.
	if !a.gate.Authenticated() {
		a.mu.Unlock()
		return ErrNotAuthenticated
	}
	if a.loading {
		a.mu.Unlock()
		return ErrSearchInProgress
	}
	a.loading = true
	a.hasSearched = true
	a.query = query
	epoch := a.epoch
	a.mu.Unlock()

	result := a.fetcher.FetchResult(ctx, query)

	a.mu.Lock()
	defer a.mu.Unlock()
	a.loading = false
	if a.epoch != epoch {
		a.logger.Debug("discarding search result after logout", "query", query)
		return nil
	}
	a.opportunities = result.Items
	a.source = result.Source

	a.logger.Info("search completed",
		"query", query,
		"source", result.Source,
		"count", len(result.Items),
	)
	return nil
}

// ToggleSave flips the saved state of id, persists the set and returns the new membership.
func (a *App) ToggleSave(ctx context.Context, id string) (bool, error) {
	if !a.gate.Authenticated() {
		return false, ErrNotAuthenticated
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return false, ErrInvalidID
	}

	// Persisted under the lock so writes land in toggle order.
	a.mu.Lock()
	defer a.mu.Unlock()
	saved := a.saved.Toggle(id)
	a.persistSaved(ctx, a.saved)
	return saved, nil
}

// SetFilters replaces the filter selection. Empty axes mean "All".
func (a *App) SetFilters(f types.FilterState) error {
	f = f.Normalize()
	if err := f.Validate(); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidFilter, types.ValidationMessage(err))
	}

	a.mu.Lock()
	a.filters = f
	a.mu.Unlock()
	return nil
}

// ResetFilters restores the all-wildcard selection.
func (a *App) ResetFilters() {
	a.mu.Lock()
	a.filters = types.DefaultFilters()
	a.mu.Unlock()
}

// SetViewMode switches between the full collection and the saved subset.
func (a *App) SetViewMode(mode types.ViewMode) error {
	if _, err := types.ParseViewMode(string(mode)); err != nil {
		return err
	}
	a.mu.Lock()
	a.viewMode = mode
	a.mu.Unlock()
	return nil
}

// Visible returns the filtered list for the current state.
func (a *App) Visible() []types.Opportunity {
	a.mu.Lock()
	defer a.mu.Unlock()
	return filter.Visible(a.opportunities, a.viewMode, a.saved, a.filters)
}

// Stats summarizes the whole loaded collection.
func (a *App) Stats() filter.Stats {
	a.mu.Lock()
	defer a.mu.Unlock()
	return filter.Summary(a.opportunities)
}

// SavedIDs returns the saved identifiers in sorted order.
func (a *App) SavedIDs() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.saved.IDs()
}

// Logout forgets the user and clears the collection and the saved set.
// Filters are left untouched, as is a fetch still in flight: it keeps the loading flag
// until it returns and its result is dropped.
func (a *App) Logout(ctx context.Context) error {
	if err := a.gate.Logout(); err != nil {
		return err
	}

	a.mu.Lock()
	a.epoch++
	a.opportunities = nil
	a.saved = types.NewSavedSet()
	a.viewMode = types.ViewDiscover
	a.hasSearched = false
	a.query = ""
	a.source = ""
	a.persistSaved(ctx, a.saved)
	a.mu.Unlock()

	if err := a.store.SaveUser(ctx, nil); err != nil {
		a.logger.Error("failed to remove persisted user", "error", err)
	}

	a.logger.Info("user signed out")
	return nil
}

// Session returns the gate state.
func (a *App) Session() session.Snapshot {
	return a.gate.Snapshot()
}

// Snapshot returns a copy of the full state.
func (a *App) Snapshot() State {
	sess := a.gate.Snapshot()

	a.mu.Lock()
	defer a.mu.Unlock()
	opportunities := make([]types.Opportunity, len(a.opportunities))
	copy(opportunities, a.opportunities)

	return State{
		Session:       sess,
		Opportunities: opportunities,
		Saved:         a.saved.IDs(),
		Filters:       a.filters,
		ViewMode:      a.viewMode,
		Loading:       a.loading,
		HasSearched:   a.hasSearched,
		Query:         a.query,
		Source:        a.source,
	}
}

func (a *App) persistSaved(ctx context.Context, saved types.SavedSet) {
	if err := a.store.SaveSavedIDs(ctx, saved); err != nil {
		a.logger.Error("failed to persist saved ids", "error", err)
	}
}
