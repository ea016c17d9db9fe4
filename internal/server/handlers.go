package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/opportunity-hub/internal/app"
	"github.com/jonathan/opportunity-hub/internal/filter"
	"github.com/jonathan/opportunity-hub/internal/types"
)

// ChooseAuthRequest selects the entry form mode.
type ChooseAuthRequest struct {
	Mode string `json:"mode"`
}

// SearchRequest carries the free-text query. Empty uses the default query.
type SearchRequest struct {
	Query string `json:"query"`
}

// ViewModeRequest switches between discover and saved.
type ViewModeRequest struct {
	Mode string `json:"mode"`
}

// ListResponse is the visible list plus the counts shown in the header.
type ListResponse struct {
	Opportunities []types.Opportunity `json:"opportunities"`
	Count         int                 `json:"count"`
	Total         int                 `json:"total"`
	Filters       types.FilterState   `json:"filters"`
	ViewMode      types.ViewMode      `json:"viewMode"`
	Loading       bool                `json:"loading"`
	HasSearched   bool                `json:"hasSearched"`
}

// ToggleResponse reports the new saved membership of an opportunity.
type ToggleResponse struct {
	ID    string `json:"id"`
	Saved bool   `json:"saved"`
}

// FilterOptions lists the choices for each filter axis.
type FilterOptions struct {
	Categories []string `json:"categories"`
	Types      []string `json:"types"`
	Levels     []string `json:"levels"`
}

// FiltersResponse is the current selection plus its options.
type FiltersResponse struct {
	Filters types.FilterState `json:"filters"`
	Options FilterOptions     `json:"options"`
}

func (s *Server) handleGetSession(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.app.Session())
}

func (s *Server) handleChooseAuth(w http.ResponseWriter, r *http.Request) {
	var req ChooseAuthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	mode, err := types.ParseAuthMode(req.Mode)
	if err != nil {
		s.writeError(w, &ErrValidation{Field: "mode", Message: err.Error()})
		return
	}
	if err := s.app.ChooseAuth(mode); err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, s.app.Session())
}

func (s *Server) handleBack(w http.ResponseWriter, _ *http.Request) {
	if err := s.app.Back(); err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, s.app.Session())
}

// handleLogin blocks for the sign-in delay and the automatic first search.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req types.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if _, err := s.app.Login(r.Context(), req); err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, s.app.Session())
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := s.app.Logout(r.Context()); err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, s.app.Session())
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
			return
		}
	}
	if err := s.app.Search(r.Context(), req.Query); err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, s.listResponse())
}

func (s *Server) handleListOpportunities(w http.ResponseWriter, _ *http.Request) {
	if !s.app.Session().Authenticated() {
		s.writeError(w, app.ErrNotAuthenticated)
		return
	}
	s.jsonResponse(w, http.StatusOK, s.listResponse())
}

func (s *Server) handleStats(w http.ResponseWriter, _ *http.Request) {
	if !s.app.Session().Authenticated() {
		s.writeError(w, app.ErrNotAuthenticated)
		return
	}
	s.jsonResponse(w, http.StatusOK, s.app.Stats())
}

func (s *Server) handleListSaved(w http.ResponseWriter, _ *http.Request) {
	if !s.app.Session().Authenticated() {
		s.writeError(w, app.ErrNotAuthenticated)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string][]string{"ids": s.app.SavedIDs()})
}

func (s *Server) handleToggleSaved(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	saved, err := s.app.ToggleSave(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, ToggleResponse{ID: id, Saved: saved})
}

func (s *Server) handleGetFilters(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.filtersResponse())
}

func (s *Server) handleSetFilters(w http.ResponseWriter, r *http.Request) {
	var f types.FilterState
	if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.app.SetFilters(f); err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, s.filtersResponse())
}

func (s *Server) handleResetFilters(w http.ResponseWriter, _ *http.Request) {
	s.app.ResetFilters()
	s.jsonResponse(w, http.StatusOK, s.filtersResponse())
}

func (s *Server) handleSetViewMode(w http.ResponseWriter, r *http.Request) {
	var req ViewModeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	mode, err := types.ParseViewMode(req.Mode)
	if err != nil {
		s.writeError(w, &ErrValidation{Field: "mode", Message: err.Error()})
		return
	}
	if err := s.app.SetViewMode(mode); err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, s.listResponse())
}

func (s *Server) handleState(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.app.Snapshot())
}

func (s *Server) listResponse() ListResponse {
	state := s.app.Snapshot()
	visible := filter.Visible(state.Opportunities, state.ViewMode, types.NewSavedSet(state.Saved...), state.Filters)
	return ListResponse{
		Opportunities: visible,
		Count:         len(visible),
		Total:         len(state.Opportunities),
		Filters:       state.Filters,
		ViewMode:      state.ViewMode,
		Loading:       state.Loading,
		HasSearched:   state.HasSearched,
	}
}

func (s *Server) filtersResponse() FiltersResponse {
	return FiltersResponse{
		Filters: s.app.Snapshot().Filters,
		Options: FilterOptions{
			Categories: types.CategoryOptions(),
			Types:      types.TypeOptions(),
			Levels:     types.LevelOptions(),
		},
	}
}
