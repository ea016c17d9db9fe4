// Package discovery fetches opportunity listings from the language model, falling back to a canned
// dataset whenever the model cannot produce a usable answer.
package discovery

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/opportunity-hub/internal/llm"
	"github.com/jonathan/opportunity-hub/internal/prompts"
	"github.com/jonathan/opportunity-hub/internal/schemas"
	"github.com/jonathan/opportunity-hub/internal/types"
)

// DefaultQuery is used when the caller passes an empty query.
const DefaultQuery = "latest student opportunities global"

const (
	promptFile = "opportunities.json"
	promptKey  = "discover-opportunities"
	idPrefix   = "opp-"
)

// ErrNoAPIKey marks a fetch served from the fallback because no model client is configured.
var ErrNoAPIKey = errors.New("API key is missing")

// Source tells where a result's items came from.
type Source string

// Result sources
const (
	SourceRemote   Source = "remote"
	SourceFallback Source = "fallback"
)

// Result is the outcome of one fetch. Reason is empty for remote results.
type Result struct {
	Source Source
	Reason string
	Items  []types.Opportunity
}

// Options configures a Fetcher.
type Options struct {
	// Client is nil when no API key is configured.
	Client llm.Client
	Logger *slog.Logger
	// Now defaults to time.Now.
	Now  func() time.Time
	Tier llm.ModelTier
}

// Fetcher retrieves opportunities for a free-text query.
type Fetcher struct {
	client llm.Client
	logger *slog.Logger
	now    func() time.Time
	tier   llm.ModelTier
}

// NewFetcher creates a Fetcher.
func NewFetcher(opts Options) *Fetcher {
	f := &Fetcher{
		client: opts.Client,
		logger: opts.Logger,
		now:    opts.Now,
		tier:   opts.Tier,
	}
	if f.logger == nil {
		f.logger = slog.Default()
	}
	if f.now == nil {
		f.now = time.Now
	}
	if f.tier == "" {
		f.tier = llm.TierStandard
	}
	return f
}

// Fetch returns opportunities for query. It never fails and never returns an empty slice.
func (f *Fetcher) Fetch(ctx context.Context, query string) []types.Opportunity {
	return f.FetchResult(ctx, query).Items
}

// FetchResult is Fetch with the source of the items and the fallback reason exposed.
func (f *Fetcher) FetchResult(ctx context.Context, query string) Result {
	query = strings.TrimSpace(query)
	if query == "" {
		query = DefaultQuery
	}

	if f.client == nil {
		f.logger.Warn("no API key configured, serving fallback opportunities")
		return fallback(ErrNoAPIKey)
	}

	start := f.now()
	items, err := f.fetchRemote(ctx, query)
	if err != nil {
		f.logger.Error("opportunity fetch failed, serving fallback opportunities",
			"query", query,
			"reason", err.Error(),
		)
		return fallback(err)
	}

	f.logger.Info("fetched opportunities",
		"query", query,
		"count", len(items),
		"model", f.client.GetModel(f.tier),
		"duration", f.now().Sub(start),
	)
	return Result{Source: SourceRemote, Items: items}
}

func (f *Fetcher) fetchRemote(ctx context.Context, query string) ([]types.Opportunity, error) {
	prompt, err := f.buildPrompt(query)
	if err != nil {
		return nil, err
	}

	responseText, err := f.client.GenerateJSON(ctx, prompt, f.tier, responseSchema())
	if err != nil {
		return nil, &APICallError{Message: "failed to generate content from LLM", Cause: err}
	}

	responseText = llm.CleanJSONBlock(responseText)
	if strings.TrimSpace(responseText) == "" {
		return nil, &APICallError{Message: "empty response from LLM"}
	}

	return parseResponse(responseText)
}

func (f *Fetcher) buildPrompt(query string) (string, error) {
	return prompts.Render(promptFile, promptKey, map[string]string{
		"Query":      query,
		"Date":       f.now().Format(types.DateLayout),
		"Categories": strings.Join(stringsOf(types.AllCategories()), ", "),
		"Levels":     strings.Join(stringsOf(types.AllLevels()), ", "),
		"Types":      strings.Join(stringsOf(types.AllTypes()), ", "),
	})
}

// parseResponse validates the model output and stamps local ids and the verified flag.
func parseResponse(jsonText string) ([]types.Opportunity, error) {
	if err := schemas.ValidateOpportunities(jsonText); err != nil {
		return nil, &ParseError{Message: "response does not match opportunities schema", Cause: err}
	}

	var items []types.Opportunity
	if err := json.Unmarshal([]byte(jsonText), &items); err != nil {
		return nil, &ParseError{Message: "failed to parse JSON response", Cause: err}
	}
	if len(items) == 0 {
		return nil, &ParseError{Message: "response contained no opportunities"}
	}

	for i := range items {
		items[i].ID = idPrefix + uuid.NewString()
		items[i].IsVerified = true
	}
	return items, nil
}

func fallback(reason error) Result {
	return Result{
		Source: SourceFallback,
		Reason: reason.Error(),
		Items:  FallbackOpportunities(),
	}
}
