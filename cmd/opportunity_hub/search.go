package main

import (
	"strings"
	"time"

	"github.com/jonathan/opportunity-hub/internal/types"
	"github.com/spf13/cobra"
)

var (
	searchCategory  string
	searchType      string
	searchLevel     string
	searchOnlyPaid  bool
	searchSavedOnly bool
	searchStats     bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search for opportunities and list the ones matching the filters",
	Long: `Fetches opportunities for the query (or a general default) and prints the ones that pass
the filters. Filter values must be one of the options printed by 'opportunity_hub categories'.`,
	Example: `  opportunity_hub search "AI internships in India" --paid
  opportunity_hub search --category "IT/Software" --level National
  opportunity_hub search --saved`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&searchCategory, "category", "c", types.Wildcard, "Category filter")
	searchCmd.Flags().StringVarP(&searchType, "type", "t", types.Wildcard, "Type filter")
	searchCmd.Flags().StringVarP(&searchLevel, "level", "l", types.Wildcard, "Level filter")
	searchCmd.Flags().BoolVar(&searchOnlyPaid, "paid", false, "Only paid opportunities")
	searchCmd.Flags().BoolVar(&searchSavedOnly, "saved", false, "Only saved opportunities")
	searchCmd.Flags().BoolVar(&searchStats, "stats", false, "Print a summary of the loaded collection")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	env, err := newEnvironment(cmd.Context(), false)
	if err != nil {
		return err
	}
	defer env.Close()

	if err := env.requireUser(); err != nil {
		return err
	}

	// Validate filters before spending a model call.
	if err := env.app.SetFilters(searchFilters()); err != nil {
		return err
	}
	mode := types.ViewDiscover
	if searchSavedOnly {
		mode = types.ViewSaved
	}
	if err := env.app.SetViewMode(mode); err != nil {
		return err
	}

	if err := env.app.Search(cmd.Context(), strings.Join(args, " ")); err != nil {
		return err
	}

	state := env.app.Snapshot()
	out := cmd.OutOrStdout()
	renderList(out, env.app.Visible(), len(state.Opportunities), types.NewSavedSet(state.Saved...), time.Now())
	if searchStats {
		renderStats(out, env.app.Stats())
	}
	return nil
}

func searchFilters() types.FilterState {
	return types.FilterState{
		Category: searchCategory,
		Type:     searchType,
		Level:    searchLevel,
		OnlyPaid: searchOnlyPaid,
	}
}
