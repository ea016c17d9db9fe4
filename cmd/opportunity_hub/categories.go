package main

import (
	"github.com/jonathan/opportunity-hub/internal/types"
	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the filter options",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		out := cmd.OutOrStdout()
		renderOptions(out, "Categories", types.CategoryOptions())
		renderOptions(out, "Types", types.TypeOptions())
		renderOptions(out, "Levels", types.LevelOptions())
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}
