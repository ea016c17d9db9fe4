package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var saveCmd = &cobra.Command{
	Use:   "save <id>",
	Short: "Save an opportunity, or remove it if it is already saved",
	Args:  cobra.ExactArgs(1),
	RunE:  runSave,
}

var savedCmd = &cobra.Command{
	Use:   "saved",
	Short: "List the saved opportunity IDs",
	Args:  cobra.NoArgs,
	RunE:  runSaved,
}

func init() {
	rootCmd.AddCommand(saveCmd, savedCmd)
}

func runSave(cmd *cobra.Command, args []string) error {
	env, err := newEnvironment(cmd.Context(), false)
	if err != nil {
		return err
	}
	defer env.Close()

	if err := env.requireUser(); err != nil {
		return err
	}

	saved, err := env.app.ToggleSave(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if saved {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", savedStyle.Render("★ Saved"), args[0])
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", args[0])
	}
	return nil
}

func runSaved(cmd *cobra.Command, _ []string) error {
	env, err := newEnvironment(cmd.Context(), false)
	if err != nil {
		return err
	}
	defer env.Close()

	if err := env.requireUser(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	ids := env.app.SavedIDs()
	if len(ids) == 0 {
		fmt.Fprintln(out, "No saved opportunities.")
		return nil
	}
	fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("%d saved", len(ids))))
	for _, id := range ids {
		fmt.Fprintf(out, "  %s\n", id)
	}
	return nil
}
