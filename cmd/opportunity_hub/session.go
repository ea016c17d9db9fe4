package main

import (
	"fmt"

	"github.com/jonathan/opportunity-hub/internal/types"
	"github.com/spf13/cobra"
)

var (
	loginEmail    string
	loginPassword string
	loginSignup   bool
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and load the first batch of opportunities",
	Long: `Sign in with any well-formed email and a non-empty password. Credentials are not checked;
the display name is taken from the part of the email before '@'.`,
	RunE: runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and clear the saved list",
	RunE:  runLogout,
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in user",
	RunE:  runWhoami,
}

func init() {
	loginCmd.Flags().StringVarP(&loginEmail, "email", "e", "", "Email address (required)")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "Password (required)")
	loginCmd.Flags().BoolVar(&loginSignup, "signup", false, "Use the sign-up form instead of login")

	if err := loginCmd.MarkFlagRequired("email"); err != nil {
		panic(fmt.Sprintf("failed to mark email flag as required: %v", err))
	}
	if err := loginCmd.MarkFlagRequired("password"); err != nil {
		panic(fmt.Sprintf("failed to mark password flag as required: %v", err))
	}

	rootCmd.AddCommand(loginCmd, logoutCmd, whoamiCmd)
}

func runLogin(cmd *cobra.Command, _ []string) error {
	env, err := newEnvironment(cmd.Context(), false)
	if err != nil {
		return err
	}
	defer env.Close()

	out := cmd.OutOrStdout()
	if user := env.app.Session().User; user != nil {
		fmt.Fprintf(out, "Already signed in as %s (%s)\n", user.Name, user.Email)
		return nil
	}

	mode := types.AuthLogin
	if loginSignup {
		mode = types.AuthSignup
	}
	if err := env.app.ChooseAuth(mode); err != nil {
		return err
	}

	user, err := env.app.Login(cmd.Context(), types.LoginRequest{Email: loginEmail, Password: loginPassword})
	if err != nil {
		return err
	}

	fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("Welcome, %s!", user.Name)))
	fmt.Fprintf(out, "Loaded %d opportunities. Run 'opportunity_hub search' to browse them.\n", env.app.Stats().Total)
	return nil
}

func runLogout(cmd *cobra.Command, _ []string) error {
	env, err := newEnvironment(cmd.Context(), false)
	if err != nil {
		return err
	}
	defer env.Close()

	if err := env.requireUser(); err != nil {
		return err
	}
	if err := env.app.Logout(cmd.Context()); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Signed out.")
	return nil
}

func runWhoami(cmd *cobra.Command, _ []string) error {
	env, err := newEnvironment(cmd.Context(), false)
	if err != nil {
		return err
	}
	defer env.Close()

	out := cmd.OutOrStdout()
	user := env.app.Session().User
	if user == nil {
		fmt.Fprintln(out, "Not signed in.")
		return nil
	}

	fmt.Fprintf(out, "%s %s\n", savedStyle.Render("["+user.Initial()+"]"), titleStyle.Render(user.Name))
	fmt.Fprintf(out, "%s %s\n", labelStyle.Render("Email:"), valueStyle.Render(user.Email))
	fmt.Fprintf(out, "%s %d\n", labelStyle.Render("Saved:"), len(env.app.SavedIDs()))
	return nil
}
