package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var passwordCmd = &cobra.Command{
	Use:   "password",
	Short: "Recover account access",
}

var forgotCmd = &cobra.Command{
	Use:   "forgot [email]",
	Short: "Request a password reset email",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		app, err := newApp()
		if err != nil {
			fatal("Error initializing notectl", err)
		}
		if app.Offline {
			fatal("Error", fmt.Errorf("no backend configured"))
		}

		if err := app.Auth.ForgotPassword(context.Background(), args[0]); err != nil {
			fatal("Error requesting reset", err)
		}

		fmt.Printf("Password reset email sent to %s\n", args[0])
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset [token]",
	Short: "Set a new password using a reset token",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		app, err := newApp()
		if err != nil {
			fatal("Error initializing notectl", err)
		}
		if app.Offline {
			fatal("Error", fmt.Errorf("no backend configured"))
		}

		password := prompt("New password: ")
		if err := app.Auth.ResetPassword(context.Background(), args[0], password); err != nil {
			fatal("Error resetting password", err)
		}

		fmt.Println("Password updated. Log in with the new password.")
	},
}

func init() {
	rootCmd.AddCommand(passwordCmd)
	passwordCmd.AddCommand(forgotCmd)
	passwordCmd.AddCommand(resetCmd)
}
