package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var resendEmail string

var verifyCmd = &cobra.Command{
	Use:   "verify [token]",
	Short: "Verify your email address",
	Long:  `Verify confirms the account using the token from the verification email. Use --resend to request a fresh email instead.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		app, err := newApp()
		if err != nil {
			fatal("Error initializing notectl", err)
		}
		if app.Offline {
			fatal("Error", fmt.Errorf("no backend configured, verification is not available in offline mode"))
		}

		if resendEmail != "" {
			if err := app.Auth.ResendVerification(context.Background(), resendEmail); err != nil {
				fatal("Error resending verification", err)
			}
			fmt.Printf("Verification email sent to %s\n", resendEmail)
			return
		}

		if len(args) == 0 {
			fatal("Error", fmt.Errorf("a verification token is required unless --resend is given"))
		}
		if err := app.Auth.VerifyEmail(context.Background(), args[0]); err != nil {
			fatal("Error verifying email", err)
		}

		fmt.Println("Email verified. You can log in now.")
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
	verifyCmd.Flags().StringVar(&resendEmail, "resend", "", "Resend the verification email to this address")
}
