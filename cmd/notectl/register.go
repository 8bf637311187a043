package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"notectl/pkg/httpapi"
)

var (
	registerEmail     string
	registerPassword  string
	registerFirstName string
	registerLastName  string
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new account on the notes backend",
	Long:  `Register creates an account. The backend sends a verification email; confirm it with 'notectl verify' before logging in.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		app, err := newApp()
		if err != nil {
			fatal("Error initializing notectl", err)
		}
		if app.Offline {
			fatal("Error", fmt.Errorf("no backend configured, registration is not available in offline mode"))
		}
		if err := requireAnon(app); err != nil {
			fatal("Error", err)
		}

		email := registerEmail
		if email == "" {
			email = prompt("Email: ")
		}
		password := registerPassword
		if password == "" {
			password = prompt("Password: ")
		}

		in := httpapi.SignUpInput{
			Email:     email,
			Password:  password,
			FirstName: registerFirstName,
			LastName:  registerLastName,
		}
		if err := app.Auth.SignUp(context.Background(), in); err != nil {
			fatal("Error registering", err)
		}

		fmt.Printf("Account created for %s. Check your inbox for a verification email.\n", email)
	},
}

func init() {
	rootCmd.AddCommand(registerCmd)
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "Account email")
	registerCmd.Flags().StringVar(&registerPassword, "password", "", "Account password (prompted when omitted)")
	registerCmd.Flags().StringVar(&registerFirstName, "first-name", "", "First name")
	registerCmd.Flags().StringVar(&registerLastName, "last-name", "", "Last name")
}
