package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to the notes backend",
	Long:  `Login exchanges your credentials for an access token and stores it locally. Every later command reuses the stored token.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		app, err := newApp()
		if err != nil {
			fatal("Error initializing notectl", err)
		}
		if app.Offline {
			fatal("Error", fmt.Errorf("no backend configured, login is not needed in offline mode"))
		}
		if err := requireAnon(app); err != nil {
			fatal("Error", err)
		}

		email := loginEmail
		if email == "" {
			email = prompt("Email: ")
		}
		password := loginPassword
		if password == "" {
			password = prompt("Password: ")
		}

		if err := app.Session.Login(context.Background(), email, password); err != nil {
			fatal("Error logging in", err)
		}

		fmt.Printf("Logged in as %s\n", email)
	},
}

func prompt(label string) string {
	fmt.Print(label)
	reader := bufio.NewReader(os.Stdin)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Account password (prompted when omitted)")
}
