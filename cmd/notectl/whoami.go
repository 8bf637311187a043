package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"notectl/pkg/session"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		app, err := newApp()
		if err != nil {
			fatal("Error initializing notectl", err)
		}

		if app.Offline {
			fmt.Println("Offline mode (local data, no account)")
			return
		}
		if !app.Session.Authenticated() {
			fmt.Println("Not logged in")
			return
		}

		claims, err := session.ParseClaims(app.Session.Token())
		if err != nil {
			// The token still works for the backend even when we cannot read it.
			fmt.Println("Logged in (token is opaque)")
			return
		}

		if claims.Email != "" {
			fmt.Printf("Logged in as %s\n", claims.Email)
		} else {
			fmt.Printf("Logged in (subject %s)\n", claims.Subject)
		}
		if !claims.ExpiresAt.IsZero() {
			if claims.Expired() {
				fmt.Printf("Token expired at %s\n", claims.ExpiresAt.Local().Format(time.RFC1123))
			} else {
				fmt.Printf("Token valid until %s\n", claims.ExpiresAt.Local().Format(time.RFC1123))
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
