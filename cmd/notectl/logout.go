package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Discard the stored session token",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		app, err := newApp()
		if err != nil {
			fatal("Error initializing notectl", err)
		}

		if err := app.Session.Logout(); err != nil {
			fatal("Error logging out", err)
		}

		fmt.Println("Logged out")
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
