package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var deleteYes bool

var deleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a note permanently",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		app, err := newApp()
		if err != nil {
			fatal("Error initializing notectl", err)
		}
		if err := requireAuth(app); err != nil {
			fatal("Error", err)
		}

		id := args[0]
		if !deleteYes {
			answer := prompt(fmt.Sprintf("Delete note %s? [y/N] ", id))
			if !strings.EqualFold(answer, "y") && !strings.EqualFold(answer, "yes") {
				fmt.Println("Aborted")
				return
			}
		}

		if err := app.Notes.Delete(context.Background(), id); err != nil {
			fatal("Error deleting note", err)
		}

		fmt.Printf("Note deleted: %s\n", id)
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Skip the confirmation prompt")
}
