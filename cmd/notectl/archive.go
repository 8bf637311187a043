package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var archiveCmd = &cobra.Command{
	Use:   "archive [id]",
	Short: "Move a note to the archive",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		app, err := newApp()
		if err != nil {
			fatal("Error initializing notectl", err)
		}
		if err := requireAuth(app); err != nil {
			fatal("Error", err)
		}

		note, err := app.Notes.Archive(context.Background(), args[0])
		if err != nil {
			fatal("Error archiving note", err)
		}

		fmt.Printf("Note archived: %s\n", note.ID)
	},
}

var unarchiveCmd = &cobra.Command{
	Use:   "unarchive [id]",
	Short: "Restore a note from the archive",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		app, err := newApp()
		if err != nil {
			fatal("Error initializing notectl", err)
		}
		if err := requireAuth(app); err != nil {
			fatal("Error", err)
		}

		note, err := app.Notes.Unarchive(context.Background(), args[0])
		if err != nil {
			fatal("Error unarchiving note", err)
		}

		fmt.Printf("Note restored: %s\n", note.ID)
	},
}

func init() {
	rootCmd.AddCommand(archiveCmd)
	rootCmd.AddCommand(unarchiveCmd)
}
