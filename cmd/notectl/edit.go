package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"notectl/pkg/core"
)

var (
	editTitle       string
	editDescription string
)

var editCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Update a note's title or description",
	Long:  `Edit updates only the fields you pass. Omitted fields keep their current value.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		app, err := newApp()
		if err != nil {
			fatal("Error initializing notectl", err)
		}
		if err := requireAuth(app); err != nil {
			fatal("Error", err)
		}

		var in core.UpdateNoteInput
		if cmd.Flags().Changed("title") {
			in.Title = &editTitle
		}
		if cmd.Flags().Changed("description") {
			in.Description = &editDescription
		}
		if in.Title == nil && in.Description == nil {
			fatal("Error", fmt.Errorf("nothing to update, pass --title or --description"))
		}

		note, err := app.Notes.Update(context.Background(), args[0], in)
		if err != nil {
			fatal("Error updating note", err)
		}

		fmt.Printf("Note updated: %s\n", note.ID)
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().StringVar(&editTitle, "title", "", "New title")
	editCmd.Flags().StringVar(&editDescription, "description", "", "New description")
}
