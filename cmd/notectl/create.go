package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"notectl/pkg/core"
)

var (
	createTitle       string
	createDescription string
	createCategory    string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a note",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		app, err := newApp()
		if err != nil {
			fatal("Error initializing notectl", err)
		}
		if err := requireAuth(app); err != nil {
			fatal("Error", err)
		}

		ctx := context.Background()

		title := createTitle
		if title == "" {
			title = prompt("Title: ")
		}
		description := createDescription
		if description == "" {
			description = prompt("Description: ")
		}

		note, err := app.Notes.Create(ctx, core.CreateNoteInput{
			Title:       title,
			Description: description,
		})
		if err != nil {
			fatal("Error creating note", err)
		}

		if createCategory != "" {
			if err := app.Categories.Refresh(ctx); err != nil {
				fatal("Error loading categories", err)
			}
			cat, ok := app.Categories.Find(createCategory)
			if !ok {
				fatal("Error", fmt.Errorf("note %s created, but category %q does not exist", note.ID, createCategory))
			}
			if _, err := app.Categories.Attach(ctx, note, cat.ID); err != nil {
				fatal("Error attaching category", err)
			}
		}

		fmt.Printf("Note created: %s\n", note.ID)
	},
}

func init() {
	rootCmd.AddCommand(createCmd)
	createCmd.Flags().StringVar(&createTitle, "title", "", "Note title (prompted when omitted)")
	createCmd.Flags().StringVar(&createDescription, "description", "", "Note description (prompted when omitted)")
	createCmd.Flags().StringVar(&createCategory, "category", "", "Attach this category (id or name) after creating")
}
