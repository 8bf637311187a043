package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"notectl"
)

var (
	listArchived bool
	listCategory string
	listJSON     bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes",
	Long:  `List shows the active notes. Use --archived for the archive and --category to narrow active notes to one category.`,
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

		if listArchived && listCategory != "" {
			fatal("Error", fmt.Errorf("archived notes cannot be filtered by category"))
		}

		if listArchived {
			if err := app.Notes.SetView(ctx, notectl.ViewArchived); err != nil {
				fatal("Error listing notes", err)
			}
		} else if listCategory != "" {
			if err := app.Categories.Refresh(ctx); err != nil {
				fatal("Error loading categories", err)
			}
			cat, ok := app.Categories.Find(listCategory)
			if !ok {
				fatal("Error", fmt.Errorf("unknown category %q", listCategory))
			}
			if err := app.Notes.SetFilter(ctx, cat.ID); err != nil {
				fatal("Error listing notes", err)
			}
		} else {
			if err := app.Notes.Refresh(ctx); err != nil {
				fatal("Error listing notes", err)
			}
		}

		notes := app.Notes.Notes()

		if listJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(notes); err != nil {
				fatal("Error encoding JSON", err)
			}
			return
		}

		if len(notes) == 0 {
			fmt.Println("No notes found")
			return
		}
		renderNotes(notes)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listArchived, "archived", false, "Show archived notes")
	listCmd.Flags().StringVar(&listCategory, "category", "", "Filter active notes by category (id or name)")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
}
