package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"notectl/pkg/core"
)

var viewJSON bool

var viewCmd = &cobra.Command{
	Use:   "view [id]",
	Short: "Show a single note",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		app, err := newApp()
		if err != nil {
			fatal("Error initializing notectl", err)
		}
		if err := requireAuth(app); err != nil {
			fatal("Error", err)
		}

		ctx := context.Background()
		note, archived, err := findNote(ctx, app.NoteService, args[0])
		if err != nil {
			fatal("Error viewing note", err)
		}

		if viewJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(note); err != nil {
				fatal("Error encoding JSON", err)
			}
			return
		}

		fmt.Printf("ID:          %s\n", note.ID)
		fmt.Printf("Title:       %s\n", note.Title)
		fmt.Printf("Description: %s\n", note.Description)
		fmt.Printf("Archived:    %t\n", archived)
		fmt.Printf("Created:     %s\n", note.CreatedAt.Local().Format(timeFormat))
		fmt.Printf("Updated:     %s\n", note.UpdatedAt.Local().Format(timeFormat))
		if chips := categoryChips(note); chips != "" {
			fmt.Printf("Categories:  %s\n", chips)
		}
	},
}

// findNote looks the note up in the active collection first, then the
// archive, since the backend has no lookup-by-id endpoint.
func findNote(ctx context.Context, svc *core.NoteService, id string) (core.Note, bool, error) {
	active, err := svc.ActiveNotes(ctx)
	if err != nil {
		return core.Note{}, false, err
	}
	for _, note := range active {
		if note.ID == id {
			return note, false, nil
		}
	}

	archivedNotes, err := svc.ArchivedNotes(ctx)
	if err != nil {
		return core.Note{}, false, err
	}
	for _, note := range archivedNotes {
		if note.ID == id {
			return note, true, nil
		}
	}

	return core.Note{}, false, fmt.Errorf("note %s: %w", id, core.ErrNotFound)
}

func init() {
	rootCmd.AddCommand(viewCmd)
	viewCmd.Flags().BoolVar(&viewJSON, "json", false, "Output in JSON format")
}
