package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"notectl"
)

var categoryColor string

var categoryCmd = &cobra.Command{
	Use:     "category",
	Aliases: []string{"cat"},
	Short:   "Manage categories",
}

var categoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all categories",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		app, err := newApp()
		if err != nil {
			fatal("Error initializing notectl", err)
		}
		if err := requireAuth(app); err != nil {
			fatal("Error", err)
		}

		if err := app.Categories.Refresh(context.Background()); err != nil {
			fatal("Error listing categories", err)
		}

		categories := app.Categories.Categories()
		if len(categories) == 0 {
			fmt.Println("No categories found")
			return
		}
		renderCategories(categories)
	},
}

var categoryNewCmd = &cobra.Command{
	Use:   "new [name]",
	Short: "Create a category",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		app, err := newApp()
		if err != nil {
			fatal("Error initializing notectl", err)
		}
		if err := requireAuth(app); err != nil {
			fatal("Error", err)
		}

		if err := app.Categories.Create(context.Background(), args[0], categoryColor); err != nil {
			fatal("Error creating category", err)
		}

		fmt.Printf("Category created: %s\n", args[0])
	},
}

var categoryRmCmd = &cobra.Command{
	Use:   "rm [id-or-name]",
	Short: "Delete a category",
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
		cat, err := resolveCategory(ctx, app, args[0])
		if err != nil {
			fatal("Error", err)
		}

		if err := app.Categories.Delete(ctx, cat.ID); err != nil {
			fatal("Error deleting category", err)
		}

		fmt.Printf("Category deleted: %s\n", cat.Name)
	},
}

var categoryAttachCmd = &cobra.Command{
	Use:   "attach [note-id] [category]",
	Short: "Attach a category to a note",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		app, err := newApp()
		if err != nil {
			fatal("Error initializing notectl", err)
		}
		if err := requireAuth(app); err != nil {
			fatal("Error", err)
		}

		ctx := context.Background()
		note, _, err := findNote(ctx, app.NoteService, args[0])
		if err != nil {
			fatal("Error", err)
		}
		cat, err := resolveCategory(ctx, app, args[1])
		if err != nil {
			fatal("Error", err)
		}

		attached, err := app.Categories.Attach(ctx, note, cat.ID)
		if err != nil {
			fatal("Error attaching category", err)
		}
		if !attached {
			fmt.Printf("Note %s already has category %s\n", note.ID, cat.Name)
			return
		}

		fmt.Printf("Category %s attached to note %s\n", cat.Name, note.ID)
	},
}

var categoryDetachCmd = &cobra.Command{
	Use:   "detach [note-id] [category]",
	Short: "Detach a category from a note",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		app, err := newApp()
		if err != nil {
			fatal("Error initializing notectl", err)
		}
		if err := requireAuth(app); err != nil {
			fatal("Error", err)
		}

		ctx := context.Background()
		cat, err := resolveCategory(ctx, app, args[1])
		if err != nil {
			fatal("Error", err)
		}

		if err := app.Categories.Detach(ctx, args[0], cat.ID); err != nil {
			fatal("Error detaching category", err)
		}

		fmt.Printf("Category %s detached from note %s\n", cat.Name, args[0])
	},
}

var categoryOfCmd = &cobra.Command{
	Use:   "of [note-id]",
	Short: "Show the categories of a note",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		app, err := newApp()
		if err != nil {
			fatal("Error initializing notectl", err)
		}
		if err := requireAuth(app); err != nil {
			fatal("Error", err)
		}

		categories, err := app.Categories.NoteCategories(context.Background(), args[0])
		if err != nil {
			fatal("Error listing note categories", err)
		}

		if len(categories) == 0 {
			fmt.Println("No categories attached")
			return
		}
		renderCategories(categories)
	},
}

// resolveCategory turns an id or a case-insensitive name into a category.
func resolveCategory(ctx context.Context, app *notectl.App, idOrName string) (notectl.Category, error) {
	if err := app.Categories.Refresh(ctx); err != nil {
		return notectl.Category{}, err
	}
	cat, ok := app.Categories.Find(idOrName)
	if !ok {
		return notectl.Category{}, fmt.Errorf("unknown category %q", idOrName)
	}
	return cat, nil
}

func init() {
	rootCmd.AddCommand(categoryCmd)
	categoryCmd.AddCommand(categoryListCmd)
	categoryCmd.AddCommand(categoryNewCmd)
	categoryCmd.AddCommand(categoryRmCmd)
	categoryCmd.AddCommand(categoryAttachCmd)
	categoryCmd.AddCommand(categoryDetachCmd)
	categoryCmd.AddCommand(categoryOfCmd)
	categoryNewCmd.Flags().StringVar(&categoryColor, "color", "#7aa2f7", "Display color (hex)")
}
