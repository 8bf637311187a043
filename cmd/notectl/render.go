package main

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"notectl/pkg/core"
)

const timeFormat = "2006-01-02 15:04"

// categoryChip renders a category name in its configured color.
func categoryChip(cat core.Category) string {
	if cat.Color == "" {
		return cat.Name
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(cat.Color)).Render(cat.Name)
}

func categoryChips(note core.Note) string {
	var chips []string
	for _, rel := range note.Categories {
		chips = append(chips, categoryChip(rel.Category))
	}
	return strings.Join(chips, " ")
}

// renderNotes prints the notes as a table on stdout.
func renderNotes(notes []core.Note) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleDouble)
	t.AppendHeader(table.Row{"ID", "TITLE", "DESCRIPTION", "UPDATED", "CATEGORIES"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "DESCRIPTION", WidthMax: 48, WidthMaxEnforcer: text.WrapSoft},
	})
	for _, note := range notes {
		t.AppendRow(table.Row{
			note.ID,
			note.Title,
			note.Description,
			note.UpdatedAt.Local().Format(timeFormat),
			categoryChips(note),
		})
	}
	t.Render()
}

// renderCategories prints the categories as a table on stdout.
func renderCategories(categories []core.Category) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleDouble)
	t.AppendHeader(table.Row{"ID", "NAME", "COLOR"})
	for _, cat := range categories {
		t.AppendRow(table.Row{cat.ID, categoryChip(cat), cat.Color})
	}
	t.Render()
}
