package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/aretw0/lifecycle"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"notectl"
	"notectl/pkg/core"
	"notectl/pkg/state"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse notes interactively",
	Long: `Browse opens a full-screen view of your notes.

Keys: j/k move, tab toggles active/archived, a archives or restores,
d deletes, r refreshes, q quits.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		app, err := newApp()
		if err != nil {
			fatal("Error initializing notectl", err)
		}
		if err := requireAuth(app); err != nil {
			fatal("Error", err)
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		src := state.NewSource(app.Notes.Subscribe())
		if err := src.Start(ctx); err != nil {
			fatal("Error starting event source", err)
		}

		if err := app.Notes.Refresh(ctx); err != nil {
			fatal("Error loading notes", err)
		}

		m := newBrowseModel(ctx, app, src.Events())
		if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
			fatal("Error running browser", err)
		}
	},
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	archivedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// storeMsg reports a store event so the model re-reads the collection.
type storeMsg struct{ event lifecycle.Event }

// doneMsg reports a finished store operation.
type doneMsg struct{ err error }

type browseModel struct {
	ctx     context.Context
	app     *notectl.App
	events  <-chan lifecycle.Event
	spinner spinner.Model

	notes   []core.Note
	cursor  int
	view    state.View
	busy    bool
	lastErr error
}

func newBrowseModel(ctx context.Context, app *notectl.App, events <-chan lifecycle.Event) browseModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return browseModel{
		ctx:     ctx,
		app:     app,
		events:  events,
		spinner: sp,
		notes:   app.Notes.Notes(),
		view:    app.Notes.View(),
	}
}

// waitForActivity blocks on the store's event stream.
func (m browseModel) waitForActivity() tea.Cmd {
	return func() tea.Msg {
		e, ok := <-m.events
		if !ok {
			return nil
		}
		return storeMsg{event: e}
	}
}

func (m browseModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.waitForActivity())
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "j", "down":
			if m.cursor < len(m.notes)-1 {
				m.cursor++
			}
		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
			}
		case "tab":
			next := state.ViewArchived
			if m.view == state.ViewArchived {
				next = state.ViewActive
			}
			m.view = next
			return m.run(func() error { return m.app.Notes.SetView(m.ctx, next) })
		case "r":
			return m.run(func() error { return m.app.Notes.Refresh(m.ctx) })
		case "a":
			if note, ok := m.selected(); ok {
				if m.view == state.ViewArchived {
					return m.run(func() error {
						_, err := m.app.Notes.Unarchive(m.ctx, note.ID)
						return err
					})
				}
				return m.run(func() error {
					_, err := m.app.Notes.Archive(m.ctx, note.ID)
					return err
				})
			}
		case "d":
			if note, ok := m.selected(); ok {
				return m.run(func() error { return m.app.Notes.Delete(m.ctx, note.ID) })
			}
		}

	case storeMsg:
		m.notes = m.app.Notes.Notes()
		m.clamp()
		return m, m.waitForActivity()

	case doneMsg:
		m.busy = false
		m.lastErr = msg.err
		m.notes = m.app.Notes.Notes()
		m.clamp()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// run executes a store operation off the UI goroutine.
func (m browseModel) run(op func() error) (tea.Model, tea.Cmd) {
	m.busy = true
	m.lastErr = nil
	return m, func() tea.Msg {
		return doneMsg{err: op()}
	}
}

func (m browseModel) selected() (core.Note, bool) {
	if m.cursor < 0 || m.cursor >= len(m.notes) {
		return core.Note{}, false
	}
	return m.notes[m.cursor], true
}

func (m *browseModel) clamp() {
	if m.cursor >= len(m.notes) {
		m.cursor = len(m.notes) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m browseModel) View() string {
	var b strings.Builder

	header := "Notes"
	if m.view == state.ViewArchived {
		header = "Archive"
	}
	b.WriteString(titleStyle.Render(header))
	if m.busy {
		b.WriteString(" " + m.spinner.View())
	}
	b.WriteString("\n\n")

	if len(m.notes) == 0 {
		b.WriteString(dimStyle.Render("  (empty)") + "\n")
	}
	for i, note := range m.notes {
		line := fmt.Sprintf("%s  %s", note.Title, dimStyle.Render(note.UpdatedAt.Local().Format(timeFormat)))
		if chips := categoryChips(note); chips != "" {
			line += "  " + chips
		}
		if m.view == state.ViewArchived {
			line = archivedStyle.Render("[A] ") + line
		}
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("> ") + line + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}

	b.WriteString("\n")
	if m.lastErr != nil {
		b.WriteString(errStyle.Render("error: "+m.lastErr.Error()) + "\n")
	}
	b.WriteString(dimStyle.Render("j/k move · tab archive view · a archive/restore · d delete · r refresh · q quit"))
	return b.String()
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
