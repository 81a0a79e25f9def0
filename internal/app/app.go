// Package app wires the TUI together: it loads the progress aggregate,
// applies the day-streak decay check and runs the Bubble Tea program.
package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/beemnet-bee/Elementia/internal/facts"
	"github.com/beemnet-bee/Elementia/internal/progress"
	"github.com/beemnet-bee/Elementia/internal/router"
	"github.com/beemnet-bee/Elementia/internal/screen"
	"github.com/beemnet-bee/Elementia/internal/screens/home"
	"github.com/beemnet-bee/Elementia/internal/ui/layout"
)

// Options carries the dependencies for a TUI run.
type Options struct {
	Store *progress.Store

	// Facts is nil when no provider API key is configured; the table
	// screen degrades to a hint instead of a lookup.
	Facts *facts.Service
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router   *router.Router
	progress *progress.UserProgress
	width    int
	height   int
}

// newAppModel loads progress and builds the screen stack.
func newAppModel(ctx context.Context, opts Options) AppModel {
	prog := opts.Store.Load(ctx)

	// A missed day zeroes the streak before anything renders.
	if prog.CheckDecay(progress.Today()) {
		if err := opts.Store.Save(ctx, prog); err != nil {
			fmt.Fprintf(os.Stderr, "warning: saving progress: %v\n", err)
		}
	}

	homeScreen := home.New(prog, opts.Store, opts.Facts)
	return AppModel{
		router:   router.New(homeScreen),
		progress: prog,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(
		title,
		m.progress.MasteredCount(),
		m.progress.QuizStats.DayStreak,
		m.width,
	)

	footerHints := m.footerHints(active)
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// footerHints prefers the active screen's hints, falling back to the
// stock navigation set.
func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if provider, ok := active.(screen.KeyHintProvider); ok {
		if hints := provider.KeyHints(); hints != nil {
			return hints
		}
	}

	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(newAppModel(ctx, opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
