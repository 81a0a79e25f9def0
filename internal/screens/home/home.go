package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/beemnet-bee/Elementia/internal/activity"
	"github.com/beemnet-bee/Elementia/internal/elements"
	"github.com/beemnet-bee/Elementia/internal/facts"
	"github.com/beemnet-bee/Elementia/internal/progress"
	"github.com/beemnet-bee/Elementia/internal/quiz"
	"github.com/beemnet-bee/Elementia/internal/router"
	"github.com/beemnet-bee/Elementia/internal/screen"
	"github.com/beemnet-bee/Elementia/internal/screens/dashboard"
	"github.com/beemnet-bee/Elementia/internal/screens/flashcards"
	quizscreen "github.com/beemnet-bee/Elementia/internal/screens/quiz"
	"github.com/beemnet-bee/Elementia/internal/screens/table"
	"github.com/beemnet-bee/Elementia/internal/ui/components"
	"github.com/beemnet-bee/Elementia/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu     components.Menu
	progress *progress.UserProgress
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen with injected dependencies.
func New(prog *progress.UserProgress, store *progress.Store, factSvc *facts.Service) *HomeScreen {
	items := []components.MenuItem{
		{Label: "PERIODIC TABLE", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: table.New(prog, store, factSvc)}
			}
		}},
		{Label: "QUIZ", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: quizscreen.New(prog, store)}
			}
		}},
		{Label: "FLASHCARDS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: flashcards.New(prog, store, quiz.ModeFlashcards)}
			}
		}},
		{Label: "DASHBOARD", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: dashboard.New(prog)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:     components.NewMenu(items),
		progress: prog,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, theme.Title.Width(width).Render(banner))
	sections = append(sections, theme.Subtitle.Width(width).Render("interactive periodic table trainer"))
	sections = append(sections, "")
	sections = append(sections, h.renderStats(width))
	sections = append(sections, "")

	menu := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(h.menu.View())
	sections = append(sections, menu)

	content := strings.Join(sections, "\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) renderStats(width int) string {
	stats := h.progress.QuizStats
	mastered := h.progress.MasteredCount()

	parts := []string{
		theme.Mastered.Render(fmt.Sprintf("◆ %d/%d mastered", mastered, elements.Count())),
		theme.Body.Render(fmt.Sprintf("★ %d day streak", stats.DayStreak)),
		theme.Body.Render(fmt.Sprintf("✓ %d%% accuracy", activity.AccuracyPercent(stats))),
	}

	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(strings.Join(parts, "    "))
}

// banner is the home screen wordmark.
var banner = strings.TrimLeft(`
███████╗██╗     ███████╗███╗   ███╗███████╗███╗   ██╗████████╗██╗ █████╗
██╔════╝██║     ██╔════╝████╗ ████║██╔════╝████╗  ██║╚══██╔══╝██║██╔══██╗
█████╗  ██║     █████╗  ██╔████╔██║█████╗  ██╔██╗ ██║   ██║   ██║███████║
██╔══╝  ██║     ██╔══╝  ██║╚██╔╝██║██╔══╝  ██║╚██╗██║   ██║   ██║██╔══██║
███████╗███████╗███████╗██║ ╚═╝ ██║███████╗██║ ╚████║   ██║   ██║██║  ██║
╚══════╝╚══════╝╚══════╝╚═╝     ╚═╝╚══════╝╚═╝  ╚═══╝   ╚═╝   ╚═╝╚═╝  ╚═╝`, "\n")
