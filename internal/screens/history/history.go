package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/eduai/eduai/internal/history"
	"github.com/eduai/eduai/internal/screen"
	"github.com/eduai/eduai/internal/ui/layout"
	"github.com/eduai/eduai/internal/ui/theme"
)

const maxRows = 20

// attemptsLoadedMsg is sent when the local attempt history arrives.
type attemptsLoadedMsg struct {
	Attempts []history.Attempt
	Err      error
}

// Screen lists recent assessment attempts recorded on this machine.
type Screen struct {
	store    *history.Store
	attempts []history.Attempt
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*Screen)(nil)

// New creates the history screen.
func New(store *history.Store) *Screen {
	return &Screen{store: store}
}

func (s *Screen) Init() tea.Cmd {
	return func() tea.Msg {
		attempts, err := s.store.Recent(context.Background(), maxRows)
		return attemptsLoadedMsg{Attempts: attempts, Err: err}
	}
}

func (s *Screen) Title() string {
	return "Past Results"
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if m, ok := msg.(attemptsLoadedMsg); ok {
		s.loaded = true
		if m.Err != nil {
			s.errMsg = m.Err.Error()
		} else {
			s.attempts = m.Attempts
		}
	}
	return s, nil
}

func (s *Screen) View(width, height int) string {
	if !s.loaded {
		return layout.Center(theme.Hint.Render("Loading..."), width, height)
	}
	if s.errMsg != "" {
		return layout.Center(theme.Incorrect.Render(s.errMsg), width, height)
	}
	if len(s.attempts) == 0 {
		return layout.Center(theme.Hint.Render("No assessments taken yet."), width, height)
	}

	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var lines []string
	lines = append(lines, theme.Title.Render("Past Results"), "")
	lines = append(lines, dimStyle.Render(fmt.Sprintf("%-12s %-20s %8s %10s  %s",
		"Date", "Subject", "Score", "Correct", "Level")))
	for _, a := range s.attempts {
		lines = append(lines, theme.Body.Render(fmt.Sprintf("%-12s %-20s %7.0f%% %6d/%-3d  %s",
			a.CompletedAt.Local().Format("2006-01-02"),
			truncate(a.Subject, 20),
			a.Score,
			a.CorrectAnswers, a.TotalQuestions,
			a.OverallLevel,
		)))
	}

	card := theme.Card.Render(strings.Join(lines, "\n"))
	return layout.Center(card, width, height)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
