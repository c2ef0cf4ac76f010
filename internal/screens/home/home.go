package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/eduai/eduai/internal/api"
	"github.com/eduai/eduai/internal/auth"
	"github.com/eduai/eduai/internal/history"
	"github.com/eduai/eduai/internal/router"
	"github.com/eduai/eduai/internal/screen"
	"github.com/eduai/eduai/internal/screens/assess"
	historyscreen "github.com/eduai/eduai/internal/screens/history"
	"github.com/eduai/eduai/internal/screens/login"
	"github.com/eduai/eduai/internal/screens/tutor"
	"github.com/eduai/eduai/internal/ui/components"
	"github.com/eduai/eduai/internal/ui/layout"
	"github.com/eduai/eduai/internal/ui/theme"
)

// Screen is the authenticated landing screen.
type Screen struct {
	store  *auth.Store
	client *api.Client
	hist   *history.Store
	menu   components.Menu
}

var _ screen.Screen = (*Screen)(nil)

// New creates the home screen for a signed-in learner.
func New(store *auth.Store, client *api.Client, hist *history.Store) *Screen {
	s := &Screen{store: store, client: client, hist: hist}

	items := []components.MenuItem{
		{Label: "TAKE ASSESSMENT", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: assess.New(client, hist)}
			}
		}},
		{Label: "AI TUTOR", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: tutor.New(client)}
			}
		}},
		{Label: "PAST RESULTS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: historyscreen.New(hist)}
			}
		}, Disabled: hist == nil},
		{Label: "SIGN OUT", Action: s.signOut},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	s.menu = components.NewMenu(items)
	return s
}

// signOut clears the session and returns to the login screen. A failed
// record write only means the old record lingers on disk until the next
// save; the in-memory session is cleared regardless.
func (s *Screen) signOut() tea.Cmd {
	_ = s.store.Logout()
	store, client, hist := s.store, s.client, s.hist
	return func() tea.Msg {
		return router.ResetScreenMsg{
			Screen: login.New(store, func() screen.Screen {
				return New(store, client, hist)
			}),
		}
	}
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Title() string {
	return "Home"
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *Screen) View(width, height int) string {
	sess := s.store.Current()

	var lines []string
	lines = append(lines, theme.Title.Render("EduAI"), "")
	if sess.User != nil {
		lines = append(lines, theme.Subtitle.Render(
			fmt.Sprintf("Welcome back, %s!", sess.User.FullName)), "")
	}
	lines = append(lines, s.menu.View())

	card := theme.Card.Width(44).Render(strings.Join(lines, "\n"))
	return layout.Center(card, width, height)
}
