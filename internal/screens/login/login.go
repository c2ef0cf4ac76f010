package login

import (
	"context"
	"errors"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/eduai/eduai/internal/api"
	"github.com/eduai/eduai/internal/auth"
	"github.com/eduai/eduai/internal/router"
	"github.com/eduai/eduai/internal/screen"
	"github.com/eduai/eduai/internal/ui/components"
	"github.com/eduai/eduai/internal/ui/layout"
	"github.com/eduai/eduai/internal/ui/theme"
)

// mode selects which form is shown.
type mode int

const (
	modeLogin mode = iota
	modeRegister
)

// authDoneMsg is sent when a login or registration attempt resolves.
type authDoneMsg struct {
	Err error
}

// Screen is the sign-in / sign-up form shown while logged out.
type Screen struct {
	store   *auth.Store
	onAuth  func() screen.Screen
	mode    mode
	fields  []components.TextInput
	focused int
	busy    bool
	errMsg  string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the login screen. onAuth builds the screen to show once
// authentication succeeds.
func New(store *auth.Store, onAuth func() screen.Screen) *Screen {
	s := &Screen{store: store, onAuth: onAuth}
	s.buildFields()
	return s
}

func (s *Screen) buildFields() {
	switch s.mode {
	case modeLogin:
		s.fields = []components.TextInput{
			components.NewTextInput("Email", "you@school.edu", false),
			components.NewTextInput("Password", "", true),
		}
	case modeRegister:
		s.fields = []components.TextInput{
			components.NewTextInput("Full name", "Your name", false),
			components.NewTextInput("Email", "you@school.edu", false),
			components.NewTextInput("Password", "", true),
			components.NewTextInput("Grade", "e.g. 8", false),
		}
	}
	s.focused = 0
	s.fields[0].Focus()
	for i := 1; i < len(s.fields); i++ {
		s.fields[i].Blur()
	}
}

func (s *Screen) Init() tea.Cmd {
	return s.fields[0].Init()
}

func (s *Screen) Title() string {
	if s.mode == modeRegister {
		return "Create Account"
	}
	return "Sign In"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Ctrl+T", Description: "Sign in / sign up"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case authDoneMsg:
		s.busy = false
		if msg.Err != nil {
			s.errMsg = friendlyAuthError(msg.Err)
			return s, nil
		}
		next := s.onAuth()
		return s, func() tea.Msg {
			return router.ResetScreenMsg{Screen: next}
		}

	case tea.KeyMsg:
		if s.busy {
			return s, nil
		}
		switch msg.String() {
		case "tab", "shift+tab":
			return s, s.cycleFocus(msg.String() == "shift+tab")
		case "ctrl+t":
			if s.mode == modeLogin {
				s.mode = modeRegister
			} else {
				s.mode = modeLogin
			}
			s.errMsg = ""
			s.buildFields()
			return s, s.fields[0].Init()
		case "enter":
			if s.focused < len(s.fields)-1 {
				return s, s.cycleFocus(false)
			}
			return s, s.submit()
		}
	}

	var cmd tea.Cmd
	s.fields[s.focused], cmd = s.fields[s.focused].Update(msg)
	return s, cmd
}

func (s *Screen) cycleFocus(backward bool) tea.Cmd {
	s.fields[s.focused].Blur()
	if backward {
		s.focused = (s.focused - 1 + len(s.fields)) % len(s.fields)
	} else {
		s.focused = (s.focused + 1) % len(s.fields)
	}
	return s.fields[s.focused].Focus()
}

func (s *Screen) submit() tea.Cmd {
	s.errMsg = ""

	switch s.mode {
	case modeLogin:
		email := strings.TrimSpace(s.fields[0].Value())
		password := s.fields[1].Value()
		if email == "" || password == "" {
			s.errMsg = "Email and password are required."
			return nil
		}
		s.busy = true
		return func() tea.Msg {
			return authDoneMsg{Err: s.store.Login(context.Background(), email, password)}
		}

	default:
		req := api.RegisterRequest{
			FullName: strings.TrimSpace(s.fields[0].Value()),
			Email:    strings.TrimSpace(s.fields[1].Value()),
			Password: s.fields[2].Value(),
			Grade:    strings.TrimSpace(s.fields[3].Value()),
		}
		if req.FullName == "" || req.Email == "" || req.Password == "" {
			s.errMsg = "Name, email and password are required."
			return nil
		}
		s.busy = true
		return func() tea.Msg {
			return authDoneMsg{Err: s.store.Register(context.Background(), req)}
		}
	}
}

func (s *Screen) View(width, height int) string {
	title := theme.Title.Render("EduAI")
	sub := theme.Subtitle.Render("Personalized learning, in your terminal")

	var lines []string
	lines = append(lines, title, sub, "")
	for i := range s.fields {
		lines = append(lines, s.fields[i].View())
	}

	switch {
	case s.busy:
		lines = append(lines, "", theme.Hint.Render("Signing in..."))
	case s.errMsg != "":
		lines = append(lines, "", theme.Incorrect.Render(s.errMsg))
	case s.mode == modeLogin:
		lines = append(lines, "", theme.Hint.Render("No account yet? Press Ctrl+T to sign up."))
	default:
		lines = append(lines, "", theme.Hint.Render("Already registered? Press Ctrl+T to sign in."))
	}

	card := theme.Card.Width(56).Render(strings.Join(lines, "\n"))
	return layout.Center(card, width, height)
}

// friendlyAuthError maps API failures to learner-facing text.
func friendlyAuthError(err error) string {
	if errors.Is(err, auth.ErrAuthInFlight) {
		return "Still signing in, hang on..."
	}
	if errors.Is(err, api.ErrUnauthorized) {
		return "Wrong email or password."
	}
	var apiErr *api.APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return "Could not reach the EduAI platform. Is it running?"
}
