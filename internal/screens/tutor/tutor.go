package tutor

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/eduai/eduai/internal/api"
	"github.com/eduai/eduai/internal/screen"
	"github.com/eduai/eduai/internal/ui/components"
	"github.com/eduai/eduai/internal/ui/layout"
	"github.com/eduai/eduai/internal/ui/theme"
)

// chatReplyMsg is sent when the tutor's answer arrives.
type chatReplyMsg struct {
	Reply *api.ChatResponse
	Err   error
}

// entry is one exchange in the transcript.
type entry struct {
	fromUser bool
	text     string
}

// Screen is the AI tutor chat. Every exchange goes through the platform;
// there is no local model.
type Screen struct {
	client     *api.Client
	input      components.TextInput
	transcript []entry
	waiting    bool
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the tutor chat screen.
func New(client *api.Client) *Screen {
	return &Screen{
		client: client,
		input:  components.NewTextInput("You", "Ask me anything about your studies...", false),
	}
}

func (s *Screen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *Screen) Title() string {
	return "AI Tutor"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case chatReplyMsg:
		s.waiting = false
		if msg.Err != nil {
			s.transcript = append(s.transcript, entry{text: "Sorry, I couldn't answer that: " + msg.Err.Error()})
			return s, nil
		}
		s.transcript = append(s.transcript, entry{text: msg.Reply.Response})
		return s, nil

	case tea.KeyMsg:
		if msg.String() == "enter" && !s.waiting {
			question := strings.TrimSpace(s.input.Value())
			if question == "" {
				return s, nil
			}
			s.transcript = append(s.transcript, entry{fromUser: true, text: question})
			s.input = components.NewTextInput("You", "Ask me anything about your studies...", false)
			s.waiting = true
			return s, tea.Batch(s.input.Init(), s.ask(question))
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *Screen) ask(question string) tea.Cmd {
	return func() tea.Msg {
		reply, err := s.client.Chat(context.Background(), api.ChatRequest{Message: question})
		return chatReplyMsg{Reply: reply, Err: err}
	}
}

func (s *Screen) View(width, height int) string {
	cw := width - 8
	if cw > 80 {
		cw = 80
	}
	if cw < 40 {
		cw = 40
	}

	userStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	tutorStyle := lipgloss.NewStyle().Foreground(theme.Text)
	wrap := lipgloss.NewStyle().Width(cw - 6)

	var lines []string
	if len(s.transcript) == 0 {
		lines = append(lines, theme.Hint.Render("Ask the tutor a question to get started."))
	}
	for _, e := range s.transcript {
		if e.fromUser {
			lines = append(lines, userStyle.Render("You: ")+wrap.Render(e.text))
		} else {
			lines = append(lines, tutorStyle.Render("Tutor: ")+wrap.Render(e.text))
		}
		lines = append(lines, "")
	}
	if s.waiting {
		lines = append(lines, theme.Hint.Render("Thinking..."))
	}

	// Keep only what fits above the input.
	maxLines := height - 6
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[len(lines)-maxLines:]
	}

	body := strings.Join(lines, "\n") + "\n\n" + s.input.View()
	card := theme.Card.Width(cw).Render(body)
	return layout.Center(card, width, height)
}
