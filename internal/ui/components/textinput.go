package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/eduai/eduai/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with EduAI styling and an optional
// label rendered to the left of the field.
type TextInput struct {
	Model    textinput.Model
	Label    string
	Password bool
}

// NewTextInput creates a new styled text input. Password inputs echo dots
// instead of the typed characters.
func NewTextInput(label, placeholder string, password bool) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	if password {
		ti.EchoMode = textinput.EchoPassword
		ti.EchoCharacter = '•'
	}

	return TextInput{
		Model:    ti,
		Label:    label,
		Password: password,
	}
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// Focus gives the field keyboard focus.
func (t *TextInput) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur removes keyboard focus.
func (t *TextInput) Blur() {
	t.Model.Blur()
}

// Focused reports whether the field has keyboard focus.
func (t TextInput) Focused() bool {
	return t.Model.Focused()
}

// View renders the labeled input.
func (t TextInput) View() string {
	labelStyle := theme.InputLabel
	if t.Focused() {
		labelStyle = theme.InputFocused
	}
	label := labelStyle.Width(12).Render(t.Label)
	return lipgloss.JoinHorizontal(lipgloss.Top, label, t.Model.View())
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}
