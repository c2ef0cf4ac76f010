package assess

import (
	"context"
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/eduai/eduai/internal/api"
	"github.com/eduai/eduai/internal/assessment"
	"github.com/eduai/eduai/internal/history"
	"github.com/eduai/eduai/internal/screen"
	"github.com/eduai/eduai/internal/ui/components"
	"github.com/eduai/eduai/internal/ui/layout"
)

// phase tracks which view of the assessment flow is showing. The runner
// owns attempt state; the phase only drives rendering and key handling.
type phase int

const (
	phaseLoadingSubjects phase = iota
	phasePickSubject
	phaseStarting
	phaseQuestion
	phaseSubmitting
	phaseResults
)

// Screen walks the learner through one assessment: pick a subject, answer
// each question in order, then review the graded results.
type Screen struct {
	client  *api.Client
	runner  *assessment.Runner
	hist    *history.Store
	phase   phase
	picker  components.Menu
	choices components.ChoiceList

	subjects    []api.Subject
	subjectName string
	started     time.Time
	errMsg      string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the assessment screen. hist may be nil, in which case
// completed attempts are not recorded locally.
func New(client *api.Client, hist *history.Store) *Screen {
	return &Screen{
		client: client,
		runner: assessment.NewRunner(client),
		hist:   hist,
		phase:  phaseLoadingSubjects,
	}
}

func (s *Screen) Init() tea.Cmd {
	return s.loadSubjects()
}

func (s *Screen) Title() string {
	switch s.phase {
	case phaseResults:
		return "Results"
	case phaseQuestion, phaseSubmitting:
		return s.subjectName + " Assessment"
	}
	return "Assessment"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phasePickSubject:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose subject"},
			{Key: "Enter", Description: "Start"},
			{Key: "Esc", Description: "Back"},
		}
	case phaseQuestion:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose answer"},
			{Key: "Enter", Description: "Lock in"},
		}
	case phaseResults:
		return []layout.KeyHint{
			{Key: "R", Description: "Try another"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return nil
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case subjectsLoadedMsg:
		return s.handleSubjectsLoaded(msg)

	case attemptStartedMsg:
		return s.handleAttemptStarted(msg)

	case answerRecordedMsg:
		return s.handleAnswerRecorded(msg)

	case attemptSavedMsg:
		// Local history is best effort; a failed save never blocks results.
		return s, nil

	case timerTickMsg:
		if s.phase == phaseQuestion {
			return s, tick()
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *Screen) handleSubjectsLoaded(msg subjectsLoadedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	if len(msg.Subjects) == 0 {
		s.errMsg = "No subjects are available right now."
		return s, nil
	}

	s.subjects = msg.Subjects
	items := make([]components.MenuItem, 0, len(msg.Subjects))
	for _, sub := range msg.Subjects {
		sub := sub
		items = append(items, components.MenuItem{
			Label: sub.Name,
			Action: func() tea.Cmd {
				return s.startAttempt(sub)
			},
		})
	}
	s.picker = components.NewMenu(items)
	s.phase = phasePickSubject
	return s, nil
}

func (s *Screen) handleAttemptStarted(msg attemptStartedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.phase = phasePickSubject
		if errors.Is(msg.Err, assessment.ErrNoQuestions) {
			s.errMsg = "That subject has no questions yet."
		} else {
			s.errMsg = msg.Err.Error()
		}
		return s, nil
	}

	s.errMsg = ""
	s.phase = phaseQuestion
	s.started = time.Now()
	s.installQuestion()
	return s, tick()
}

func (s *Screen) handleAnswerRecorded(msg answerRecordedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		// A failed final submission leaves the attempt intact; put the
		// learner back on the question so they can retry.
		s.phase = phaseQuestion
		s.errMsg = "Submitting failed: " + msg.Err.Error()
		s.installQuestion()
		return s, tick()
	}

	s.errMsg = ""
	switch s.runner.State() {
	case assessment.StateCompleted:
		s.phase = phaseResults
		return s, s.saveAttempt()
	case assessment.StateInProgress:
		s.phase = phaseQuestion
		s.installQuestion()
		return s, nil
	default:
		// The runner recycled itself (cursor drifted out of range).
		s.phase = phasePickSubject
		return s, nil
	}
}

func (s *Screen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch s.phase {
	case phasePickSubject:
		var cmd tea.Cmd
		s.picker, cmd = s.picker.Update(msg)
		return s, cmd

	case phaseQuestion:
		if s.choices.Submitted {
			// An answer is in flight; ignore input until it resolves.
			return s, nil
		}
		var cmd tea.Cmd
		s.choices, cmd = s.choices.Update(msg)
		if s.choices.Submitted {
			return s, s.recordAnswer(s.choices.Choice())
		}
		return s, cmd

	case phaseResults:
		if msg.String() == "r" {
			s.runner.Reset()
			s.phase = phaseLoadingSubjects
			return s, s.loadSubjects()
		}
	}
	return s, nil
}

// installQuestion syncs the choice list with the runner's cursor.
func (s *Screen) installQuestion() {
	q := s.runner.CurrentQuestion()
	if q == nil {
		s.phase = phasePickSubject
		return
	}
	s.choices = components.NewChoiceList(q.QuestionText, q.Options)
}

func (s *Screen) loadSubjects() tea.Cmd {
	return func() tea.Msg {
		subjects, err := s.client.Subjects(context.Background())
		return subjectsLoadedMsg{Subjects: subjects, Err: err}
	}
}

func (s *Screen) startAttempt(sub api.Subject) tea.Cmd {
	s.phase = phaseStarting
	s.subjectName = sub.Name
	return func() tea.Msg {
		return attemptStartedMsg{Err: s.runner.Start(context.Background(), sub.ID)}
	}
}

func (s *Screen) recordAnswer(choice string) tea.Cmd {
	answered, total := s.runner.Progress()
	if answered == total-1 {
		s.phase = phaseSubmitting
	}
	return func() tea.Msg {
		return answerRecordedMsg{Err: s.runner.Answer(context.Background(), choice)}
	}
}

// saveAttempt records the graded attempt in local history.
func (s *Screen) saveAttempt() tea.Cmd {
	if s.hist == nil {
		return nil
	}
	res := s.runner.Results()
	if res == nil {
		return nil
	}
	attempt := history.Attempt{
		ID:             s.runner.AttemptID(),
		AssessmentID:   res.AssessmentID,
		Subject:        s.subjectName,
		Score:          res.Score,
		CorrectAnswers: res.CorrectAnswers,
		TotalQuestions: res.TotalQuestions,
		OverallLevel:   res.GapAnalysis.OverallLevel,
		CompletedAt:    time.Now(),
	}
	return func() tea.Msg {
		return attemptSavedMsg{Err: s.hist.Append(context.Background(), attempt)}
	}
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
