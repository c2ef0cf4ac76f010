package assessment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/eduai/eduai/internal/api"
)

// Service is the slice of the platform API the runner drives.
type Service interface {
	StartAssessment(ctx context.Context, subjectID int64) (*api.StartAssessmentResponse, error)
	SubmitAssessment(ctx context.Context, assessmentID int64, req api.SubmitAssessmentRequest) (*api.AssessmentResult, error)
}

// Answer is the learner's recorded choice for one question.
type Answer struct {
	QuestionID int64
	Choice     string
	Seconds    int
}

// Runner drives one assessment attempt from start through per-question
// answering to batch submission. Answers accumulate client-side and are
// sent to the server exactly once, when the last question is answered;
// an abandoned attempt is simply lost. The runner belongs to a single
// view instance and is not safe for concurrent use.
type Runner struct {
	svc Service
	now func() time.Time

	state         State
	attemptID     string
	assessmentID  int64
	subjectID     int64
	title         string
	questions     []api.Question
	currentIndex  int
	answers       []Answer
	answered      map[int64]bool
	questionStart time.Time
	results       *api.AssessmentResult
	startInFlight bool
}

// NewRunner creates an idle Runner.
func NewRunner(svc Service) *Runner {
	return &Runner{
		svc:      svc,
		now:      time.Now,
		state:    StateIdle,
		answered: make(map[int64]bool),
	}
}

// State returns the current lifecycle state.
func (r *Runner) State() State { return r.state }

// AttemptID returns the client-side id tagging this attempt, empty when Idle.
func (r *Runner) AttemptID() string { return r.attemptID }

// AssessmentID returns the server-issued attempt id, zero when Idle.
func (r *Runner) AssessmentID() int64 { return r.assessmentID }

// SubjectID returns the subject this attempt was started for.
func (r *Runner) SubjectID() int64 { return r.subjectID }

// Title returns the server-issued attempt title.
func (r *Runner) Title() string { return r.title }

// Questions returns the fixed question sequence of the attempt.
func (r *Runner) Questions() []api.Question { return r.questions }

// Results returns the graded outcome, nil until Completed.
func (r *Runner) Results() *api.AssessmentResult { return r.results }

// Answers returns a copy of the answers recorded so far, in question order.
func (r *Runner) Answers() []Answer {
	out := make([]Answer, len(r.answers))
	copy(out, r.answers)
	return out
}

// Progress returns how many questions are answered and the total count.
func (r *Runner) Progress() (answered, total int) {
	return len(r.answers), len(r.questions)
}

// Start opens a new attempt for the given subject. The runner must be Idle.
// A server response with zero questions is an error and leaves the runner
// Idle. Concurrent starts are rejected with ErrStartInFlight.
func (r *Runner) Start(ctx context.Context, subjectID int64) error {
	if r.startInFlight {
		return ErrStartInFlight
	}
	if r.state != StateIdle {
		return ErrAttemptActive
	}

	r.startInFlight = true
	defer func() { r.startInFlight = false }()

	resp, err := r.svc.StartAssessment(ctx, subjectID)
	if err != nil {
		return err
	}
	if len(resp.Questions) == 0 {
		return ErrNoQuestions
	}

	r.attemptID = uuid.New().String()
	r.assessmentID = resp.AssessmentID
	r.subjectID = subjectID
	r.title = resp.Title
	r.questions = resp.Questions
	r.currentIndex = 0
	r.answers = nil
	r.answered = make(map[int64]bool)
	r.results = nil
	r.state = StateInProgress
	r.questionStart = r.now()
	return nil
}

// CurrentQuestion returns the question at the cursor. An out-of-range
// cursor (stale re-render, programming error) forces a silent reset to
// Idle and returns nil rather than handing the view undefined content.
func (r *Runner) CurrentQuestion() *api.Question {
	if r.state != StateInProgress {
		return nil
	}
	if r.currentIndex < 0 || r.currentIndex >= len(r.questions) {
		r.Reset()
		return nil
	}
	q := r.questions[r.currentIndex]
	return &q
}

// Answer records the choice for the current question and advances the
// cursor by exactly one, resetting the per-question clock. Answering the
// final question submits the whole batch; if that submission fails,
// nothing is mutated and the caller may retry the answer.
func (r *Runner) Answer(ctx context.Context, choice string) error {
	if r.state != StateInProgress {
		return ErrNotInProgress
	}
	q := r.CurrentQuestion()
	if q == nil {
		return ErrNotInProgress
	}

	ans := Answer{
		QuestionID: q.ID,
		Choice:     choice,
		Seconds:    r.elapsed(),
	}

	if r.currentIndex == len(r.questions)-1 {
		results, err := r.submit(ctx, ans)
		if err != nil {
			return err
		}
		r.record(ans)
		r.results = results
		r.state = StateCompleted
		return nil
	}

	r.record(ans)
	r.questionStart = r.now()
	return nil
}

// Reset discards all attempt state and returns the runner to Idle. This is
// the only way out of Completed, and the only recycling path generally.
func (r *Runner) Reset() {
	r.state = StateIdle
	r.attemptID = ""
	r.assessmentID = 0
	r.subjectID = 0
	r.title = ""
	r.questions = nil
	r.currentIndex = 0
	r.answers = nil
	r.answered = make(map[int64]bool)
	r.results = nil
}

// record commits an answer and advances the cursor.
func (r *Runner) record(ans Answer) {
	r.answers = append(r.answers, ans)
	r.answered[ans.QuestionID] = true
	r.currentIndex++
}

// elapsed returns whole seconds since the current question was presented,
// clamped at zero. No upper bound is enforced client-side.
func (r *Runner) elapsed() int {
	secs := int(r.now().Sub(r.questionStart).Seconds())
	if secs < 0 {
		return 0
	}
	return secs
}

// submit sends the accumulated answers plus the final one in a single batch.
func (r *Runner) submit(ctx context.Context, last Answer) (*api.AssessmentResult, error) {
	batch := make([]api.AnswerSubmission, 0, len(r.answers)+1)
	for _, a := range r.answers {
		batch = append(batch, api.AnswerSubmission{
			QuestionID:       a.QuestionID,
			Answer:           a.Choice,
			TimeTakenSeconds: a.Seconds,
		})
	}
	batch = append(batch, api.AnswerSubmission{
		QuestionID:       last.QuestionID,
		Answer:           last.Choice,
		TimeTakenSeconds: last.Seconds,
	})

	return r.svc.SubmitAssessment(ctx, r.assessmentID, api.SubmitAssessmentRequest{Answers: batch})
}
