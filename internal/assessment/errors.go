package assessment

import "errors"

var (
	// ErrNoQuestions means the server opened an attempt with an empty
	// question list. The runner stays Idle; callers surface this as a
	// failed start.
	ErrNoQuestions = errors.New("assessment has no questions")

	// ErrAttemptActive means Start was called while an attempt exists.
	// Reset first.
	ErrAttemptActive = errors.New("an attempt is already active")

	// ErrStartInFlight means a start request is already outstanding.
	ErrStartInFlight = errors.New("assessment start already in flight")

	// ErrNotInProgress means Answer was called outside an active attempt.
	ErrNotInProgress = errors.New("no assessment in progress")
)
