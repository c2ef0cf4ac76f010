package assessment

// State identifies where an attempt is in its lifecycle.
type State int

const (
	// StateIdle means no attempt is in progress. Initial and reset state.
	StateIdle State = iota

	// StateInProgress means questions are loaded and being answered.
	StateInProgress

	// StateCompleted means the attempt was submitted and graded.
	StateCompleted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateInProgress:
		return "in_progress"
	case StateCompleted:
		return "completed"
	}
	return "unknown"
}
