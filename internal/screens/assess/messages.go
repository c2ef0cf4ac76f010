package assess

import (
	"time"

	"github.com/eduai/eduai/internal/api"
)

// subjectsLoadedMsg is sent when the subject list arrives.
type subjectsLoadedMsg struct {
	Subjects []api.Subject
	Err      error
}

// attemptStartedMsg is sent when the runner has opened an attempt.
type attemptStartedMsg struct {
	Err error
}

// answerRecordedMsg is sent when an answer was recorded, or the final
// batch was submitted.
type answerRecordedMsg struct {
	Err error
}

// attemptSavedMsg is sent after the completed attempt was written to the
// local history store.
type attemptSavedMsg struct {
	Err error
}

// timerTickMsg is sent every second to refresh the elapsed-time display.
type timerTickMsg time.Time
