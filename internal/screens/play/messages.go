package play

import (
	"time"

	"github.com/lucidbard/codequest/internal/hints"
)

// hintPollMsg is sent at short intervals while a hint is in flight.
type hintPollMsg time.Time

// hintReadyMsg is sent when the hint service produced a hint.
type hintReadyMsg struct {
	Hint *hints.Hint
	Err  error
}

// saveDoneMsg is sent when a snapshot save completes.
type saveDoneMsg struct {
	Err error
}

// clockTickMsg is sent every second to refresh the elapsed time.
type clockTickMsg time.Time
