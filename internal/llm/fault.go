package llm

import (
	"encoding/json"
	"fmt"
	"time"
)

// Fault classifies why a completion failed, which is what the retry loop
// keys on.
type Fault int

const (
	// FaultTransient covers network failures and 5xx responses. Retried
	// until attempts run out.
	FaultTransient Fault = iota

	// FaultThrottled is a 429. Retried, honoring the backend's
	// retry-after hint when it gives one.
	FaultThrottled

	// FaultBadOutput means the model answered but the content does not
	// satisfy the prompt's schema. Worth exactly one retry.
	FaultBadOutput

	// FaultTruncated means the response hit MaxTokens before the JSON
	// closed. Retrying the same prompt would truncate again, so it is
	// surfaced immediately.
	FaultTruncated
)

func (f Fault) String() string {
	switch f {
	case FaultThrottled:
		return "throttled"
	case FaultBadOutput:
		return "bad output"
	case FaultTruncated:
		return "truncated"
	default:
		return "transient"
	}
}

// Error is the single failure type every backend reports through.
type Error struct {
	Fault Fault

	// RetryAfter is the backend's throttle hint, zero when unknown.
	RetryAfter time.Duration

	// Raw holds the offending content for FaultBadOutput, so the event
	// log keeps what the model actually said.
	Raw json.RawMessage

	Err error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("llm: %s: %v", e.Fault, e.Err)
	}
	return fmt.Sprintf("llm: %s", e.Fault)
}

func (e *Error) Unwrap() error { return e.Err }

func transient(err error) *Error {
	return &Error{Fault: FaultTransient, Err: err}
}

func throttled(err error, after time.Duration) *Error {
	return &Error{Fault: FaultThrottled, RetryAfter: after, Err: err}
}

func badOutput(raw json.RawMessage, err error) *Error {
	return &Error{Fault: FaultBadOutput, Raw: raw, Err: err}
}

func truncated() *Error {
	return &Error{Fault: FaultTruncated, Err: fmt.Errorf("response cut off at the token cap")}
}

// classifyHTTP maps a status code to a fault the retry loop understands.
func classifyHTTP(status int, err error) *Error {
	switch {
	case status == 429:
		return throttled(err, 0)
	case status >= 500:
		return transient(err)
	default:
		return transient(err)
	}
}
