package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// ExecutionEventData captures a single cell execution.
type ExecutionEventData struct {
	SessionID    string
	StageID      string
	CellIndex    int
	Source       string
	Output       string
	Success      bool
	ErrorMessage string
	DurationMs   int64
}

// ValidationEventData captures a single criteria check.
type ValidationEventData struct {
	SessionID     string
	StageID       string
	CellIndex     int
	Passed        bool
	Strategy      string
	Category      string
	Detail        string
	ConfigProblem bool
}

// HintEventData captures a hint shown to the player.
type HintEventData struct {
	SessionID  string
	StageID    string
	CellIndex  int
	PlayerCode string
	HintText   string
}

// SessionEventData captures a session lifecycle transition.
type SessionEventData struct {
	SessionID       string
	Action          string
	StageID         string
	Executions      int
	StagesCompleted int
	DurationSecs    int64
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestRecord is a stored LLM request event with its metadata.
type LLMRequestRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// StageStats aggregates execution and validation history for one stage.
type StageStats struct {
	StageID     string
	Executions  int
	Failures    int
	Validations int
	Passes      int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendExecution records a cell execution event.
	AppendExecution(ctx context.Context, data ExecutionEventData) error

	// AppendValidation records a criteria check event.
	AppendValidation(ctx context.Context, data ValidationEventData) error

	// AppendHint records a hint event.
	AppendHint(ctx context.Context, data HintEventData) error

	// AppendSession records a session lifecycle event.
	AppendSession(ctx context.Context, data SessionEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// StageStats aggregates per-stage execution and validation counts.
	StageStats(ctx context.Context, stageID string) (StageStats, error)

	// CompletedStages returns the IDs of stages with at least one
	// passing validation, in first-pass order.
	CompletedStages(ctx context.Context) ([]string, error)

	// LLMRequests returns stored LLM request events, newest first.
	LLMRequests(ctx context.Context, opts QueryOpts) ([]LLMRequestRecord, error)
}

// SnapshotData captures the full playthrough state at a point in time.
type SnapshotData struct {
	Version         int                       `json:"version"`
	SessionID       string                    `json:"sessionId"`
	StageID         string                    `json:"stageId"`
	CompletedStages []string                  `json:"completedStages"`
	CellSources     map[string]map[int]string `json:"cellSources"`
}

// Snapshot represents a point-in-time capture of playthrough state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages playthrough state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}
