package model

import "time"

// Job status constants.
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// validTransitions maps each status to the set of statuses it may advance to.
// A job always passes through processing before reaching a terminal state.
var validTransitions = map[string]map[string]bool{
	StatusPending: {
		StatusProcessing: true,
	},
	StatusProcessing: {
		StatusCompleted: true,
		StatusFailed:    true,
	},
}

// ValidTransition reports whether advancing from one status to another is allowed.
func ValidTransition(from, to string) bool {
	targets, ok := validTransitions[from]
	if !ok {
		return false
	}
	return targets[to]
}

// TerminalStatus reports whether a status admits no further transitions.
func TerminalStatus(status string) bool {
	return status == StatusCompleted || status == StatusFailed
}

// ProcessResult is the outcome of one run of the operations workflow.
type ProcessResult struct {
	LoanID          string    `json:"loan_id"`
	Status          string    `json:"status"`
	DurationSeconds float64   `json:"duration_seconds"`
	OutputFile      string    `json:"output_file,omitempty"`
	ResultSummary   string    `json:"result_summary"`
	ProcessedAt     time.Time `json:"processed_at"`
}

// Job tracks one asynchronous processing request through its lifecycle.
// Result is populated only when the job completes, Error only when it
// fails; CompletedAt is set exactly once, at the terminal transition.
type Job struct {
	ID          string         `json:"job_id"`
	LoanID      string         `json:"loan_id"`
	Status      string         `json:"status"`
	Result      *ProcessResult `json:"result,omitempty"`
	Error       string         `json:"error,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	CompletedAt *time.Time     `json:"completed_at,omitempty"`
}
