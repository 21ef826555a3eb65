// Package archive keeps a durable record of completed processing runs.
// Job lifecycle state stays in memory; the archive only stores result
// rows so aggregate stats survive restarts alongside the report files.
package archive

import (
	"context"

	"github.com/seantiz/loanops/internal/model"
)

// RunStats holds aggregate processing statistics.
type RunStats struct {
	Total              int            `json:"total"`
	CountByStatus      map[string]int `json:"count_by_status"`
	AvgDurationSeconds float64        `json:"avg_duration_seconds"`
}

// Archive defines the persistence operations for processing results.
type Archive interface {
	RecordResult(ctx context.Context, r *model.ProcessResult) error
	Stats(ctx context.Context) (*RunStats, error)
	Close() error
}
