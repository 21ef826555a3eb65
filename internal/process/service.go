// Package process runs the operations workflow once per call,
// synchronously, measuring wall-clock duration and persisting the
// report artifact. Both the direct API path and the async worker pool
// go through this service.
package process

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/seantiz/loanops/internal/archive"
	"github.com/seantiz/loanops/internal/loans"
	"github.com/seantiz/loanops/internal/model"
	"github.com/seantiz/loanops/internal/workflow"
)

// summaryLimit bounds the result excerpt returned inline in API responses.
const summaryLimit = 500

// Service ties together loan resolution, the workflow runner, artifact
// persistence, and the result archive.
type Service struct {
	catalog *loans.Catalog
	runner  workflow.Runner
	archive archive.Archive
	outDir  string
	logger  *slog.Logger
}

// NewService creates a processing service writing report artifacts to outDir.
func NewService(catalog *loans.Catalog, runner workflow.Runner, arc archive.Archive, outDir string, logger *slog.Logger) *Service {
	return &Service{
		catalog: catalog,
		runner:  runner,
		archive: arc,
		outDir:  outDir,
		logger:  logger,
	}
}

// Process resolves the loan, runs the workflow with timing, writes the
// report artifact, and returns the result. Lookup failures and workflow
// failures propagate to the caller; nothing is retried here.
func (s *Service) Process(ctx context.Context, loanID string, verbose bool) (*model.ProcessResult, error) {
	loan, err := s.catalog.Get(loanID)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	body, err := s.runner.Run(ctx, loan, verbose)
	if err != nil {
		return nil, fmt.Errorf("run workflow for %s: %w", loan.LoanID, err)
	}
	end := time.Now()
	duration := end.Sub(start).Seconds()

	outputFile, err := s.writeReport(loan.LoanID, end, duration, body)
	if err != nil {
		return nil, err
	}

	result := &model.ProcessResult{
		LoanID:          loan.LoanID,
		Status:          model.StatusCompleted,
		DurationSeconds: math.Round(duration*100) / 100,
		OutputFile:      outputFile,
		ResultSummary:   summarize(body),
		ProcessedAt:     end.UTC(),
	}

	// Archive failures are logged, not surfaced: the run itself succeeded
	// and the artifact is already on disk.
	if err := s.archive.RecordResult(ctx, result); err != nil {
		s.logger.Error("failed to archive result", "loan_id", loan.LoanID, "error", err)
	}

	return result, nil
}

// writeReport persists the artifact for one run: header metadata
// followed by the full report body, named deterministically by loan ID.
func (s *Service) writeReport(loanID string, end time.Time, duration float64, body string) (string, error) {
	path := filepath.Join(s.outDir, fmt.Sprintf("%s_operations_report.md", loanID))

	var b strings.Builder
	fmt.Fprintf(&b, "# Loan Operations Report: %s\n\n", loanID)
	fmt.Fprintf(&b, "**Generated:** %s\n", end.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "**Processing Time:** %.1f seconds\n\n", duration)
	b.WriteString("---\n\n")
	b.WriteString(body)

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("write report for %s: %w", loanID, err)
	}
	return path, nil
}

// summarize truncates the report body for inline responses.
func summarize(body string) string {
	if len(body) > summaryLimit {
		return body[:summaryLimit] + "..."
	}
	return body
}
