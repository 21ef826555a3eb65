// Package scheduler executes submitted jobs with bounded parallelism.
// Each submission is tracked by its own goroutine that waits for one of
// a fixed number of worker slots; waiters queue without bound, so
// submissions never fail under load. A failure inside one job never
// takes down a slot or affects other jobs.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/seantiz/loanops/internal/jobstore"
	"github.com/seantiz/loanops/internal/model"
)

// DefaultWorkers is the worker-slot count used when none is configured.
const DefaultWorkers = 3

// ErrDraining is returned by Submit once Drain has begun.
var ErrDraining = errors.New("scheduler is draining")

// Processor runs the operations workflow once for a loan ID.
type Processor interface {
	Process(ctx context.Context, loanID string, verbose bool) (*model.ProcessResult, error)
}

// Scheduler owns the worker slots and drives each job through its
// lifecycle: pending, processing, then completed or failed.
type Scheduler struct {
	store  *jobstore.Store
	proc   Processor
	slots  *semaphore.Weighted
	logger *slog.Logger

	mu       sync.Mutex
	draining bool
	wg       sync.WaitGroup
}

// New creates a scheduler with the given number of worker slots.
func New(store *jobstore.Store, proc Processor, workers int, logger *slog.Logger) *Scheduler {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	return &Scheduler{
		store:  store,
		proc:   proc,
		slots:  semaphore.NewWeighted(int64(workers)),
		logger: logger,
	}
}

// Submit enqueues execution for a job and returns immediately. The job
// must already exist in the store with status pending. Every accepted
// submission is eventually executed as long as the process stays alive.
func (s *Scheduler) Submit(jobID, loanID string, verbose bool) error {
	s.mu.Lock()
	if s.draining {
		s.mu.Unlock()
		return ErrDraining
	}
	s.wg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.wg.Done()
		s.execute(jobID, loanID, verbose)
	}()

	return nil
}

// execute claims a worker slot and runs one job to a terminal state.
// Transition errors are contract violations internal to the scheduler;
// they are logged and never propagate.
func (s *Scheduler) execute(jobID, loanID string, verbose bool) {
	if err := s.slots.Acquire(context.Background(), 1); err != nil {
		s.logger.Error("failed to acquire worker slot", "job_id", jobID, "error", err)
		return
	}
	defer s.slots.Release(1)

	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("job panicked", "job_id", jobID, "loan_id", loanID, "panic", r)
			if err := s.store.Fail(jobID, fmt.Sprintf("internal error: %v", r)); err != nil {
				s.logger.Error("failed to record panic outcome", "job_id", jobID, "error", err)
			}
		}
	}()

	if err := s.store.MarkProcessing(jobID); err != nil {
		s.logger.Error("failed to transition to processing", "job_id", jobID, "error", err)
		return
	}

	result, err := s.proc.Process(context.Background(), loanID, verbose)
	if err != nil {
		s.logger.Warn("job failed", "job_id", jobID, "loan_id", loanID, "error", err)
		if ferr := s.store.Fail(jobID, err.Error()); ferr != nil {
			s.logger.Error("failed to record job failure", "job_id", jobID, "error", ferr)
		}
		return
	}

	if err := s.store.Complete(jobID, result); err != nil {
		s.logger.Error("failed to record job completion", "job_id", jobID, "error", err)
	}
}

// Drain stops accepting new submissions and blocks until every queued
// and in-flight job has finished. No job is abandoned mid-execution.
func (s *Scheduler) Drain() {
	s.mu.Lock()
	s.draining = true
	s.mu.Unlock()
	s.wg.Wait()
}
