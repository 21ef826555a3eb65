// Package jobstore is the in-memory registry of asynchronous job
// records. It is the only mutable state shared between the request
// path and the worker pool, so every access goes through the store's
// lock and callers only ever hold snapshots.
package jobstore

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/seantiz/loanops/internal/model"
)

// ErrNotFound is returned when no job exists for an ID.
var ErrNotFound = errors.New("job not found")

// ErrInvalidTransition is returned when a job status transition is not
// allowed. It signals a scheduling bug, not a user-facing condition;
// callers log it and carry on.
var ErrInvalidTransition = errors.New("invalid status transition")

// Store owns all job records for the process lifetime. Records are
// never evicted; see DESIGN.md for the retention gap.
type Store struct {
	mu   sync.RWMutex
	jobs map[string]*model.Job
}

// New creates an empty job store.
func New() *Store {
	return &Store{jobs: make(map[string]*model.Job)}
}

// Create inserts a fresh pending job for the loan and returns a snapshot.
// Safe under unbounded concurrent callers; ids never collide.
func (s *Store) Create(loanID string) model.Job {
	job := &model.Job{
		ID:        model.NewID(),
		LoanID:    loanID,
		Status:    model.StatusPending,
		CreatedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	s.jobs[job.ID] = job
	s.mu.Unlock()

	return *job
}

// Get returns a consistent snapshot of the job, or ErrNotFound.
func (s *Store) Get(id string) (model.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	job, ok := s.jobs[id]
	if !ok {
		return model.Job{}, ErrNotFound
	}
	return *job, nil
}

// Len returns the number of tracked jobs.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.jobs)
}

// MarkProcessing advances a pending job to processing.
func (s *Store) MarkProcessing(id string) error {
	return s.transition(id, model.StatusProcessing, nil, "")
}

// Complete moves a processing job to completed with its result.
func (s *Store) Complete(id string, result *model.ProcessResult) error {
	return s.transition(id, model.StatusCompleted, result, "")
}

// Fail moves a processing job to failed with a readable message.
func (s *Store) Fail(id, errMsg string) error {
	return s.transition(id, model.StatusFailed, nil, errMsg)
}

// transition atomically advances a job one state. The status, result,
// error, and completion timestamp are written under the same lock hold
// so readers never observe a torn record.
func (s *Store) transition(id, to string, result *model.ProcessResult, errMsg string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobs[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if !model.ValidTransition(job.Status, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, job.Status, to)
	}

	job.Status = to
	if model.TerminalStatus(to) {
		now := time.Now().UTC()
		job.CompletedAt = &now
		job.Result = result
		job.Error = errMsg
	}
	return nil
}
