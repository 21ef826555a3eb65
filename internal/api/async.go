package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/seantiz/loanops/internal/jobstore"
	"github.com/seantiz/loanops/internal/loans"
)

// asyncProcessResponse is returned by POST /api/v1/process/async.
type asyncProcessResponse struct {
	JobID   string `json:"job_id"`
	LoanID  string `json:"loan_id"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// handleProcessAsync registers a pending job and enqueues execution,
// returning immediately. Poll /api/v1/jobs/{id} for the outcome.
func (s *Server) handleProcessAsync(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeProcessRequest(w, r)
	if !ok {
		return
	}

	// Verify the loan exists before creating a job record.
	if _, err := s.catalog.Get(req.LoanID); err != nil {
		if errors.Is(err, loans.ErrNotFound) {
			s.writeError(w, http.StatusNotFound, "loan file not found: "+req.LoanID)
			return
		}
		s.logger.Error("resolve loan for async job", "loan_id", req.LoanID, "error", err)
		s.writeError(w, http.StatusInternalServerError, "failed to read loan file")
		return
	}

	job := s.jobs.Create(req.LoanID)

	if err := s.scheduler.Submit(job.ID, req.LoanID, req.Verbose); err != nil {
		s.logger.Error("submit async job", "job_id", job.ID, "error", err)
		s.writeError(w, http.StatusServiceUnavailable, "server is shutting down")
		return
	}

	s.writeJSON(w, http.StatusAccepted, asyncProcessResponse{
		JobID:   job.ID,
		LoanID:  job.LoanID,
		Status:  job.Status,
		Message: "Job submitted. Poll /api/v1/jobs/{job_id} for status.",
	})
}

func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	job, err := s.jobs.Get(id)
	if errors.Is(err, jobstore.ErrNotFound) {
		s.writeError(w, http.StatusNotFound, "job not found: "+id)
		return
	}
	if err != nil {
		s.logger.Error("get job", "job_id", id, "error", err)
		s.writeError(w, http.StatusInternalServerError, "failed to get job")
		return
	}

	s.writeJSON(w, http.StatusOK, job)
}
