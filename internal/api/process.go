package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/seantiz/loanops/internal/loans"
)

// processRequest is the JSON body for POST /api/v1/process and
// POST /api/v1/process/async.
type processRequest struct {
	LoanID  string `json:"loan_id"`
	Verbose bool   `json:"verbose"`
}

// decodeProcessRequest parses and validates the shared request body.
func (s *Server) decodeProcessRequest(w http.ResponseWriter, r *http.Request) (processRequest, bool) {
	var req processRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return req, false
	}
	if req.LoanID == "" {
		s.writeError(w, http.StatusBadRequest, "loan_id is required")
		return req, false
	}
	return req, true
}

// handleProcess runs the full operations workflow synchronously,
// blocking the request for the duration of the run.
func (s *Server) handleProcess(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeProcessRequest(w, r)
	if !ok {
		return
	}

	result, err := s.processor.Process(r.Context(), req.LoanID, req.Verbose)
	if errors.Is(err, loans.ErrNotFound) {
		s.writeError(w, http.StatusNotFound, "loan file not found: "+req.LoanID)
		return
	}
	if err != nil {
		s.logger.Error("process loan", "loan_id", req.LoanID, "error", err)
		s.writeError(w, http.StatusInternalServerError, fmt.Sprintf("processing failed: %v", err))
		return
	}

	s.writeJSON(w, http.StatusOK, result)
}
