package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/seantiz/loanops/internal/loans"
)

func (s *Server) handleListLoans(w http.ResponseWriter, r *http.Request) {
	summaries := s.catalog.List()
	s.writeJSON(w, http.StatusOK, summaries)
}

func (s *Server) handleGetLoan(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	loan, err := s.catalog.Get(id)
	if errors.Is(err, loans.ErrNotFound) {
		s.writeError(w, http.StatusNotFound, "loan file not found: "+id)
		return
	}
	if err != nil {
		s.logger.Error("get loan", "loan_id", id, "error", err)
		s.writeError(w, http.StatusInternalServerError, "failed to read loan file")
		return
	}

	s.writeJSON(w, http.StatusOK, loan.Summary())
}
