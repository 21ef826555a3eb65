package api

import (
	"net/http"
	"time"
)

// version reported by the health endpoint.
const version = "1.0.0"

type healthResponse struct {
	Status               string    `json:"status"`
	Timestamp            time.Time `json:"timestamp"`
	Version              string    `json:"version"`
	SampleLoansAvailable int       `json:"sample_loans_available"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, healthResponse{
		Status:               "healthy",
		Timestamp:            time.Now().UTC(),
		Version:              version,
		SampleLoansAvailable: s.catalog.Count(),
	})
}
