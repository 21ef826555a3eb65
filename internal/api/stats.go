package api

import (
	"net/http"
)

// statsResponse is the JSON response for GET /api/v1/stats.
type statsResponse struct {
	Total              int            `json:"total"`
	ByStatus           map[string]int `json:"by_status"`
	AvgDurationSeconds float64        `json:"avg_duration_seconds"`
	TrackedJobs        int            `json:"tracked_jobs"`
}

func (s *Server) handleGetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.archive.Stats(r.Context())
	if err != nil {
		s.logger.Error("get processing stats", "error", err)
		s.writeError(w, http.StatusInternalServerError, "failed to get stats")
		return
	}

	s.writeJSON(w, http.StatusOK, statsResponse{
		Total:              stats.Total,
		ByStatus:           stats.CountByStatus,
		AvgDurationSeconds: stats.AvgDurationSeconds,
		TrackedJobs:        s.jobs.Len(),
	})
}
