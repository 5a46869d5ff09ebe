package http

import (
	"context"
	"log/slog"
	"net/http"
)

const HealthPath = "/healthz"

// HealthChecker reports whether a dependency can serve requests.
type HealthChecker interface {
	IsHealthy(ctx context.Context) (bool, error)
}

type healthResponse struct {
	Status string `json:"status"`
}

func (s *Service) handleHealth(w http.ResponseWriter, r *http.Request) error {
	healthy, err := s.healthChecker.IsHealthy(r.Context())
	if err != nil || !healthy {
		s.logger.WarnContext(r.Context(), "health check failed", slog.Any("error", err))
		return writeJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "unavailable"})
	}

	return writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}
