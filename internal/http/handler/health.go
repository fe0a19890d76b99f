package handler

import (
	"encoding/json"
	"net/http"

	"conduit/internal/http/handler/middleware"

	"go.uber.org/zap"
)

const HealthPath = "/health"

type HealthHandler struct {
	logs *zap.SugaredLogger
	db   Pinger
}

func NewHealthHandler(logger *zap.SugaredLogger, db Pinger) *HealthHandler {
	return &HealthHandler{
		logs: logger,
		db:   db,
	}
}

// HandleHealth reports UP while the database answers a ping.
func (h *HealthHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	status, code := "UP", http.StatusOK
	if err := h.db.Ping(r.Context()); err != nil {
		status, code = "DOWN", http.StatusServiceUnavailable
		h.logs.Errorw("health check failed",
			"error", err,
			"request_id", middleware.RequestIDFrom(r.Context()))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": status})
}
