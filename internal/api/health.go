package api

import (
	"context"
	"net/http"
	"time"

	"github.com/lucianoaf8/InnSight/internal/api/respond"
	"github.com/lucianoaf8/InnSight/internal/store"
)

// HealthHandler reports service liveness and store connectivity.
type HealthHandler struct {
	store store.Store
}

func NewHealthHandler(st store.Store) *HealthHandler {
	return &HealthHandler{store: st}
}

// Ping handles GET /api/ping, the unauthenticated liveness probe.
func (h *HealthHandler) Ping(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSON(w, http.StatusOK, map[string]string{"message": "pong"})
}

// CheckHealth handles GET /api/health and degrades to 503 when the store
// is unreachable.
func (h *HealthHandler) CheckHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		respond.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "unhealthy",
			"store":  err.Error(),
		})
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}
