package handler

import (
	"context"
	"net/http"
	"time"
)

// Pinger is anything that can report backend liveness (a pgx pool does;
// the memory store has nothing to ping).
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports service liveness and, when a pinger is supplied,
// backend reachability.
func HealthHandler(pinger Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if pinger != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
			defer cancel()
			if err := pinger.Ping(ctx); err != nil {
				RespondJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
				return
			}
		}
		RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
