package api

import (
	"context"
	"database/sql"
	"net/http"
	"time"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

// HealthChecker reports service liveness and database reachability.
type HealthChecker struct {
	db      *sql.DB
	started time.Time
}

func NewHealthChecker(db *sql.DB) *HealthChecker {
	return &HealthChecker{db: db, started: time.Now()}
}

// HealthCheck reports healthy when the database answers a ping within two
// seconds, degraded otherwise. The endpoint itself always returns 200 so
// load balancers can distinguish "up but degraded" from "down".
func (hc *HealthChecker) HealthCheck(w http.ResponseWriter, r *http.Request) {
	status := "healthy"

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()
	if hc.db == nil || hc.db.PingContext(ctx) != nil {
		status = "degraded"
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"status":    status,
		"timestamp": time.Now().UTC(),
		"uptime":    time.Since(hc.started).Round(time.Second).String(),
		"version":   Version,
	})
}
