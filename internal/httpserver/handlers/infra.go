package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/moscowmix/sitesync/internal/httpserver/deps"
)

type componentStatus struct {
	OK           bool   `json:"ok"`
	Products     *int   `json:"products,omitempty"`
	Posts        *int   `json:"posts,omitempty"`
	SaveInFlight bool   `json:"save_in_flight,omitempty"`
	Mode         string `json:"mode,omitempty"`
	Impact       string `json:"impact,omitempty"`
	Error        string `json:"error,omitempty"`
}

type infraResponse struct {
	SyncMode   string                     `json:"sync_mode"`
	Components map[string]componentStatus `json:"components"`
}

// Infra reports the state of the engine and its remote store backend.
// The engine can serve a cached snapshot with Redis down, so a Redis
// outage degrades the service rather than failing it.
func Infra(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		snap := d.Store.Snapshot()
		products := len(snap.Products)
		posts := len(snap.BlogPosts)

		components := map[string]componentStatus{
			"engine": {
				OK:           products > 0 || posts > 0,
				Products:     &products,
				Posts:        &posts,
				SaveInFlight: d.Store.SaveInFlight(),
			},
			"redis": checkRedis(d),
		}

		response := infraResponse{
			SyncMode:   determineSyncMode(components),
			Components: components,
		}

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(response)
	}
}

func determineSyncMode(components map[string]componentStatus) string {
	if engine, exists := components["engine"]; exists && !engine.OK {
		return "critical" // nothing to serve
	}
	if redis, exists := components["redis"]; exists && !redis.OK {
		return "cached-only" // serving local state, no reconciliation
	}
	return "syncing"
}

func checkRedis(d deps.Deps) componentStatus {
	if d.RedisClient == nil {
		return componentStatus{
			OK:     false,
			Mode:   "degraded",
			Impact: "reconciliation-disabled",
			Error:  "client not initialized",
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := d.RedisClient.Ping(ctx).Err(); err != nil {
		return componentStatus{
			OK:     false,
			Mode:   "degraded",
			Impact: "reconciliation-disabled",
			Error:  "timeout",
		}
	}

	return componentStatus{
		OK:     true,
		Mode:   "optimal",
		Impact: "reconciliation-enabled",
		Error:  "none",
	}
}
