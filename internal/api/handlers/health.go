package handlers

import (
	"net/http"

	"github.com/month-planner/backend/internal/storage"
	"github.com/month-planner/backend/internal/store"
)

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status      string `json:"status"`
	DBConnected bool   `json:"db_connected"`
	Events      int    `json:"events"`
}

// HealthCheck reports whether the database is reachable and how many events
// the store holds.
func HealthCheck(db *storage.DB, s *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dbConnected := db.Ping() == nil

		status := "healthy"
		if !dbConnected {
			status = "degraded"
		}

		response := HealthResponse{
			Status:      status,
			DBConnected: dbConnected,
			Events:      s.Count(),
		}

		if status != "healthy" {
			writeJSON(w, http.StatusServiceUnavailable, response)
			return
		}
		writeJSON(w, http.StatusOK, response)
	}
}
