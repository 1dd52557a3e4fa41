package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/kizuna-dev/teambuilder/internal/database"
	"github.com/kizuna-dev/teambuilder/internal/domain"
	"github.com/kizuna-dev/teambuilder/internal/logger"
)

// readinessTimeout bounds all checks behind /readyz together
const readinessTimeout = 2 * time.Second

// Readiness check names and states
const (
	checkDatabase       = "database"
	checkConstellations = "constellations"
	statusOK            = "ok"
	statusUnavailable   = "unavailable"
)

// HealthResponse is the body of /healthz and /readyz
type HealthResponse struct {
	Status  string            `json:"status"`
	Message string            `json:"message,omitempty"`
	Checks  map[string]string `json:"checks,omitempty"`
}

// Catalog lists the constellations players can pull from
type Catalog interface {
	List(ctx context.Context) ([]domain.Constellation, error)
}

// HandleHealthz is the liveness probe; it never touches dependencies
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: statusOK})
	}
}

// HandleReadyz reports ready when the database answers and at least one
// constellation is loaded, since a pull cannot succeed otherwise
func HandleReadyz(dbPool database.Pool, catalog Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()
		log := logger.FromContext(r.Context())

		if err := dbPool.Ping(ctx); err != nil {
			log.Error(LogMsgReadinessFailed, "check", checkDatabase, "error", err)
			respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:  statusUnavailable,
				Message: MsgDatabaseUnavailable,
				Checks:  map[string]string{checkDatabase: statusUnavailable},
			})
			return
		}

		list, err := catalog.List(ctx)
		if err != nil || len(list) == 0 {
			log.Error(LogMsgReadinessFailed, "check", checkConstellations, "error", err, "loaded", len(list))
			respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:  statusUnavailable,
				Message: MsgNoConstellations,
				Checks:  map[string]string{checkDatabase: statusOK, checkConstellations: statusUnavailable},
			})
			return
		}

		respondJSON(w, http.StatusOK, HealthResponse{
			Status: statusOK,
			Checks: map[string]string{checkDatabase: statusOK, checkConstellations: statusOK},
		})
	}
}
