package http

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/etherspot/arka-sub001/pkg/app/errors"
)

const readinessTimeout = 2 * time.Second

// Pinger is satisfied by *sql.DB and *bun.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type healthResponse struct {
	Status string `json:"status"`
}

// Health reports liveness
func Health(w http.ResponseWriter, _ *http.Request) {
	WriteJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}

// Ready reports readiness by pinging db
func Ready(db Pinger, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			logger.Warn("Readiness check failed", zap.Error(err))
			DefaultErrorHandler(w, apperrors.UnavailableError(err, "database unavailable"))
			return
		}
		WriteJSON(w, http.StatusOK, healthResponse{Status: "ok"})
	}
}
