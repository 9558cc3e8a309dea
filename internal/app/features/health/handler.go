// internal/app/features/health/handler.go
package health

import (
	"context"
	"net/http"

	"github.com/dalemusser/fundhub/internal/app/system/respond"
	"github.com/dalemusser/fundhub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// Handler answers liveness checks with a Mongo ping.
type Handler struct {
	client *mongo.Client
	log    *zap.Logger
}

func NewHandler(client *mongo.Client, logger *zap.Logger) *Handler {
	return &Handler{client: client, log: logger}
}

// Check handles GET /health.
func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
	defer cancel()

	if err := h.client.Ping(ctx, readpref.Primary()); err != nil {
		h.log.Warn("health check: mongo ping failed", zap.Error(err))
		respond.Error(w, http.StatusServiceUnavailable, "database unreachable")
		return
	}

	respond.OK(w, respond.Payload{"status": "ok"})
}
