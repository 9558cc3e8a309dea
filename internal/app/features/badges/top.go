// internal/app/features/badges/top.go
package badges

import (
	"context"
	"net/http"

	"github.com/dalemusser/fundhub/internal/app/store/queries/donorqueries"
	"github.com/dalemusser/fundhub/internal/app/system/paging"
	"github.com/dalemusser/fundhub/internal/app/system/ranking"
	"github.com/dalemusser/fundhub/internal/app/system/respond"
	"github.com/dalemusser/fundhub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// Top handles GET /api/badges/top?limit=N: the first N donors of the
// global ordering, default 10, capped at 100.
func (h *Handler) Top(w http.ResponseWriter, r *http.Request) {
	limit := paging.ParseLimit(r, paging.TopLimit)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	totals, err := donorqueries.Totals(ctx, h.db)
	if err != nil {
		h.log.Error("top donors: totals aggregation failed", zap.Error(err))
		respond.Internal(w)
		return
	}

	entries, err := h.enrich(ctx, ranking.Top(totals, limit), 1)
	if err != nil {
		h.log.Error("top donors: user enrichment failed", zap.Error(err))
		respond.Internal(w)
		return
	}

	respond.OK(w, respond.Payload{"top": entries})
}
