// internal/app/features/badges/leaderboard.go
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

// Leaderboard handles GET /api/badges/leaderboard?page=P&limit=N.
//
// Ranks are global positions in the full ordering, so page 2 with limit 20
// starts at rank 21. A page past the end returns an empty list, not an
// error, and totalDonors always reflects the full ordering.
func (h *Handler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	page := paging.ParsePage(r)
	limit := paging.ParseLimit(r, paging.DefaultLimit)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	totals, err := donorqueries.Totals(ctx, h.db)
	if err != nil {
		h.log.Error("leaderboard: totals aggregation failed", zap.Error(err))
		respond.Internal(w)
		return
	}

	slice, firstRank := ranking.Page(totals, page, limit)
	entries, err := h.enrich(ctx, slice, firstRank)
	if err != nil {
		h.log.Error("leaderboard: user enrichment failed", zap.Error(err))
		respond.Internal(w)
		return
	}

	respond.OK(w, respond.Payload{
		"page":        page,
		"limit":       limit,
		"totalDonors": len(totals),
		"leaderboard": entries,
	})
}
