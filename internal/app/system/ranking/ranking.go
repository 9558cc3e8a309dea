// Package ranking derives rank and badge tier from the globally sorted
// donor totals. All functions are pure; the totals come from donorqueries.
package ranking

import (
	"github.com/dalemusser/fundhub/internal/app/store/queries/donorqueries"
	"github.com/dalemusser/fundhub/internal/app/system/paging"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Badge tiers. Rank 1 is gold, 2 silver, 3 bronze; everyone else has none.
const (
	BadgeGold   = "gold"
	BadgeSilver = "silver"
	BadgeBronze = "bronze"
)

// Badge returns the badge tier for a 1-based global rank, or "" for
// rank >= 4 (and for invalid ranks).
func Badge(rank int) string {
	switch rank {
	case 1:
		return BadgeGold
	case 2:
		return BadgeSilver
	case 3:
		return BadgeBronze
	default:
		return ""
	}
}

// Top returns the first limit entries of the sorted totals. The returned
// slice aliases totals; callers treat it as read-only.
func Top(totals []donorqueries.DonorTotal, limit int) []donorqueries.DonorTotal {
	if limit > len(totals) {
		limit = len(totals)
	}
	if limit < 0 {
		limit = 0
	}
	return totals[:limit]
}

// Page slices one page out of the sorted totals and returns the 1-based
// global rank of the first entry in the slice. A page past the end yields
// an empty slice.
func Page(totals []donorqueries.DonorTotal, page, limit int) ([]donorqueries.DonorTotal, int) {
	lo, hi := paging.Window(page, limit, len(totals))
	return totals[lo:hi], lo + 1
}

// Rank returns the 1-based global rank of a donor, or (0, false) when the
// user has no Completed donations.
func Rank(totals []donorqueries.DonorTotal, donorID primitive.ObjectID) (int, bool) {
	for i, t := range totals {
		if t.DonorID == donorID {
			return i + 1, true
		}
	}
	return 0, false
}
