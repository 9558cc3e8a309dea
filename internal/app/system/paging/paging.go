// internal/app/system/paging/paging.go
package paging

import (
	"net/http"
	"strconv"

	"github.com/dalemusser/waffle/pantry/query"
)

// The leaderboard and donation listings use offset (page/limit) pagination:
// ranks are global 1-based positions, so a page must know its absolute
// offset, which cursor-based paging cannot express.

// DefaultLimit is the page size when the client sends none.
const DefaultLimit = 20

// TopLimit is the default size of the top-donors list.
const TopLimit = 10

// MaxLimit caps client-supplied limits.
const MaxLimit = 100

// ParsePage extracts the 1-based "page" query parameter.
// Returns 1 if not present or invalid.
func ParsePage(r *http.Request) int {
	s := query.Get(r, "page")
	if s == "" {
		return 1
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// ParseLimit extracts the "limit" query parameter, falling back to def and
// clamping to [1, MaxLimit].
func ParseLimit(r *http.Request, def int) int {
	s := query.Get(r, "limit")
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return def
	}
	if n > MaxLimit {
		return MaxLimit
	}
	return n
}

// Window computes the half-open slice bounds [lo, hi) for a page over a list
// of n items. Any page past the end yields lo == hi == n (an empty window),
// including arbitrarily large page numbers: ParsePage accepts any parsable
// int, so the offset multiplication must never be allowed to overflow.
func Window(page, limit, n int) (lo, hi int) {
	if page < 1 || limit < 1 {
		return n, n
	}
	// lastPage is ceil(n/limit); beyond it every window is empty. Checking
	// against it first keeps (page-1)*limit far from integer overflow.
	if lastPage := (n + limit - 1) / limit; page > lastPage {
		return n, n
	}
	lo = (page - 1) * limit
	hi = lo + limit
	if hi > n {
		hi = n
	}
	return lo, hi
}
