package paging

import (
	"math"
	"net/http/httptest"
	"testing"
)

func TestParsePage(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want int
	}{
		{"missing", "/x", 1},
		{"valid", "/x?page=3", 3},
		{"zero", "/x?page=0", 1},
		{"negative", "/x?page=-2", 1},
		{"garbage", "/x?page=abc", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.url, nil)
			if got := ParsePage(r); got != tt.want {
				t.Errorf("ParsePage(%q) = %d, want %d", tt.url, got, tt.want)
			}
		})
	}
}

func TestParseLimit(t *testing.T) {
	tests := []struct {
		name string
		url  string
		def  int
		want int
	}{
		{"missing uses default", "/x", 20, 20},
		{"missing uses top default", "/x", 10, 10},
		{"valid", "/x?limit=5", 20, 5},
		{"capped at max", "/x?limit=500", 20, MaxLimit},
		{"zero uses default", "/x?limit=0", 20, 20},
		{"garbage uses default", "/x?limit=xyz", 20, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.url, nil)
			if got := ParseLimit(r, tt.def); got != tt.want {
				t.Errorf("ParseLimit(%q, %d) = %d, want %d", tt.url, tt.def, got, tt.want)
			}
		})
	}
}

func TestWindow(t *testing.T) {
	tests := []struct {
		name           string
		page, limit    int
		n              int
		wantLo, wantHi int
	}{
		{"first page", 1, 2, 5, 0, 2},
		{"second page", 2, 2, 5, 2, 4},
		{"partial last page", 3, 2, 5, 4, 5},
		{"past the end", 4, 2, 5, 5, 5},
		{"far past the end", 100, 20, 5, 5, 5},
		{"max int page", math.MaxInt, 100, 5, 5, 5},
		{"page that would overflow the offset", math.MaxInt / 2, math.MaxInt / 2, 5, 5, 5},
		{"empty list", 1, 20, 0, 0, 0},
		{"zero limit", 1, 0, 5, 5, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi := Window(tt.page, tt.limit, tt.n)
			if lo != tt.wantLo || hi != tt.wantHi {
				t.Errorf("Window(%d,%d,%d) = (%d,%d), want (%d,%d)",
					tt.page, tt.limit, tt.n, lo, hi, tt.wantLo, tt.wantHi)
			}
		})
	}
}

func TestWindow_PagesCoverListExactlyOnce(t *testing.T) {
	const n = 7
	const limit = 3
	seen := make([]int, n)
	for page := 1; ; page++ {
		lo, hi := Window(page, limit, n)
		if lo == hi {
			break
		}
		for i := lo; i < hi; i++ {
			seen[i]++
		}
	}
	for i, c := range seen {
		if c != 1 {
			t.Errorf("index %d covered %d times, want exactly once", i, c)
		}
	}
}
