package route

import (
	"fmt"
	"math"
	"sort"

	"github.com/manojtharindu11/lankatrip/kb"
)

// Alternatives returns up to max distinct simple routes from start to end,
// sorted by total distance ascending (ties by fewer hops, then by city
// sequence).
//
// The search is a depth-first enumeration of simple paths, pruned once max
// routes have been collected; it favors breadth of choice over guaranteed
// global ordering, so the cheapest collected route is not necessarily the
// overall shortest — use Shortest for that. Neighbor expansion follows the
// Base's ID-sorted adjacency, so results are deterministic.
//
// Returns ErrBadMaxRoutes for max < 1, kb.ErrCityNotFound for unknown
// endpoints and ErrNoRoute when not a single path exists. start == end
// yields the single zero-hop route.
//
// Complexity: exponential in the worst case, bounded in practice by the
// early cutoff at max collected routes.
func Alternatives(b *kb.Base, start, end string, max int, opts ...Option) ([]Route, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if b == nil {
		return nil, ErrNilBase
	}
	if max < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadMaxRoutes, max)
	}
	if !b.Has(start) {
		return nil, fmt.Errorf("%w: %q", kb.ErrCityNotFound, start)
	}
	if !b.Has(end) {
		return nil, fmt.Errorf("%w: %q", kb.ErrCityNotFound, end)
	}

	if start == end {
		return []Route{{Cities: []string{start}}}, nil
	}

	w := &walker{b: b, end: end, max: max, cap: cfg.MaxDistance}
	w.visited = map[string]bool{start: true}
	w.path = []string{start}
	w.walk(start, 0)

	if len(w.found) == 0 {
		return nil, fmt.Errorf("%w: %s → %s", ErrNoRoute, start, end)
	}

	sort.Slice(w.found, func(i, j int) bool {
		a, c := w.found[i], w.found[j]
		if a.TotalKm != c.TotalKm {
			return a.TotalKm < c.TotalKm
		}
		if len(a.Cities) != len(c.Cities) {
			return len(a.Cities) < len(c.Cities)
		}
		for k := range a.Cities {
			if a.Cities[k] != c.Cities[k] {
				return a.Cities[k] < c.Cities[k]
			}
		}

		return false
	})

	return w.found, nil
}

// walker carries the depth-first state for Alternatives.
type walker struct {
	b       *kb.Base
	end     string
	max     int
	cap     int64
	visited map[string]bool
	path    []string
	legs    []int64
	found   []Route
}

// walk extends the current simple path from u; total is the distance so far.
func (w *walker) walk(u string, total int64) {
	if len(w.found) >= w.max {
		return
	}
	if u == w.end {
		w.found = append(w.found, w.snapshot(total))
		return
	}

	hops, _ := w.b.Neighbors(u)
	for _, h := range hops {
		if w.visited[h.To] {
			continue
		}
		next := total + h.Km
		if w.cap != math.MaxInt64 && next > w.cap {
			continue
		}
		w.visited[h.To] = true
		w.path = append(w.path, h.To)
		w.legs = append(w.legs, h.Km)

		w.walk(h.To, next)

		w.legs = w.legs[:len(w.legs)-1]
		w.path = w.path[:len(w.path)-1]
		w.visited[h.To] = false
	}
}

// snapshot copies the current path into an owned Route.
func (w *walker) snapshot(total int64) Route {
	cities := make([]string, len(w.path))
	copy(cities, w.path)
	legs := make([]int64, len(w.legs))
	copy(legs, w.legs)

	return Route{Cities: cities, Legs: legs, TotalKm: total}
}
