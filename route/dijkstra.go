package route

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/manojtharindu11/lankatrip/kb"
)

// Shortest computes the minimum-distance route from start to end over the
// full road network of b.
//
// Algorithm: Dijkstra with a min-heap frontier and lazy decrease-key —
// shorter tentative distances push duplicate heap entries, and stale entries
// are discarded on pop via the settled set. Ties on equal distance break by
// city ID ascending, so the returned path is deterministic even in
// degenerate cases.
//
// Returns:
//
//   - a zero-hop Route (single city, TotalKm 0) when start == end;
//   - ErrNoRoute when end is unreachable from start — never a partial route;
//   - kb.ErrCityNotFound when either endpoint is unknown.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Shortest(b *kb.Base, start, end string, opts ...Option) (Route, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if b == nil {
		return Route{}, ErrNilBase
	}
	if !b.Has(start) {
		return Route{}, fmt.Errorf("%w: %q", kb.ErrCityNotFound, start)
	}
	if !b.Has(end) {
		return Route{}, fmt.Errorf("%w: %q", kb.ErrCityNotFound, end)
	}

	// Pre-scan the network for negative distances and fail fast. kb.NewBase
	// already rejects them, so this only fires on a corrupt Base.
	for _, cn := range b.Connections() {
		if cn.Km < 0 {
			return Route{}, fmt.Errorf("%w: %s—%s km=%d", ErrNegativeDistance, cn.A, cn.B, cn.Km)
		}
	}

	// Identical endpoints: a legitimate zero-hop route, not an error.
	if start == end {
		return Route{Cities: []string{start}}, nil
	}

	r := newSearch(b, start, cfg)
	r.run(end)

	if r.dist[end] == math.MaxInt64 {
		return Route{}, fmt.Errorf("%w: %s → %s", ErrNoRoute, start, end)
	}

	return r.rebuild(start, end), nil
}

// ShortestWithin computes the same full-network shortest route as Shortest
// and additionally reports whether end belongs to allowed — typically a
// recommendation set produced by the matcher.
//
// The network is never restricted to allowed: a route may legitimately pass
// through cities outside the set, and optimality is never sacrificed to stay
// inside it. The boolean only tells the caller whether the destination
// itself is a recommended stop.
func ShortestWithin(b *kb.Base, start, end string, allowed []string, opts ...Option) (Route, bool, error) {
	rt, err := Shortest(b, start, end, opts...)
	if err != nil {
		return Route{}, false, err
	}

	matched := false
	for _, id := range allowed {
		if id == end {
			matched = true
			break
		}
	}

	return rt, matched, nil
}

// search holds the mutable state of a single Dijkstra execution.
type search struct {
	b       *kb.Base
	cfg     Options
	dist    map[string]int64  // city ID → best known distance from start
	prev    map[string]string // city ID → predecessor on the shortest path
	settled map[string]bool   // city ID → distance finalized
	pq      cityPQ
}

// newSearch initializes distances to +∞ (MaxInt64), sets the start distance
// to zero and seeds the frontier with the start city.
func newSearch(b *kb.Base, start string, cfg Options) *search {
	ids := b.CityIDs()
	s := &search{
		b:       b,
		cfg:     cfg,
		dist:    make(map[string]int64, len(ids)),
		prev:    make(map[string]string, len(ids)),
		settled: make(map[string]bool, len(ids)),
		pq:      make(cityPQ, 0, len(ids)),
	}
	for _, id := range ids {
		s.dist[id] = math.MaxInt64
	}
	s.dist[start] = 0

	heap.Init(&s.pq)
	heap.Push(&s.pq, &cityItem{id: start})

	return s
}

// run is the main loop: repeatedly settle the unsettled city with minimum
// tentative distance and relax its links, until target is settled or the
// frontier is exhausted.
func (s *search) run(target string) {
	for s.pq.Len() > 0 {
		item := heap.Pop(&s.pq).(*cityItem)
		if s.settled[item.id] {
			continue // stale entry from lazy decrease-key
		}
		if item.km > s.cfg.MaxDistance {
			break
		}
		s.settled[item.id] = true
		if item.id == target {
			return // target distance is final; no need to explore further
		}
		s.relax(item.id)
	}
}

// relax attempts to improve the tentative distance of every neighbor of u.
func (s *search) relax(u string) {
	// Neighbors cannot fail for a settled city; adjacency is sorted by ID.
	hops, _ := s.b.Neighbors(u)
	for _, h := range hops {
		next := s.dist[u] + h.Km
		if next > s.cfg.MaxDistance {
			continue
		}
		// Strict improvement only, to avoid duplicate pushes on ties.
		if next >= s.dist[h.To] {
			continue
		}
		s.dist[h.To] = next
		s.prev[h.To] = u
		heap.Push(&s.pq, &cityItem{id: h.To, km: next})
	}
}

// rebuild follows predecessor links backward from end to start, reverses the
// sequence and recomputes the per-leg distances.
func (s *search) rebuild(start, end string) Route {
	seq := []string{end}
	for at := end; at != start; {
		at = s.prev[at]
		seq = append(seq, at)
	}
	for i, j := 0, len(seq)-1; i < j; i, j = i+1, j-1 {
		seq[i], seq[j] = seq[j], seq[i]
	}

	legs := make([]int64, 0, len(seq)-1)
	for i := 0; i+1 < len(seq); i++ {
		km, _ := s.b.Distance(seq[i], seq[i+1])
		legs = append(legs, km)
	}

	return Route{Cities: seq, Legs: legs, TotalKm: s.dist[end]}
}

// cityItem is one frontier entry: a city and its tentative distance.
type cityItem struct {
	id string
	km int64
}

// cityPQ is a min-heap of *cityItem ordered by distance, tie-broken by city
// ID ascending for deterministic output paths.
type cityPQ []*cityItem

func (pq cityPQ) Len() int { return len(pq) }

func (pq cityPQ) Less(i, j int) bool {
	if pq[i].km != pq[j].km {
		return pq[i].km < pq[j].km
	}

	return pq[i].id < pq[j].id
}

func (pq cityPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *cityPQ) Push(x interface{}) { *pq = append(*pq, x.(*cityItem)) }

func (pq *cityPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
