package route

import (
	"container/heap"
	"fmt"

	"github.com/manojtharindu11/lankatrip/kb"
)

// WithinDistance returns every city reachable from source within maxKm road
// kilometres, mapped to its shortest distance. The source itself is always
// present with distance 0.
//
// Useful for "day trips from X" style queries. Returns ErrBadMaxDistance for
// a negative cap and kb.ErrCityNotFound for an unknown source.
//
// Complexity: O((V + E) log V), same frontier as Shortest.
func WithinDistance(b *kb.Base, source string, maxKm int64) (map[string]int64, error) {
	if b == nil {
		return nil, ErrNilBase
	}
	if maxKm < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadMaxDistance, maxKm)
	}
	if !b.Has(source) {
		return nil, fmt.Errorf("%w: %q", kb.ErrCityNotFound, source)
	}

	reach := map[string]int64{source: 0}
	pq := cityPQ{&cityItem{id: source}}
	heap.Init(&pq)

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*cityItem)
		if got, ok := reach[item.id]; ok && item.km > got {
			continue // stale entry
		}

		hops, _ := b.Neighbors(item.id)
		for _, h := range hops {
			next := item.km + h.Km
			if next > maxKm {
				continue
			}
			if got, ok := reach[h.To]; ok && next >= got {
				continue
			}
			reach[h.To] = next
			heap.Push(&pq, &cityItem{id: h.To, km: next})
		}
	}

	return reach, nil
}
