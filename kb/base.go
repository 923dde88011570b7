package kb

import (
	"fmt"
	"sort"
	"sync"
)

// Base is the validated, immutable knowledge base: the city table plus the
// undirected weighted road graph.
//
// A Base is never mutated after NewBase returns, so it may be shared across
// concurrent readers without locking.
type Base struct {
	cities map[string]City  // city ID → City
	ids    []string         // all city IDs, sorted ascending
	adj    map[string][]Hop // city ID → neighbors sorted by ID
	conns  []Connection     // the connection table, as authored
}

// NewBase validates cities and conns and builds an immutable Base.
//
// Validation order per city: non-empty ID, unique ID, coordinates in range,
// all five tags within their enumerations. Per connection: both endpoints
// known, endpoints distinct, pair not seen before, distance positive.
//
// Any violation fails fast with the matching sentinel error wrapped with the
// offending value; a Base is never built from partially valid data.
func NewBase(cities []City, conns []Connection) (*Base, error) {
	b := &Base{
		cities: make(map[string]City, len(cities)),
		ids:    make([]string, 0, len(cities)),
		adj:    make(map[string][]Hop, len(cities)),
		conns:  make([]Connection, 0, len(conns)),
	}

	for _, c := range cities {
		if c.ID == "" {
			return nil, ErrEmptyCityID
		}
		if _, ok := b.cities[c.ID]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateCity, c.ID)
		}
		if c.Lat < -90 || c.Lat > 90 || c.Lon < -180 || c.Lon > 180 {
			return nil, fmt.Errorf("%w: %q (%v, %v)", ErrBadCoordinate, c.ID, c.Lat, c.Lon)
		}
		if err := validTags(c); err != nil {
			return nil, err
		}
		b.cities[c.ID] = c
		b.ids = append(b.ids, c.ID)
	}
	sort.Strings(b.ids)

	seen := make(map[[2]string]bool, len(conns))
	for _, cn := range conns {
		if _, ok := b.cities[cn.A]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownEndpoint, cn.A)
		}
		if _, ok := b.cities[cn.B]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownEndpoint, cn.B)
		}
		if cn.A == cn.B {
			return nil, fmt.Errorf("%w: %q", ErrSelfConnection, cn.A)
		}
		key := pairKey(cn.A, cn.B)
		if seen[key] {
			return nil, fmt.Errorf("%w: %s—%s", ErrDuplicateConnection, cn.A, cn.B)
		}
		seen[key] = true
		if cn.Km <= 0 {
			return nil, fmt.Errorf("%w: %s—%s km=%d", ErrBadDistance, cn.A, cn.B, cn.Km)
		}

		// Undirected: record the hop in both adjacency lists.
		b.adj[cn.A] = append(b.adj[cn.A], Hop{To: cn.B, Km: cn.Km})
		b.adj[cn.B] = append(b.adj[cn.B], Hop{To: cn.A, Km: cn.Km})
		b.conns = append(b.conns, cn)
	}

	// Sort each adjacency list by neighbor ID so iteration order, and hence
	// every downstream computation, is deterministic.
	for id := range b.adj {
		hops := b.adj[id]
		sort.Slice(hops, func(i, j int) bool { return hops[i].To < hops[j].To })
	}

	return b, nil
}

// validTags checks every tag of c against its enumeration.
func validTags(c City) error {
	if !c.Type.Valid() {
		return fmt.Errorf("%w: city %q type %q", ErrBadTag, c.ID, c.Type)
	}
	if !c.Region.Valid() {
		return fmt.Errorf("%w: city %q region %q", ErrBadTag, c.ID, c.Region)
	}
	if !c.Climate.Valid() {
		return fmt.Errorf("%w: city %q climate %q", ErrBadTag, c.ID, c.Climate)
	}
	if !c.BestSeason.Valid() {
		return fmt.Errorf("%w: city %q season %q", ErrBadTag, c.ID, c.BestSeason)
	}
	if !c.Budget.Valid() {
		return fmt.Errorf("%w: city %q budget %q", ErrBadTag, c.ID, c.Budget)
	}

	return nil
}

// pairKey returns the canonical (sorted) key for an unordered city pair.
func pairKey(a, b string) [2]string {
	if a > b {
		a, b = b, a
	}

	return [2]string{a, b}
}

var (
	defaultOnce sync.Once
	defaultBase *Base
)

// Default returns the process-wide Base built once from the embedded
// Sri Lanka dataset.
//
// The embedded data is authored in this repository, so a validation failure
// is a data authoring defect; Default panics rather than serving queries
// against a corrupt graph.
func Default() *Base {
	defaultOnce.Do(func() {
		b, err := NewBase(srilankaCities, srilankaConnections)
		if err != nil {
			panic(fmt.Sprintf("kb: embedded dataset invalid: %v", err))
		}
		defaultBase = b
	})

	return defaultBase
}

// City returns the city with the given ID, or ErrCityNotFound.
func (b *Base) City(id string) (City, error) {
	c, ok := b.cities[id]
	if !ok {
		return City{}, fmt.Errorf("%w: %q", ErrCityNotFound, id)
	}

	return c, nil
}

// Has reports whether id names a city in the Base.
func (b *Base) Has(id string) bool {
	_, ok := b.cities[id]

	return ok
}

// CityIDs returns all city IDs in ascending order.
// The returned slice is a copy; callers may retain or modify it.
func (b *Base) CityIDs() []string {
	out := make([]string, len(b.ids))
	copy(out, b.ids)

	return out
}

// Cities returns all cities ordered by ID.
func (b *Base) Cities() []City {
	out := make([]City, 0, len(b.ids))
	for _, id := range b.ids {
		out = append(out, b.cities[id])
	}

	return out
}

// Len returns the number of cities in the Base.
func (b *Base) Len() int { return len(b.ids) }

// Neighbors returns the adjacency list of id, sorted by neighbor ID,
// or ErrCityNotFound if id is unknown. The returned slice is a copy.
func (b *Base) Neighbors(id string) ([]Hop, error) {
	if _, ok := b.cities[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrCityNotFound, id)
	}
	hops := b.adj[id]
	out := make([]Hop, len(hops))
	copy(out, hops)

	return out, nil
}

// Connections returns a copy of the connection table.
func (b *Base) Connections() []Connection {
	out := make([]Connection, len(b.conns))
	copy(out, b.conns)

	return out
}

// Distance returns the direct road distance between a and b, or false if no
// direct connection exists. Unknown IDs simply report false.
func (b *Base) Distance(a, to string) (int64, bool) {
	for _, h := range b.adj[a] {
		if h.To == to {
			return h.Km, true
		}
	}

	return 0, false
}
