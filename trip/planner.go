// Package trip is the query facade: it ties the knowledge base, the
// constraint matcher and the route planner into the handful of calls a
// presentation layer needs.
package trip

import (
	"errors"

	"github.com/manojtharindu11/lankatrip/kb"
	"github.com/manojtharindu11/lankatrip/match"
	"github.com/manojtharindu11/lankatrip/route"
)

// ErrNilBase indicates New was handed a nil knowledge base.
var ErrNilBase = errors.New("trip: knowledge base is nil")

// Planner answers travel queries against one knowledge base.
//
// A Planner holds only the immutable Base, so a single Planner may serve
// concurrent queries without synchronization.
type Planner struct {
	base *kb.Base
}

// New returns a Planner over b, or ErrNilBase.
func New(b *kb.Base) (*Planner, error) {
	if b == nil {
		return nil, ErrNilBase
	}

	return &Planner{base: b}, nil
}

// Default returns a Planner over the embedded Sri Lanka dataset.
func Default() *Planner {
	return &Planner{base: kb.Default()}
}

// Base exposes the underlying knowledge base.
func (p *Planner) Base() *kb.Base { return p.base }

// ListCities returns every city ID in ascending order.
func (p *Planner) ListCities() []string {
	return p.base.CityIDs()
}

// City returns the full fact record for one city, or kb.ErrCityNotFound.
func (p *Planner) City(id string) (kb.City, error) {
	return p.base.City(id)
}

// Match returns the IDs of every city compatible with pref; see match.Match.
func (p *Planner) Match(pref match.Preference) ([]string, error) {
	return match.Match(p.base, pref)
}

// PlanRoute returns the shortest route between two cities over the full road
// network; see route.Shortest.
func (p *Planner) PlanRoute(start, end string) (route.Route, error) {
	return route.Shortest(p.base, start, end)
}

// Stop is one city along a planned itinerary, annotated with whether it
// belongs to the trip's recommendation set.
type Stop struct {
	// City is the stop's full fact record, attractions included.
	City kb.City

	// Recommended reports membership in the preference's recommended set.
	Recommended bool
}

// Itinerary is the complete answer to a trip query: the optimal route, its
// per-stop annotations and the full matcher report the trip was judged
// against.
type Itinerary struct {
	// Route is the shortest route between the requested endpoints, computed
	// on the full road network regardless of the recommendation set.
	Route route.Route

	// Stops annotates each city of Route in travel order.
	Stops []Stop

	// EndRecommended reports whether the destination itself belongs to the
	// recommendation set — the "matched itinerary" signal.
	EndRecommended bool

	// Recommendations is the matcher report for the trip's preference.
	Recommendations match.Recommendations
}

// PlanTrip runs the two-stage engine for one query: match pref against the
// knowledge base, compute the shortest start→end route on the full network,
// and annotate every stop with its recommendation status.
//
// Route optimality is never sacrificed to stay inside the recommendation
// set; the set only annotates. Fails with match.ErrInvalidPreference for bad
// selectors, kb.ErrCityNotFound for unknown endpoints and route.ErrNoRoute
// for disconnected ones.
func (p *Planner) PlanTrip(pref match.Preference, start, end string) (Itinerary, error) {
	rec, err := match.Recommend(p.base, pref)
	if err != nil {
		return Itinerary{}, err
	}

	rt, matched, err := route.ShortestWithin(p.base, start, end, rec.Recommended)
	if err != nil {
		return Itinerary{}, err
	}

	inSet := make(map[string]bool, len(rec.Recommended))
	for _, id := range rec.Recommended {
		inSet[id] = true
	}

	stops := make([]Stop, 0, len(rt.Cities))
	for _, id := range rt.Cities {
		// Cities on a computed route always exist in the base.
		c, _ := p.base.City(id)
		stops = append(stops, Stop{City: c, Recommended: inSet[id]})
	}

	return Itinerary{
		Route:           rt,
		Stops:           stops,
		EndRecommended:  matched,
		Recommendations: rec,
	}, nil
}
