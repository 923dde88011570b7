// Package route computes minimum-distance routes over the knowledge base's
// road network using Dijkstra's algorithm with non-negative distances.
//
// This file declares the Route result type, configuration Options and the
// sentinel errors.
//
// Errors (sentinel):
//
//	ErrNilBase          - nil knowledge base supplied.
//	ErrNoRoute          - the endpoints are not connected.
//	ErrNegativeDistance - a negative distance was found in the network.
//	ErrBadMaxDistance   - a negative MaxDistance option value.
//	ErrBadMaxRoutes     - a non-positive route cap passed to Alternatives.
package route

import (
	"errors"
	"math"
)

// Sentinel errors returned by the route planner.
var (
	// ErrNilBase indicates a nil *kb.Base was supplied.
	ErrNilBase = errors.New("route: knowledge base is nil")

	// ErrNoRoute indicates the destination is unreachable from the start:
	// the road network is disconnected with respect to the two endpoints.
	// This is an expected outcome, distinct from any zero- or
	// infinite-distance route.
	ErrNoRoute = errors.New("route: no route between endpoints")

	// ErrNegativeDistance indicates a negative distance was encountered in
	// the network. kb.NewBase rejects non-positive distances, so seeing this
	// error means the Base was built from corrupt data.
	ErrNegativeDistance = errors.New("route: negative distance encountered")

	// ErrBadMaxDistance indicates WithMaxDistance was given a negative cap.
	ErrBadMaxDistance = errors.New("route: MaxDistance must be non-negative")

	// ErrBadMaxRoutes indicates Alternatives was asked for fewer than one route.
	ErrBadMaxRoutes = errors.New("route: max routes must be positive")
)

// Route is an ordered journey from Start() to End() inclusive.
//
// Invariants: consecutive cities are joined by a direct road link; TotalKm
// equals the sum of Legs; a Route has zero hops (single city, empty Legs,
// TotalKm 0) iff its start equals its end.
type Route struct {
	// Cities is the visited city sequence, start and end inclusive.
	Cities []string

	// Legs holds the distance of each traversed link, in kilometres;
	// Legs[i] joins Cities[i] and Cities[i+1].
	Legs []int64

	// TotalKm is the summed distance of all legs.
	TotalKm int64
}

// Start returns the first city of the route, or "" for a zero Route.
func (r Route) Start() string {
	if len(r.Cities) == 0 {
		return ""
	}

	return r.Cities[0]
}

// End returns the last city of the route, or "" for a zero Route.
func (r Route) End() string {
	if len(r.Cities) == 0 {
		return ""
	}

	return r.Cities[len(r.Cities)-1]
}

// Hops returns the number of links traversed.
func (r Route) Hops() int { return len(r.Legs) }

// Options configures a shortest-route computation.
//
// MaxDistance caps exploration: cities whose distance from the start would
// exceed the cap are never settled, and a destination beyond the cap reports
// ErrNoRoute. Must be ≥ 0. Default is math.MaxInt64 (no cap).
type Options struct {
	MaxDistance int64
}

// Option is a functional option for configuring the planner.
type Option func(*Options)

// WithMaxDistance caps exploration at the given distance in kilometres.
// Must be non-negative; a negative cap panics with ErrBadMaxDistance, as
// option constructors signal invalid configuration early.
func WithMaxDistance(km int64) Option {
	return func(o *Options) {
		if km < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = km
	}
}

// DefaultOptions returns the planner defaults: no distance cap.
func DefaultOptions() Options {
	return Options{MaxDistance: math.MaxInt64}
}
