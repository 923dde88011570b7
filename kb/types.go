// Package kb defines the static travel knowledge base: the City and
// Connection types, the fixed tag enumerations (Season, Budget, Climate,
// Region, CityType), and the validated, immutable Base built from them.
//
// This file declares the domain types, tag enumerations and sentinel errors;
// see base.go for construction and accessors and data.go for the embedded
// Sri Lanka dataset.
//
// Errors:
//
//	ErrDuplicateCity       - two cities share the same ID.
//	ErrEmptyCityID         - a city ID is the empty string.
//	ErrBadCoordinate       - latitude/longitude outside valid ranges.
//	ErrBadTag              - a city carries a tag outside its enumeration.
//	ErrUnknownEndpoint     - a connection references a city that does not exist.
//	ErrSelfConnection      - a connection joins a city to itself.
//	ErrDuplicateConnection - the same city pair is connected twice.
//	ErrBadDistance         - a connection distance is zero or negative.
//	ErrCityNotFound        - lookup of an ID not present in the Base.
package kb

import "errors"

// Sentinel errors for knowledge-base construction and lookup.
var (
	// ErrDuplicateCity indicates two cities in the input share an ID.
	ErrDuplicateCity = errors.New("kb: duplicate city ID")

	// ErrEmptyCityID indicates a city with an empty ID.
	ErrEmptyCityID = errors.New("kb: city ID is empty")

	// ErrBadCoordinate indicates a latitude outside [-90,90] or a
	// longitude outside [-180,180].
	ErrBadCoordinate = errors.New("kb: coordinate out of range")

	// ErrBadTag indicates a city tagged with a value outside the fixed
	// enumeration for that axis (season, budget, climate, region, type).
	ErrBadTag = errors.New("kb: unknown tag value")

	// ErrUnknownEndpoint indicates a connection naming a city that is not
	// part of the city table.
	ErrUnknownEndpoint = errors.New("kb: connection endpoint not a known city")

	// ErrSelfConnection indicates a connection whose endpoints are equal.
	ErrSelfConnection = errors.New("kb: connection joins a city to itself")

	// ErrDuplicateConnection indicates the same unordered city pair appears
	// more than once in the connection table.
	ErrDuplicateConnection = errors.New("kb: duplicate connection")

	// ErrBadDistance indicates a connection distance that is not strictly
	// positive.
	ErrBadDistance = errors.New("kb: distance must be positive")

	// ErrCityNotFound indicates a lookup for an ID not present in the Base.
	ErrCityNotFound = errors.New("kb: city not found")
)

// Season is a city's best travel season, driven by the monsoon calendar.
//
// AllYear acts as the wildcard on the season axis: an AllYear city suits any
// season preference, and an AllYear preference suits any city.
type Season string

// Travel seasons.
const (
	// Winter (Nov–Feb): the southwest monsoon has ended; best for the
	// south and west coasts.
	Winter Season = "winter"

	// Summer (May–Aug): the northeast monsoon has ended; best for the
	// east coast and the hill country.
	Summer Season = "summer"

	// AllYear marks a destination good in any season.
	AllYear Season = "all_year"
)

// Valid reports whether s is one of the fixed season values.
func (s Season) Valid() bool {
	switch s {
	case Winter, Summer, AllYear:
		return true
	}

	return false
}

// Budget is a city's cost tier.
//
// Variable acts as the wildcard on the budget axis, analogous to AllYear.
type Budget string

// Budget tiers.
const (
	// Cheap covers hostel-and-bus destinations.
	Cheap Budget = "budget"

	// Moderate covers mid-range destinations.
	Moderate Budget = "moderate"

	// High covers premium destinations.
	High Budget = "high"

	// Variable marks a destination spanning every tier (e.g. a capital
	// with both hostels and five-star hotels).
	Variable Budget = "variable"
)

// Valid reports whether b is one of the fixed budget values.
func (b Budget) Valid() bool {
	switch b {
	case Cheap, Moderate, High, Variable:
		return true
	}

	return false
}

// CityType classifies what kind of destination a city is.
type CityType string

// Destination types.
const (
	Urban        CityType = "urban"
	Beach        CityType = "beach"
	Cultural     CityType = "cultural"
	HillCountry  CityType = "hill_country"
	Historical   CityType = "historical"
	NationalPark CityType = "national_park"
)

// Valid reports whether t is one of the fixed city types.
func (t CityType) Valid() bool {
	switch t {
	case Urban, Beach, Cultural, HillCountry, Historical, NationalPark:
		return true
	}

	return false
}

// Region is a geographic region of Sri Lanka.
type Region string

// Regions.
const (
	West         Region = "west"
	South        Region = "south"
	East         Region = "east"
	North        Region = "north"
	Central      Region = "central"
	NorthCentral Region = "north_central"
	NorthWestern Region = "north_western"
	Uva          Region = "uva"
	Sabaragamuwa Region = "sabaragamuwa"
	Southeast    Region = "southeast"
)

// Valid reports whether r is one of the fixed regions.
func (r Region) Valid() bool {
	switch r {
	case West, South, East, North, Central, NorthCentral,
		NorthWestern, Uva, Sabaragamuwa, Southeast:
		return true
	}

	return false
}

// Climate is a city's climate band.
type Climate string

// Climate bands.
const (
	Tropical Climate = "tropical"
	Mild     Climate = "mild"
	Cool     Climate = "cool"
	Dry      Climate = "dry"
)

// Valid reports whether c is one of the fixed climate values.
func (c Climate) Valid() bool {
	switch c {
	case Tropical, Mild, Cool, Dry:
		return true
	}

	return false
}

// City is a single destination and its facts.
//
// Cities are referenced everywhere else by ID only; the City value itself is
// never duplicated outside the Base. Immutable after load.
type City struct {
	// ID uniquely identifies the city ("colombo", "nuwara_eliya", …).
	ID string

	// Type classifies the destination (beach, hill country, …).
	Type CityType

	// Region is the city's geographic region.
	Region Region

	// Climate is the city's climate band.
	Climate Climate

	// BestSeason is the season the city is best visited in; AllYear for
	// destinations without a monsoon constraint.
	BestSeason Season

	// Budget is the city's cost tier; Variable spans all tiers.
	Budget Budget

	// Lat and Lon are the city's coordinates in decimal degrees.
	Lat, Lon float64

	// Attractions lists the city's notable sights, in display order.
	Attractions []string
}

// Connection is an undirected road link between two cities.
//
// A Connection has no direction: (A,B,Km) and (B,A,Km) denote the same link.
type Connection struct {
	// A and B are the endpoint city IDs.
	A, B string

	// Km is the road distance in kilometres; always positive.
	Km int64
}

// Other returns the endpoint opposite to id, or "" if id is not an endpoint.
func (c Connection) Other(id string) string {
	switch id {
	case c.A:
		return c.B
	case c.B:
		return c.A
	}

	return ""
}

// Hop is one adjacency entry: a neighboring city and the distance to it.
type Hop struct {
	// To is the neighbor city ID.
	To string

	// Km is the road distance to the neighbor in kilometres.
	Km int64
}
