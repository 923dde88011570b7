package trip_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manojtharindu11/lankatrip/kb"
	"github.com/manojtharindu11/lankatrip/match"
	"github.com/manojtharindu11/lankatrip/route"
	"github.com/manojtharindu11/lankatrip/trip"
)

func TestNew_NilBase(t *testing.T) {
	_, err := trip.New(nil)
	assert.ErrorIs(t, err, trip.ErrNilBase)
}

func TestListCities_MatchesBase(t *testing.T) {
	p := trip.Default()
	assert.Equal(t, kb.Default().CityIDs(), p.ListCities())
}

func TestCity_PassThrough(t *testing.T) {
	p := trip.Default()

	c, err := p.City("kandy")
	require.NoError(t, err)
	assert.Equal(t, kb.Cultural, c.Type)
	assert.Contains(t, c.Attractions, "temple_of_tooth")

	_, err = p.City("atlantis")
	assert.ErrorIs(t, err, kb.ErrCityNotFound)
}

// TestPlanTrip_WinterBudget_ColomboToMatara is the spec's first concrete
// scenario: Matara is winter/budget-compatible, and the route from Colombo
// ends there with a finite positive distance.
func TestPlanTrip_WinterBudget_ColomboToMatara(t *testing.T) {
	p := trip.Default()
	pref := match.Preference{Season: kb.Winter, Budget: kb.Cheap}

	matched, err := p.Match(pref)
	require.NoError(t, err)
	assert.Contains(t, matched, "matara")

	it, err := p.PlanTrip(pref, "colombo", "matara")
	require.NoError(t, err)
	assert.Equal(t, "colombo", it.Route.Start())
	assert.Equal(t, "matara", it.Route.End())
	assert.Positive(t, it.Route.TotalKm)
	assert.True(t, it.EndRecommended, "matara must be reported as a matched destination")
}

// TestPlanTrip_SummerBudget_ColomboToElla: Ella is a summer budget hill town;
// the itinerary annotates each stop and flags the matched destination.
func TestPlanTrip_SummerBudget_ColomboToElla(t *testing.T) {
	p := trip.Default()
	pref := match.Preference{Season: kb.Summer, Budget: kb.Cheap}

	matched, err := p.Match(pref)
	require.NoError(t, err)
	assert.Contains(t, matched, "ella")

	it, err := p.PlanTrip(pref, "colombo", "ella")
	require.NoError(t, err)
	assert.Equal(t, "ella", it.Route.End())
	assert.True(t, it.EndRecommended)
	assert.Greater(t, it.Route.Hops(), 1, "Colombo to Ella is a multi-hop journey")

	// The route is longer than any single leg on it.
	for _, leg := range it.Route.Legs {
		assert.Greater(t, it.Route.TotalKm, leg)
	}

	// Stops line up with the route and carry the full city records.
	require.Len(t, it.Stops, len(it.Route.Cities))
	for i, s := range it.Stops {
		assert.Equal(t, it.Route.Cities[i], s.City.ID)
	}
	last := it.Stops[len(it.Stops)-1]
	assert.True(t, last.Recommended)
	assert.Contains(t, last.City.Attractions, "nine_arches_bridge")
}

// TestPlanTrip_RouteIgnoresRecommendationSet: the optimal route is computed
// on the full network even when intermediates fall outside the matched set.
func TestPlanTrip_RouteIgnoresRecommendationSet(t *testing.T) {
	p := trip.Default()
	pref := match.Preference{Season: kb.Winter, Budget: kb.Cheap}

	it, err := p.PlanTrip(pref, "colombo", "matara")
	require.NoError(t, err)

	plain, err := p.PlanRoute("colombo", "matara")
	require.NoError(t, err)
	assert.Equal(t, plain.TotalKm, it.Route.TotalKm,
		"preference filtering must not change route optimality")
	assert.Equal(t, plain.Cities, it.Route.Cities)
}

// TestPlanTrip_UnrecommendedDestination still plans the route but reports
// EndRecommended false.
func TestPlanTrip_UnrecommendedDestination(t *testing.T) {
	p := trip.Default()
	// Winter preference, east coast destination: avoided by the monsoon rule.
	it, err := p.PlanTrip(match.Preference{Season: kb.Winter, Budget: kb.Variable},
		"colombo", "trincomalee")
	require.NoError(t, err)
	assert.False(t, it.EndRecommended)
	assert.Contains(t, it.Recommendations.Avoided, "trincomalee")
	assert.Equal(t, "trincomalee", it.Route.End())
}

// TestPlanTrip_Errors surfaces the collaborator error contracts unchanged.
func TestPlanTrip_Errors(t *testing.T) {
	p := trip.Default()

	_, err := p.PlanTrip(match.Preference{Season: "monsoon", Budget: kb.Cheap}, "colombo", "ella")
	assert.ErrorIs(t, err, match.ErrInvalidPreference)

	_, err = p.PlanTrip(match.Preference{Season: kb.Winter, Budget: kb.Cheap}, "colombo", "atlantis")
	assert.ErrorIs(t, err, kb.ErrCityNotFound)

	// A base with an isolated city produces ErrNoRoute through the facade.
	cities := []kb.City{
		{ID: "a", Type: kb.Urban, Region: kb.West, Climate: kb.Tropical,
			BestSeason: kb.AllYear, Budget: kb.Cheap, Lat: 6, Lon: 80},
		{ID: "island", Type: kb.Beach, Region: kb.South, Climate: kb.Tropical,
			BestSeason: kb.AllYear, Budget: kb.Cheap, Lat: 6, Lon: 81},
	}
	b, err := kb.NewBase(cities, nil)
	require.NoError(t, err)
	pl, err := trip.New(b)
	require.NoError(t, err)

	_, err = pl.PlanTrip(match.Preference{Season: kb.AllYear, Budget: kb.Variable}, "a", "island")
	assert.ErrorIs(t, err, route.ErrNoRoute)
}
