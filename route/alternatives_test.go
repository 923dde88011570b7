package route_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manojtharindu11/lankatrip/kb"
	"github.com/manojtharindu11/lankatrip/route"
)

// TestAlternatives_Triangle enumerates both simple routes of the triangle
// and checks the distance ordering.
func TestAlternatives_Triangle(t *testing.T) {
	b := testBase(t, []string{"a", "b", "c"}, []kb.Connection{
		{A: "a", B: "b", Km: 1},
		{A: "b", B: "c", Km: 2},
		{A: "a", B: "c", Km: 5},
	})

	routes, err := route.Alternatives(b, "a", "c", 5)
	require.NoError(t, err)
	require.Len(t, routes, 2)

	assert.Equal(t, []string{"a", "b", "c"}, routes[0].Cities)
	assert.Equal(t, int64(3), routes[0].TotalKm)
	assert.Equal(t, []string{"a", "c"}, routes[1].Cities)
	assert.Equal(t, int64(5), routes[1].TotalKm)
}

// TestAlternatives_RespectsCap stops collecting once max routes are found.
func TestAlternatives_RespectsCap(t *testing.T) {
	b := kb.Default()

	routes, err := route.Alternatives(b, "colombo", "kandy", 3)
	require.NoError(t, err)
	assert.Len(t, routes, 3)
	for i := 1; i < len(routes); i++ {
		assert.LessOrEqual(t, routes[i-1].TotalKm, routes[i].TotalKm,
			"alternatives not sorted by distance")
	}
	for _, rt := range routes {
		assert.Equal(t, "colombo", rt.Start())
		assert.Equal(t, "kandy", rt.End())
	}
}

// TestAlternatives_Errors covers the validation contract.
func TestAlternatives_Errors(t *testing.T) {
	b := testBase(t, []string{"a", "b", "island"}, []kb.Connection{{A: "a", B: "b", Km: 1}})

	_, err := route.Alternatives(nil, "a", "b", 1)
	assert.ErrorIs(t, err, route.ErrNilBase)

	_, err = route.Alternatives(b, "a", "b", 0)
	assert.ErrorIs(t, err, route.ErrBadMaxRoutes)

	_, err = route.Alternatives(b, "ghost", "b", 1)
	assert.ErrorIs(t, err, kb.ErrCityNotFound)

	_, err = route.Alternatives(b, "a", "island", 3)
	assert.ErrorIs(t, err, route.ErrNoRoute)
}

// TestAlternatives_IdenticalEndpoints yields the single zero-hop route.
func TestAlternatives_IdenticalEndpoints(t *testing.T) {
	b := testBase(t, []string{"a", "b"}, []kb.Connection{{A: "a", B: "b", Km: 1}})

	routes, err := route.Alternatives(b, "a", "a", 4)
	require.NoError(t, err)
	require.Len(t, routes, 1)
	assert.Equal(t, []string{"a"}, routes[0].Cities)
	assert.Zero(t, routes[0].TotalKm)
}
