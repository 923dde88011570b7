package kb_test

import (
	"errors"
	"sort"
	"testing"

	"github.com/manojtharindu11/lankatrip/kb"
)

// city returns a minimal valid City for construction tests.
func city(id string) kb.City {
	return kb.City{
		ID:         id,
		Type:       kb.Urban,
		Region:     kb.West,
		Climate:    kb.Tropical,
		BestSeason: kb.AllYear,
		Budget:     kb.Cheap,
		Lat:        6.9,
		Lon:        79.8,
	}
}

//----------------------------------------------------------------------------//
// NewBase validation tests
//----------------------------------------------------------------------------//

// TestNewBase_Errors verifies that every authoring defect is rejected with
// its sentinel error.
func TestNewBase_Errors(t *testing.T) {
	badCoord := city("x")
	badCoord.Lat = 91

	badTag := city("y")
	badTag.BestSeason = "monsoon"

	cases := []struct {
		name   string
		cities []kb.City
		conns  []kb.Connection
		err    error
	}{
		{"EmptyID", []kb.City{city("")}, nil, kb.ErrEmptyCityID},
		{"DuplicateCity", []kb.City{city("a"), city("a")}, nil, kb.ErrDuplicateCity},
		{"BadCoordinate", []kb.City{badCoord}, nil, kb.ErrBadCoordinate},
		{"BadTag", []kb.City{badTag}, nil, kb.ErrBadTag},
		{"UnknownEndpoint", []kb.City{city("a")},
			[]kb.Connection{{A: "a", B: "ghost", Km: 5}}, kb.ErrUnknownEndpoint},
		{"SelfConnection", []kb.City{city("a")},
			[]kb.Connection{{A: "a", B: "a", Km: 5}}, kb.ErrSelfConnection},
		{"DuplicateConnection", []kb.City{city("a"), city("b")},
			[]kb.Connection{{A: "a", B: "b", Km: 5}, {A: "b", B: "a", Km: 7}},
			kb.ErrDuplicateConnection},
		{"ZeroDistance", []kb.City{city("a"), city("b")},
			[]kb.Connection{{A: "a", B: "b", Km: 0}}, kb.ErrBadDistance},
		{"NegativeDistance", []kb.City{city("a"), city("b")},
			[]kb.Connection{{A: "a", B: "b", Km: -3}}, kb.ErrBadDistance},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := kb.NewBase(tc.cities, tc.conns)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewBase error = %v; want %v", err, tc.err)
			}
		})
	}
}

//----------------------------------------------------------------------------//
// Accessor tests over the embedded dataset
//----------------------------------------------------------------------------//

// TestDefault_Loads checks that the embedded dataset validates and that the
// Default Base is built exactly once.
func TestDefault_Loads(t *testing.T) {
	b := kb.Default()
	if b == nil {
		t.Fatal("Default() returned nil")
	}
	if b != kb.Default() {
		t.Error("Default() did not return the same Base on the second call")
	}
	if b.Len() == 0 {
		t.Error("embedded dataset has no cities")
	}
}

// TestCityIDs_Sorted verifies ordering and copy semantics of CityIDs.
func TestCityIDs_Sorted(t *testing.T) {
	b := kb.Default()
	ids := b.CityIDs()
	if !sort.StringsAreSorted(ids) {
		t.Errorf("CityIDs not sorted: %v", ids)
	}
	if len(ids) != b.Len() {
		t.Errorf("len(CityIDs) = %d; want %d", len(ids), b.Len())
	}

	// Mutating the returned slice must not affect the Base.
	ids[0] = "zzz"
	if b.CityIDs()[0] == "zzz" {
		t.Error("CityIDs returned an aliased internal slice")
	}
}

// TestCity_Lookup checks both the found and not-found paths.
func TestCity_Lookup(t *testing.T) {
	b := kb.Default()

	c, err := b.City("colombo")
	if err != nil {
		t.Fatalf("City(colombo): %v", err)
	}
	if c.Budget != kb.Variable || c.BestSeason != kb.AllYear {
		t.Errorf("colombo tags = (%s, %s); want (variable, all_year)", c.Budget, c.BestSeason)
	}

	if _, err = b.City("atlantis"); !errors.Is(err, kb.ErrCityNotFound) {
		t.Errorf("City(atlantis) error = %v; want ErrCityNotFound", err)
	}
}

// TestNeighbors_SortedAndSymmetric verifies adjacency ordering and that every
// hop exists in both directions with the same distance.
func TestNeighbors_SortedAndSymmetric(t *testing.T) {
	b := kb.Default()
	for _, id := range b.CityIDs() {
		hops, err := b.Neighbors(id)
		if err != nil {
			t.Fatalf("Neighbors(%s): %v", id, err)
		}
		for i := 1; i < len(hops); i++ {
			if hops[i-1].To >= hops[i].To {
				t.Errorf("Neighbors(%s) not sorted: %v", id, hops)
			}
		}
		for _, h := range hops {
			back, ok := b.Distance(h.To, id)
			if !ok || back != h.Km {
				t.Errorf("asymmetric link %s—%s: %d vs (%d, %v)", id, h.To, h.Km, back, ok)
			}
		}
	}

	if _, err := b.Neighbors("atlantis"); !errors.Is(err, kb.ErrCityNotFound) {
		t.Errorf("Neighbors(atlantis) error = %v; want ErrCityNotFound", err)
	}
}

// TestConnection_Other exercises the endpoint helper.
func TestConnection_Other(t *testing.T) {
	c := kb.Connection{A: "galle", B: "mirissa", Km: 36}
	if got := c.Other("galle"); got != "mirissa" {
		t.Errorf("Other(galle) = %q; want mirissa", got)
	}
	if got := c.Other("mirissa"); got != "galle" {
		t.Errorf("Other(mirissa) = %q; want galle", got)
	}
	if got := c.Other("kandy"); got != "" {
		t.Errorf("Other(kandy) = %q; want empty", got)
	}
}
