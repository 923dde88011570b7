package match

import (
	"github.com/manojtharindu11/lankatrip/kb"
)

// Match returns the IDs of every city compatible with p, sorted ascending.
//
// A city is included iff both axes match independently:
//
//   - season axis: p.Season == city.BestSeason, or either side is kb.AllYear
//   - budget axis: p.Budget == city.Budget, or either side is kb.Variable
//
// An empty result is a legitimate outcome, not an error. The scan is a pure
// function over the immutable Base; no state is kept between calls.
//
// Complexity: O(V) over the city table.
func Match(b *kb.Base, p Preference) ([]string, error) {
	if b == nil {
		return nil, ErrNilBase
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	// Cities() is sorted by ID, so the result is too.
	out := make([]string, 0, b.Len())
	for _, c := range b.Cities() {
		if seasonMatches(p.Season, c.BestSeason) && budgetMatches(p.Budget, c.Budget) {
			out = append(out, c.ID)
		}
	}

	return out, nil
}

// seasonMatches applies the season-axis predicate: equality, or a wildcard
// (AllYear) on either side.
func seasonMatches(want, have kb.Season) bool {
	return want == have || want == kb.AllYear || have == kb.AllYear
}

// budgetMatches applies the budget-axis predicate: equality, or a wildcard
// (Variable) on either side.
func budgetMatches(want, have kb.Budget) bool {
	return want == have || want == kb.Variable || have == kb.Variable
}

// Recommend produces the full report for p: the constraint-matched set with
// monsoon-avoided cities removed, the interest-promoted subset, and the
// avoided list itself.
//
// Avoidance follows the monsoon calendar rather than city tags:
//
//   - a Winter preference avoids the east coast (northeast monsoon)
//   - a Summer preference avoids west and south coast cities that are not
//     all-year destinations (southwest monsoon)
//   - an AllYear preference avoids nothing
//
// Interests never exclude a city; they only promote matched cities of the
// corresponding destination type into HighlyRecommended.
func Recommend(b *kb.Base, p Preference) (Recommendations, error) {
	if b == nil {
		return Recommendations{}, ErrNilBase
	}
	if err := p.Validate(); err != nil {
		return Recommendations{}, err
	}

	wanted := make(map[kb.CityType]bool, len(p.Interests))
	for _, i := range p.Interests {
		wanted[interestTypes[i]] = true
	}

	var rec Recommendations
	for _, c := range b.Cities() {
		if avoided(p.Season, c) {
			rec.Avoided = append(rec.Avoided, c.ID)
			continue
		}
		if !seasonMatches(p.Season, c.BestSeason) || !budgetMatches(p.Budget, c.Budget) {
			continue
		}
		rec.Recommended = append(rec.Recommended, c.ID)
		if wanted[c.Type] {
			rec.HighlyRecommended = append(rec.HighlyRecommended, c.ID)
		}
	}

	return rec, nil
}

// avoided reports whether c falls under the monsoon-avoidance rule for the
// declared season.
func avoided(season kb.Season, c kb.City) bool {
	switch season {
	case kb.Winter:
		return c.Region == kb.East
	case kb.Summer:
		return (c.Region == kb.West || c.Region == kb.South) && c.BestSeason != kb.AllYear
	}

	return false
}
