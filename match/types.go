// Package match implements the constraint matcher: it narrows the knowledge
// base to the destinations compatible with a traveler's declared season and
// budget, with wildcard semantics on both axes.
//
// This file declares Preference, Interest, Recommendations and the sentinel
// errors; see match.go for the matching itself.
//
// Errors:
//
//	ErrInvalidPreference - umbrella for any unrecognized selector value.
//	ErrBadSeason         - season selector outside the fixed enumeration.
//	ErrBadBudget         - budget selector outside the fixed enumeration.
//	ErrBadInterest       - interest outside the fixed enumeration.
//	ErrNilBase           - nil knowledge base passed to a matcher.
package match

import (
	"errors"
	"fmt"

	"github.com/manojtharindu11/lankatrip/kb"
)

// Sentinel errors for preference validation.
var (
	// ErrInvalidPreference is the umbrella error every selector-validation
	// failure wraps; callers may match it with errors.Is regardless of axis.
	ErrInvalidPreference = errors.New("match: invalid preference")

	// ErrBadSeason indicates a season selector outside {winter, summer, all_year}.
	ErrBadSeason = fmt.Errorf("%w: unknown season", ErrInvalidPreference)

	// ErrBadBudget indicates a budget selector outside {budget, moderate, high, variable}.
	ErrBadBudget = fmt.Errorf("%w: unknown budget", ErrInvalidPreference)

	// ErrBadInterest indicates an interest outside the fixed interest set.
	ErrBadInterest = fmt.Errorf("%w: unknown interest", ErrInvalidPreference)

	// ErrNilBase indicates a nil *kb.Base was passed to Match or Recommend.
	ErrNilBase = errors.New("match: knowledge base is nil")
)

// Interest is a traveler interest; each maps to one destination type.
type Interest string

// Traveler interests.
const (
	BeachLife Interest = "beach"
	Culture   Interest = "culture"
	History   Interest = "history"
	Nature    Interest = "nature"
	Hiking    Interest = "hiking"
)

// interestTypes maps each interest to the destination type it selects.
var interestTypes = map[Interest]kb.CityType{
	BeachLife: kb.Beach,
	Culture:   kb.Cultural,
	History:   kb.Historical,
	Nature:    kb.NationalPark,
	Hiking:    kb.HillCountry,
}

// Valid reports whether i is one of the fixed interests.
func (i Interest) Valid() bool {
	_, ok := interestTypes[i]

	return ok
}

// Preference is a traveler's declared constraints.
//
// Season and Budget use the same enumerations as city tags; kb.AllYear and
// kb.Variable act as wildcards that match every city on their axis (and a
// city tagged with the wildcard matches every selector — wildcard on either
// side is a match). Interests are optional and only promote matches to
// "highly recommended"; they never exclude a city.
type Preference struct {
	Season    kb.Season
	Budget    kb.Budget
	Interests []Interest
}

// Validate checks every selector against its enumeration.
// An unrecognized value fails with the axis sentinel (wrapping
// ErrInvalidPreference); it is never silently treated as matching nothing.
func (p Preference) Validate() error {
	if !p.Season.Valid() {
		return fmt.Errorf("%w: %q", ErrBadSeason, p.Season)
	}
	if !p.Budget.Valid() {
		return fmt.Errorf("%w: %q", ErrBadBudget, p.Budget)
	}
	for _, i := range p.Interests {
		if !i.Valid() {
			return fmt.Errorf("%w: %q", ErrBadInterest, i)
		}
	}

	return nil
}

// Recommendations is the full matcher report for one Preference.
//
// Recommended is the constraint-matched set minus Avoided. All three slices
// are sorted by city ID and freshly allocated per call.
type Recommendations struct {
	// Recommended lists cities matching both the season and budget axes,
	// excluding any city in Avoided.
	Recommended []string

	// HighlyRecommended is the subset of Recommended whose destination type
	// also matches one of the declared interests.
	HighlyRecommended []string

	// Avoided lists cities advised against for the declared season on
	// monsoon grounds, regardless of constraint match.
	Avoided []string
}
