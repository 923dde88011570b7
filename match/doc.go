// Package match narrows the knowledge base to the destinations compatible
// with a traveler's declared season and budget.
//
// Overview:
//
//   - Match is the core filter: a city is kept iff the season axis AND the
//     budget axis match independently, where kb.AllYear and kb.Variable act
//     as wildcards on either side of their axis.
//   - Recommend layers the advisory rules of the original planner on top of
//     Match: monsoon avoidance per season, and interest-based promotion of
//     matched cities into a HighlyRecommended subset.
//   - Both are pure functions over the immutable kb.Base; they allocate
//     fresh, ID-sorted result slices per call and keep no state between
//     calls. An empty result is a legitimate outcome, not an error.
//
// The original system phrased these rules as a forward-chaining engine over
// declared facts. Because no rule's conclusion feeds another rule's premise,
// the whole rule set reduces to independent predicates per city, and this
// package implements it as a plain scan — identical results, none of the
// engine machinery.
//
// Error handling (sentinel errors):
//
//   - ErrInvalidPreference:
//     Umbrella error; wrapped by every selector-validation failure, so
//     errors.Is(err, ErrInvalidPreference) catches any bad selector.
//   - ErrBadSeason, ErrBadBudget, ErrBadInterest:
//     Axis-specific wrappers identifying which selector was unrecognized.
//   - ErrNilBase:
//     A nil *kb.Base was supplied.
//
// Complexity: O(V) per call over the city table; no allocation beyond the
// result slices.
package match
