// Package route plans journeys over the knowledge base's road network.
//
// Overview:
//
//   - Shortest computes the minimum-distance route between two cities with
//     Dijkstra's algorithm: a min-heap frontier, lazy decrease-key (duplicate
//     pushes, stale entries skipped via the settled set) and predecessor
//     reconstruction. Ties on equal tentative distance break by city ID, so
//     output paths are deterministic.
//   - ShortestWithin runs the same full-network search and additionally
//     reports whether the destination belongs to a caller-supplied set,
//     typically the matcher's recommendation set. The network itself is
//     never restricted: a route may pass through non-recommended cities, and
//     optimality is never traded for set membership.
//   - Alternatives enumerates up to N distinct simple routes by bounded
//     depth-first search, sorted by total distance.
//   - WithinDistance lists every city reachable within a kilometre budget.
//
// Edge cases:
//
//   - start == end is a zero-hop route with total distance 0 — not an error.
//   - A disconnected destination fails with ErrNoRoute; it is never reported
//     as a zero-distance or infinite-distance route.
//   - Unknown endpoints fail with kb.ErrCityNotFound.
//   - Negative distances fail with ErrNegativeDistance. kb.NewBase already
//     rejects them, so the pre-scan here only fires on a corrupt Base.
//
// Options:
//
//   - WithMaxDistance(km): cap exploration; cities beyond the cap are never
//     settled, and a destination beyond it reports ErrNoRoute.
//
// Complexity:
//
//   - Shortest / WithinDistance: O((V + E) log V) time, O(V + E) space.
//   - Alternatives: exponential worst case, cut off after max routes.
//
// Thread safety:
//
//   - All functions are pure over the immutable kb.Base; concurrent queries
//     need no synchronization.
package route
