// Package lankatrip is an in-memory travel-planning core for Sri Lanka —
// a season- and budget-aware destination recommender plus a shortest-route
// planner over the island's road network.
//
// 🚀 What is lankatrip?
//
//	A small, pure-Go decision engine that brings together:
//		• Knowledge base: 42 destinations with season, budget, climate,
//		  region and attraction facts, plus the weighted road network
//		• Constraint matching: filter destinations by travel season and
//		  budget (with wildcard semantics), monsoon avoidance, interests
//		• Route planning: Dijkstra shortest routes, alternative paths,
//		  reachability within a distance budget
//		• Trip facade: one call from preference + endpoints to an
//		  annotated itinerary
//
// ✨ Why choose lankatrip?
//
//   - Deterministic – same inputs, same recommendations, same routes
//   - Rock-solid guarantees – the knowledge base is validated at load and
//     immutable afterwards, safe for concurrent readers without locks
//   - Pure Go – no cgo, no network, no persistence
//
// Everything is organized under four subpackages:
//
//	kb/    — immutable destination facts & the weighted road graph
//	match/ — season/budget/interest constraint matching
//	route/ — shortest routes, alternatives, reachability
//	trip/  — the query facade tying it all together
//
// Quick ASCII example:
//
//	colombo───kandy───nuwara_eliya
//	   │                    │
//	 galle───mirissa      ella
//
//	a fragment of the road network: west coast down to the beaches,
//	highlands across to Ella.
//
// Dive into the per-package doc.go files for full examples and the exact
// error contracts of each operation.
package lankatrip
