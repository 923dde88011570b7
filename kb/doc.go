// Package kb holds the static travel knowledge base: every destination with
// its season, budget, climate, region and attraction facts, plus the
// undirected weighted road network connecting them.
//
// Overview:
//
//   - City and Connection are plain immutable facts; cities are referenced
//     by ID everywhere else in the module and never duplicated.
//   - Base is the validated container: NewBase checks every city and
//     connection up front and fails fast on the first authoring defect, so a
//     Base that exists is always internally consistent.
//   - Default() builds the embedded Sri Lanka dataset (42 cities, 73 road
//     links) exactly once for the whole process.
//
// Validation performed by NewBase:
//
//   - city IDs non-empty and unique (ErrEmptyCityID, ErrDuplicateCity)
//   - coordinates within [-90,90] × [-180,180] (ErrBadCoordinate)
//   - every tag within its fixed enumeration (ErrBadTag)
//   - connection endpoints known, distinct, unique as a pair
//     (ErrUnknownEndpoint, ErrSelfConnection, ErrDuplicateConnection)
//   - distances strictly positive (ErrBadDistance)
//
// Concurrency:
//
//   - A Base is immutable after construction and safe for unsynchronized
//     concurrent readers. Accessors return copies, never internal slices.
//
// Determinism:
//
//   - CityIDs and Cities are sorted ascending; Neighbors lists are sorted by
//     neighbor ID. Downstream algorithms inherit deterministic iteration
//     order from these guarantees.
package kb
