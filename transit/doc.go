// Package transit defines the record types served by the snapshot store.
//
// The store publishes one document per (agency, data type) pair:
//   - stations: station positions plus approaching vehicles grouped by destination
//   - vehicles: live vehicle positions with line styling and run numbers
//   - lines: line membership (which stations a line serves)
//   - lastUpdated: feed freshness as a unix-millisecond timestamp
//   - outageStatus: operator-authored diagnostic for known backend problems
//
// Payloads are decoded into these types at the fetch boundary so malformed
// documents fail fast instead of propagating downstream.
package transit
