// Package snapshot converts raw store snapshots into renderable values.
//
// Everything here is a pure function over already-fetched data: GeoJSON
// feature collections for the map, a running bounding box for the initial
// viewport, ranked per-destination arrival boards for station popups, and
// countdown strings. No I/O, deterministic given the same inputs.
package snapshot
