// Package server exposes the synchronized snapshots over a read-only HTTP
// API: per-agency GeoJSON feature collections, ranked arrival boards, feed
// freshness and outage diagnostics.
//
// When an upstream fetch fails the API degrades instead of erroring
// opaquely: it consults the agency's outage diagnostic and serves the
// operator-authored message, falling back to a generic one.
package server
