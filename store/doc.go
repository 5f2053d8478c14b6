// Package store is the data synchronization core.
//
// Client fetches one snapshot document per call from an agency's store
// endpoint. Manager wraps Client with a process-wide cache keyed by
// (agency, data type) and deduplicates concurrent requests: while a fetch is
// in flight every caller for the same key attaches to it and receives the
// identical result, so multiple on-screen views never trigger redundant
// network calls.
//
// One Manager instance is shared by reference across all consumers.
package store
