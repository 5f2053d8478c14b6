// Package assets fetches the static per-agency map assets: the route shape
// document and the icon set.
//
// Shapes are fetched once per view and filtered by route; they are not
// polled. Icons load as a bounded set of independent tasks where individual
// failures are recorded and skipped instead of aborting the batch.
package assets
