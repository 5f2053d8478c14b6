// Package scheduler keeps subscribed views fresh without duplicate network
// cost.
//
// A single process-wide Scheduler owns one polling loop per
// (agency, data type) key. The loop starts when the key gains its first
// subscriber and stops when the last one cancels, so an unmounted view never
// leaves a timer running. Every poll result, success or failure, is
// broadcast to all current subscribers of the key.
package scheduler
