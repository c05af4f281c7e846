// Package catalog holds the immutable reference tables used by the planner:
// the five audit tracks and the design style profiles that scale them.
//
// Lookups return copies, so callers can never mutate the shared tables.
package catalog
