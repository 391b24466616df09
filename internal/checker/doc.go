// Package checker orchestrates a single appointment check.
//
// A check fetches the operational locations for the configured service,
// filters them by the state allow-list, fans out one slot request per
// matching location with bounded concurrency, and merges the per-location
// results into one sorted appointment list. In watch mode the checker also
// tracks which appointments have already been reported so a slot is only
// announced once per process lifetime.
package checker
