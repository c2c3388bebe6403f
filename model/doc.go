// Package model contains the in-memory representation of a scheduling
// simulation: process descriptors supplied by a workload source, the
// execution timeline produced by a policy engine and the metric records
// derived from it.
//
// Types in this package are plain data.  Policy engines live in the `policy`
// package and the aggregation logic in `metrics`; both only import model so
// that callers can reference the whole data contract with a single import.
package model
