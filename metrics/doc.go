// Package metrics derives per-process and system-wide scheduling statistics
// from a timeline and flags starved processes.  Every function here is a pure
// reduction over its inputs.
package metrics
