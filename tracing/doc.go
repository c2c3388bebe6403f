// Package tracing integrates OpenTelemetry with the simulator so that policy
// runs, metric aggregation and multi-policy comparisons show up as spans.
// Instrumentation stays in this package; when Init is never called spans go
// to the global no-op provider and cost next to nothing.
package tracing
