// Package progress defines a lightweight tracker for multi-policy
// comparisons.  The tracker travels in the context so that the comparator
// workers can report policy runs as they start, finish or fail.
package progress
