// Package comparator runs several scheduling policies over one workload.
// Each policy becomes a job on a messaging queue drained by a pool of
// workers; results come back in the order the policies were requested.
package comparator
