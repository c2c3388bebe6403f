// Package schedsim simulates CPU scheduling policies over a workload of
// processes and compares them through derived metrics.
//
// The root Service ties together the pluggable layers:
//
//   - policy     – FCFS, SJF, SRTF, Round Robin, Priority, CFS and MLFQ engines
//   - metrics    – per-process and global metrics, starvation detection
//   - comparator – concurrent multi-policy comparison
//   - workload   – file, synthetic and live process sources
//   - dao        – run persistence
//
// Typical use:
//
//	srv, _ := schedsim.New()
//	processes, _ := srv.LoadWorkload(ctx, "workload.yaml")
//	runs, _ := srv.Compare(ctx, processes)
//	report.Comparison(os.Stdout, runs)
package schedsim
