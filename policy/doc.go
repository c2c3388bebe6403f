// Package policy implements the CPU scheduling policy engines.
//
// Every engine turns a workload (model.Processes) into a model.Timeline.  The
// engines share one discrete-event loop; what differs is the strategy that
// decides which ready task runs next and for how long:
//
//   - FCFS       – first come, first served
//   - SJF        – non-preemptive shortest job first
//   - SRTF       – preemptive shortest remaining time first
//   - RoundRobin – fixed quantum, FIFO ready queue
//   - Priority   – non-preemptive, lower value wins
//   - CFS        – simplified completely fair scheduler (virtual runtime)
//   - MLFQ       – multilevel feedback queue with demotion
//
// Engines hold no state between calls and can run concurrently.
package policy
