// Package drive orchestrates pipeline runs: it resolves inputs to
// destinations, dispatches tasks across a bounded worker pool, runs the
// fixed load -> ops -> write stage sequence per task with fault
// containment, and assembles the per-input run report.
//
// Common usage:
//   - New: build a Pipeline[T] from a Config[T]
//   - Run: one invocation over a slice of inputs; returns the RunReport,
//     or the first uncaught fault with no report
//   - LastReport: the report of the most recent completed run
//   - NewDownload/NewCopy: preconfigured byte pipelines
package drive
