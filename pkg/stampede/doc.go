// Package stampede defines the core types of a parallel, fault-isolating
// batch pipeline: tasks, outcomes, fault classification, and the run report.
//
// The package holds only data types and pure helpers:
// - Task/Delivery: one input-to-output processing unit and its result pair
// - Outcome: the terminal classification of a task (success/skipped/failed)
// - Kind/Fault/CatchPolicy: tag-based error classification and containment
// - RunReport/BuildReport: the input-keyed result table of one invocation
//
// Execution plumbing lives in the core subpackage; orchestration in drive;
// default load and persistence collaborators in fetch and store.
package stampede
