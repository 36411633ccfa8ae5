package stampede

import "context"

// Task is one input-to-output processing unit. Seq is the position of the
// input in the submitted slice and is the identity used to merge outcomes;
// duplicate inputs get distinct Seq values and distinct tasks.
type Task struct {
	Seq    int
	Input  string
	Output string
}

// Delivery pairs a task with its settled outcome, as emitted by workers.
type Delivery struct {
	Task    Task
	Outcome Outcome
}

// LoadFunc materializes the in-memory object for an input identifier.
type LoadFunc[T any] func(ctx context.Context, input string) (T, error)

// OpFunc is one transformation step, applied left to right.
type OpFunc[T any] func(ctx context.Context, obj T) (T, error)

// WriteFunc persists the object to the resolved destination. It must be
// safe under concurrent invocation against an identical destination.
type WriteFunc[T any] func(ctx context.Context, obj T, output string) error

// PathFunc maps an input identifier to its destination identifier.
// It must be pure; it is applied once per input occurrence at dispatch time.
type PathFunc func(input string) (string, error)

// SkipFunc decides, per task and just before the load stage, whether the
// destination already exists and the task should short-circuit to Skip.
type SkipFunc func(ctx context.Context, output string) (bool, error)
