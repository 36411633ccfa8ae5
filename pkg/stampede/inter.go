package stampede

import "time"

// OutcomeView is the read surface of a settled Outcome.
type OutcomeView interface {
	// Output returns the resolved destination identifier
	Output() string
	// IsSuccess reports a fully processed task
	IsSuccess() bool
	// IsSkipped reports a task short-circuited by an existing destination
	IsSkipped() bool
	// IsFailure reports a contained per-item failure
	IsFailure() bool
	// Err returns the contained cause, nil unless IsFailure
	Err() error
	// FinishedAt returns the completion time (UTC), zero when skipped
	FinishedAt() time.Time
}

// Kinder is implemented by errors that carry a classification tag.
type Kinder interface {
	Kind() Kind
}

var (
	_ OutcomeView = Outcome{}
	_ Kinder      = (*Fault)(nil)
)
