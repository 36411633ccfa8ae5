package stampede

import (
	"time"

	"github.com/google/uuid"
)

// Outcome is the terminal classification of one Task. Exactly one of
// success, skipped or failed; the zero value is unsettled and only appears
// while a run is in flight.
type Outcome struct {
	id         uuid.UUID
	output     string
	skipped    bool
	cause      error
	finishedAt time.Time
	settled    bool
}

// Succeed records a fully processed task. The finish time is taken now, UTC.
func Succeed(output string) Outcome {
	return Outcome{
		output:     output,
		finishedAt: time.Now().UTC(),
		settled:    true,
		id:         uuid.New(),
	}
}

// Skip records a task that was short-circuited because its destination
// already exists. Skipped outcomes carry no finish time: the item was never
// processed this run.
func Skip(output string) Outcome {
	return Outcome{
		output:  output,
		skipped: true,
		settled: true,
		id:      uuid.New(),
	}
}

// Fail records a contained per-item failure.
func Fail(output string, cause error) Outcome {
	return Outcome{
		output:     output,
		cause:      cause,
		finishedAt: time.Now().UTC(),
		settled:    true,
		id:         uuid.New(),
	}
}

func (o Outcome) Output() string {
	return o.output
}

func (o Outcome) Err() error {
	return o.cause
}

func (o Outcome) IsSuccess() bool {
	return o.settled && !o.skipped && o.cause == nil
}

func (o Outcome) IsSkipped() bool {
	return o.skipped
}

func (o Outcome) IsFailure() bool {
	return o.cause != nil
}

func (o Outcome) IsSettled() bool {
	return o.settled
}

func (o Outcome) FinishedAt() time.Time {
	return o.finishedAt
}

func (o Outcome) Id() uuid.UUID {
	return o.id
}
