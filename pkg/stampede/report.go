package stampede

import (
	"time"

	"github.com/pkg/errors"
)

// Row is one report entry. Exactly one row exists per submitted input
// occurrence. Error is the flat rendered cause ("" when none);
// TimeFinished is zero for skipped rows.
type Row struct {
	Input        string
	Outpath      string
	Skipped      bool
	Error        string
	TimeFinished time.Time
}

// Failed reports whether the row records a contained failure.
func (r Row) Failed() bool {
	return r.Error != ""
}

// Succeeded reports whether the row records a fully processed item.
func (r Row) Succeeded() bool {
	return !r.Skipped && r.Error == ""
}

// RunReport is the complete, input-keyed result table of one pipeline
// invocation. Rows keep submission order; the by-input index maps an input
// identifier to all of its occurrences.
type RunReport struct {
	rows  []Row
	index map[string][]int
}

// BuildReport zips the submitted inputs with their outcomes, matched by
// task position rather than completion order. It refuses to build a report
// with missing or unsettled outcomes; the engine treats that as an
// infrastructure fault, never as a per-item one.
func BuildReport(inputs []string, outcomes []Outcome) (*RunReport, error) {
	if len(inputs) != len(outcomes) {
		return nil, errors.Errorf("report: %d inputs but %d outcomes", len(inputs), len(outcomes))
	}

	r := &RunReport{
		rows:  make([]Row, len(inputs)),
		index: make(map[string][]int, len(inputs)),
	}
	for i, input := range inputs {
		oc := outcomes[i]
		if !oc.IsSettled() {
			return nil, errors.Errorf("report: input %q (position %d) has no outcome", input, i)
		}
		r.rows[i] = Row{
			Input:        input,
			Outpath:      oc.Output(),
			Skipped:      oc.IsSkipped(),
			Error:        Describe(oc.Err()),
			TimeFinished: oc.FinishedAt(),
		}
		r.index[input] = append(r.index[input], i)
	}
	return r, nil
}

// Len returns the number of rows, which always equals the number of
// submitted inputs, duplicates included.
func (r *RunReport) Len() int {
	return len(r.rows)
}

// Rows returns all rows in submission order.
func (r *RunReport) Rows() []Row {
	out := make([]Row, len(r.rows))
	copy(out, r.rows)
	return out
}

// At returns the row at the given submission position.
func (r *RunReport) At(i int) Row {
	return r.rows[i]
}

// ByInput returns every row recorded for the given input identifier,
// in submission order.
func (r *RunReport) ByInput(input string) []Row {
	idx := r.index[input]
	out := make([]Row, 0, len(idx))
	for _, i := range idx {
		out = append(out, r.rows[i])
	}
	return out
}

// Lookup returns the first row for the given input identifier.
func (r *RunReport) Lookup(input string) (Row, bool) {
	idx := r.index[input]
	if len(idx) == 0 {
		return Row{}, false
	}
	return r.rows[idx[0]], true
}

// Successes counts fully processed rows.
func (r *RunReport) Successes() int {
	n := 0
	for _, row := range r.rows {
		if row.Succeeded() {
			n++
		}
	}
	return n
}

// Skips counts skipped rows.
func (r *RunReport) Skips() int {
	n := 0
	for _, row := range r.rows {
		if row.Skipped {
			n++
		}
	}
	return n
}

// Failures counts rows with a contained failure.
func (r *RunReport) Failures() int {
	n := 0
	for _, row := range r.rows {
		if row.Failed() {
			n++
		}
	}
	return n
}
