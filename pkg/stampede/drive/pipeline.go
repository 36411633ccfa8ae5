package drive

import (
	"context"
	"log/slog"
	"sync"

	"github.com/ib-77/stampede/pkg/stampede"
	"github.com/ib-77/stampede/pkg/stampede/core"
	"github.com/ib-77/stampede/pkg/stampede/store"
	"github.com/pkg/errors"
)

// Config is the static configuration of a Pipeline. Load and Write are
// required; Ops may be empty. A nil Skip defaults to the exists-on-disk
// check, a nil Logger to slog.Default().
type Config[T any] struct {
	Load   stampede.LoadFunc[T]
	Ops    []stampede.OpFunc[T]
	Write  stampede.WriteFunc[T]
	Skip   stampede.SkipFunc
	Logger *slog.Logger
}

// NoSkip disables skip detection: every task runs the full stage sequence.
func NoSkip(context.Context, string) (bool, error) {
	return false, nil
}

// State is the orchestrator phase visible between method calls. Completed
// and aborted runs both settle back to Idle; their difference is carried by
// the Run return values.
type State int8

const (
	Idle State = iota
	Running
)

// Pipeline owns a configuration and runs it over input batches. Each Run
// invocation is independent; the only state kept across runs is the
// configuration and the latest report.
type Pipeline[T any] struct {
	mu    sync.Mutex
	cfg   Config[T]
	last  *stampede.RunReport
	state State
}

// New builds a Pipeline from cfg, applying the documented defaults.
func New[T any](cfg Config[T]) *Pipeline[T] {
	if cfg.Skip == nil {
		cfg.Skip = store.ExistsOnDisk
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Pipeline[T]{cfg: cfg}
}

// SetOps replaces the transformation sequence for subsequent runs.
func (p *Pipeline[T]) SetOps(ops ...stampede.OpFunc[T]) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cfg.Ops = ops
}

// LastReport returns the report of the most recent completed run, or nil.
// Aborted runs leave it untouched.
func (p *Pipeline[T]) LastReport() *stampede.RunReport {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.last
}

// State returns the current orchestrator phase.
func (p *Pipeline[T]) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Run processes every input once: resolve its destination via pathFn,
// short-circuit to skipped if the destination exists, otherwise
// load -> ops -> write, with lines parallel workers. Per-item errors
// covered by policy become failed rows; the first uncovered error is
// logged at error level and returned, and no report is produced.
// The returned report has exactly one row per input occurrence and is also
// cached as LastReport.
func (p *Pipeline[T]) Run(ctx context.Context, inputs []string, pathFn stampede.PathFunc,
	lines int, policy stampede.CatchPolicy) (*stampede.RunReport, error) {

	p.mu.Lock()
	cfg := p.cfg
	p.state = Running
	p.mu.Unlock()

	defer func() {
		p.mu.Lock()
		p.state = Idle
		p.mu.Unlock()
	}()

	logger := cfg.Logger
	if cfg.Load == nil || cfg.Write == nil {
		return nil, errors.New("pipeline: load and write functions are required")
	}
	if pathFn == nil {
		return nil, errors.New("pipeline: path function is required")
	}

	outcomes := make([]stampede.Outcome, len(inputs))
	tasks := make([]stampede.Task, 0, len(inputs))
	for i, input := range inputs {
		output, err := pathFn(input)
		if err != nil {
			if !policy.Covers(err) {
				logger.Error("run aborted",
					"stage", "resolve", "input", input, "policy", policy.String(), "err", err)
				return nil, err
			}
			outcomes[i] = stampede.Fail("", err)
			continue
		}
		tasks = append(tasks, stampede.Task{Seq: i, Input: input, Output: output})
	}

	runner := &stageRunner[T]{
		load:   cfg.Load,
		ops:    cfg.Ops,
		write:  cfg.Write,
		skip:   cfg.Skip,
		policy: policy,
	}

	ctx = core.WithLogger(ctx, logger)
	deliveries, wait, err := core.Pool(ctx, tasks, runner.run, lines)
	if err != nil {
		logger.Error("run aborted", "stage", "dispatch", "err", err)
		return nil, err
	}

	for d := range deliveries {
		outcomes[d.Task.Seq] = d.Outcome
	}

	if err := wait(); err != nil {
		logger.Error("run aborted", "policy", policy.String(), "err", err)
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		logger.Error("run aborted", "err", err)
		return nil, err
	}

	report, err := stampede.BuildReport(inputs, outcomes)
	if err != nil {
		logger.Error("run aborted", "stage", "report", "err", err)
		return nil, err
	}

	p.mu.Lock()
	p.last = report
	p.mu.Unlock()

	logger.Info("run completed",
		"inputs", report.Len(), "succeeded", report.Successes(),
		"skipped", report.Skips(), "failed", report.Failures())
	return report, nil
}
