package drive

import (
	"context"

	"github.com/ib-77/stampede/pkg/stampede"
	"github.com/ib-77/stampede/pkg/stampede/core"
)

// stageRunner executes the fixed stage sequence for one task:
// skip check, load, ops in order, write.
type stageRunner[T any] struct {
	load   stampede.LoadFunc[T]
	ops    []stampede.OpFunc[T]
	write  stampede.WriteFunc[T]
	skip   stampede.SkipFunc
	policy stampede.CatchPolicy
}

// run classifies the attempt under the active policy. Covered errors settle
// the task as failed and keep the run alive; anything else is returned and
// aborts the pool.
func (s *stageRunner[T]) run(ctx context.Context, t stampede.Task) (stampede.Delivery, error) {
	oc, err := s.attempt(ctx, t)
	if err != nil {
		if !s.policy.Covers(err) {
			return stampede.Delivery{}, err
		}
		core.LoggerFrom(ctx).Warn("task failed",
			"input", t.Input, "output", t.Output, "err", err)
		oc = stampede.Fail(t.Output, err)
	}
	return stampede.Delivery{Task: t, Outcome: oc}, nil
}

func (s *stageRunner[T]) attempt(ctx context.Context, t stampede.Task) (stampede.Outcome, error) {
	skip, err := s.skip(ctx, t.Output)
	if err != nil {
		return stampede.Outcome{}, err
	}
	if skip {
		core.LoggerFrom(ctx).Debug("task skipped, destination exists",
			"input", t.Input, "output", t.Output)
		return stampede.Skip(t.Output), nil
	}

	obj, err := s.load(ctx, t.Input)
	if err != nil {
		return stampede.Outcome{}, err
	}

	for _, op := range s.ops {
		if obj, err = op(ctx, obj); err != nil {
			return stampede.Outcome{}, err
		}
	}

	if err := s.write(ctx, obj, t.Output); err != nil {
		return stampede.Outcome{}, err
	}
	return stampede.Succeed(t.Output), nil
}
