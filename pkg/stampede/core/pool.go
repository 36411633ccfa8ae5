package core

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Pool fans inputs across a bounded number of locomotive lines. It returns
// the output channel and a wait function that blocks until every line has
// stopped and reports the first uncaught engine fault, if any. The output
// channel closes once all lines stop, so callers can drain it fully before
// calling wait. lines == 1 degrades to plain sequential processing.
func Pool[In, Out any](ctx context.Context, inputs []In, engine Engine[In, Out], lines int) (<-chan Out, func() error, error) {
	if lines < 1 {
		return nil, nil, errors.Errorf("pool: lines must be positive, got %d", lines)
	}

	g, gctx := errgroup.WithContext(ctx)
	inCh := Feed(gctx, inputs)
	outCh := make(chan Out)

	for i := 0; i < lines; i++ {
		g.Go(func() error {
			return Locomotive(gctx, inCh, outCh, engine)
		})
	}

	go func() {
		_ = g.Wait()
		close(outCh)
	}()

	return outCh, g.Wait, nil
}
