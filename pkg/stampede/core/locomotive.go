package core

import "context"

// Engine turns one input into one output. A non-nil error is an uncaught
// fault: it aborts the whole pool instead of producing an output.
type Engine[In, Out any] func(ctx context.Context, in In) (Out, error)

// Locomotive is the worker loop: it pulls inputs until the channel closes,
// runs the engine, and pushes each output downstream. A context cancelled
// by a sibling's fault ends the loop without an error of its own, so the
// first fault stays the one reported.
func Locomotive[In, Out any](ctx context.Context, inputCh <-chan In, outCh chan<- Out, engine Engine[In, Out]) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case in, ok := <-inputCh:
			if !ok {
				return nil
			}

			out, err := engine(ctx, in)
			if err != nil {
				return err
			}

			select {
			case <-ctx.Done():
				return nil
			case outCh <- out:
			}
		}
	}
}
