package core

import "context"

// Feed streams a slice into an unbuffered channel, closing it when the
// slice is exhausted or the context is cancelled.
func Feed[T any](ctx context.Context, values []T) <-chan T {
	in := make(chan T)

	go func() {
		defer close(in)

		for _, v := range values {
			select {
			case in <- v:
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

// Collect drains a channel into a slice. It returns when the channel is
// closed; producers own cancellation.
func Collect[T any](out <-chan T) []T {
	res := make([]T, 0)
	for v := range out {
		res = append(res, v)
	}
	return res
}
