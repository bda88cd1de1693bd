package webservice

import "context"

// Future is a load result that resolves exactly once.
type Future[T any] struct {
	done   chan struct{}
	result Result[T]
}

// LoadFuture issues the resource's request like LoadContext and returns a
// Future for its outcome. If the webservice uses a dispatcher, the future
// resolves when the dispatcher runs the completion.
func LoadFuture[T any](ctx context.Context, ws *Webservice, resource Resource[T]) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	LoadContext(ctx, ws, resource, func(r Result[T]) {
		f.result = r
		close(f.done)
	})
	return f
}

// Done is closed once the result is available.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Result blocks until the load completes.
func (f *Future[T]) Result() Result[T] {
	<-f.done
	return f.result
}

// Await waits for the result or for ctx to end. When ctx ends first it
// returns the zero Result, which is not a success, and ctx.Err(). Giving up
// on the wait does not cancel the request.
func (f *Future[T]) Await(ctx context.Context) (Result[T], error) {
	select {
	case <-f.done:
		return f.result, nil
	case <-ctx.Done():
		return Result[T]{}, ctx.Err()
	}
}
