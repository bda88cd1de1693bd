package webservice

// Result is the outcome of one load: either a decoded value or an *Error,
// never both. The zero Result holds no value and reports a failure.
type Result[T any] struct {
	value T
	err   *Error
	ok    bool
}

// Success wraps a decoded value.
func Success[T any](value T) Result[T] {
	return Result[T]{value: value, ok: true}
}

// Failure wraps a classified error. A nil err is treated as Other.
func Failure[T any](err *Error) Result[T] {
	if err == nil {
		err = &Error{Kind: Other, Message: "missing error"}
	}
	return Result[T]{err: err}
}

// IsSuccess reports whether the result holds a value.
func (r Result[T]) IsSuccess() bool {
	return r.ok
}

// Value returns the decoded value, or the zero value on failure.
func (r Result[T]) Value() T {
	return r.value
}

// Err returns the failure, or nil on success.
func (r Result[T]) Err() *Error {
	if r.ok {
		return nil
	}
	if r.err == nil {
		return &Error{Kind: Other, Message: "no result"}
	}
	return r.err
}

// Get returns the value and the failure as a plain error.
func (r Result[T]) Get() (T, error) {
	if !r.ok {
		var zero T
		return zero, r.Err()
	}
	return r.value, nil
}

// Match calls exactly one of onSuccess or onFailure.
func (r Result[T]) Match(onSuccess func(T), onFailure func(*Error)) {
	if !r.ok {
		if onFailure != nil {
			onFailure(r.Err())
		}
		return
	}
	if onSuccess != nil {
		onSuccess(r.value)
	}
}
