// Package result provides the success/failure wrapper used as the return
// contract of the credential and workflow operations. It keeps every fallible
// path inspectable by the caller instead of propagating errors past a layer
// boundary.
package result

// Result is a tagged union: either a success carrying a value, or a failure
// carrying an error. A success never carries an error and vice versa.
type Result[T any] struct {
	value T
	err   error
	ok    bool
}

// Ok creates a successful Result wrapping a value.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value, ok: true}
}

// Fail creates a failed Result wrapping an error.
func Fail[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// IsSuccess reports whether the Result carries a value.
func (r Result[T]) IsSuccess() bool {
	return r.ok
}

// IsFailure reports whether the Result carries an error.
func (r Result[T]) IsFailure() bool {
	return !r.ok
}

// Value returns the contained value. Calling Value on a failure is a
// programmer error and panics rather than returning a zero value.
func (r Result[T]) Value() T {
	if !r.ok {
		panic("result: Value called on a failed result")
	}

	return r.value
}

// Err returns the contained error, or nil for a success.
func (r Result[T]) Err() error {
	return r.err
}
