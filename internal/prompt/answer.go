// Package prompt implements the interactive questions asked while creating a
// project. Every question returns an Answer that is either a value or a
// cancellation; callers check it before using the value.
package prompt

// Answer is the outcome of a single prompt.
type Answer[T any] struct {
	value     T
	cancelled bool
}

// Answered wraps a value the user supplied.
func Answered[T any](v T) Answer[T] {
	return Answer[T]{value: v}
}

// Cancelled is the answer to a prompt the user aborted.
func Cancelled[T any]() Answer[T] {
	return Answer[T]{cancelled: true}
}

// Cancelled reports whether the user aborted the prompt.
func (a Answer[T]) Cancelled() bool {
	return a.cancelled
}

// Value returns the answer and true, or the zero value and false when cancelled.
func (a Answer[T]) Value() (T, bool) {
	if a.cancelled {
		var zero T
		return zero, false
	}
	return a.value, true
}
