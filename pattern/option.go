package pattern

// Option is a container for a value that may instead carry an error.
// The compiler reports failures through it rather than through a second
// return value so a chain of steps can stop at the first failure.
type Option[T any] struct {
	value T
	err   error
}

// Some wraps a successful value.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value}
}

// Fail wraps an error.
func Fail[T any](err error) Option[T] {
	return Option[T]{err: err}
}

// Bind chains Option operations while handling potential errors
func (o Option[T]) Bind(f func(T) Option[T]) Option[T] {
	if o.err != nil {
		return o
	}
	return f(o.value)
}

// Err returns the carried error, or nil.
func (o Option[T]) Err() error { return o.err }

// Unwrap returns the value and the error in the usual Go form.
func (o Option[T]) Unwrap() (T, error) {
	if o.err != nil {
		var zero T
		return zero, o.err
	}
	return o.value, nil
}
