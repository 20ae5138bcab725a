package envutil

// Option modifies a Reader. It's used by functions like String and Bool so
// that the caller can provide defaults, missing errors and validation.
type Option[T any] func(Reader[T]) Reader[T]

// Default supplies a value for when the variable is unset.
func Default[T any](dfl T) Option[T] {
	return func(rdr Reader[T]) Reader[T] {
		return rdr.WithDefault(dfl)
	}
}

// IfMissing makes Value return err when the variable is unset.
func IfMissing[T any](err error) Option[T] {
	return func(rdr Reader[T]) Reader[T] {
		return rdr.WithErrorIfMissing(err)
	}
}

// Validate runs f on a present value. A non-nil result becomes the Reader's error.
func Validate[T any](f func(T) error) Option[T] {
	return func(rdr Reader[T]) Reader[T] {
		return rdr.Map(func(val T) (T, error) {
			return val, f(val)
		})
	}
}

func apply[T any](rdr Reader[T], opts []Option[T]) Reader[T] {
	for _, opt := range opts {
		rdr = opt(rdr)
	}

	return rdr
}
