package kafka

import "errors"

// PermanentError marks a handler failure that redelivery cannot fix, such as
// an event naming a listing or match the handler is not allowed to touch. The
// consumer logs it, counts the event as skipped and commits the offset.
type PermanentError struct {
	Err error
}

func (e PermanentError) Error() string {
	if e.Err == nil {
		return "permanent handler error"
	}
	return "permanent: " + e.Err.Error()
}

func (e PermanentError) Unwrap() error { return e.Err }

// Permanent wraps err so the consumer skips the event instead of retrying it.
// A nil err stays nil.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return PermanentError{Err: err}
}

// IsPermanent reports whether err carries a PermanentError.
func IsPermanent(err error) bool {
	var perm PermanentError
	return errors.As(err, &perm)
}
