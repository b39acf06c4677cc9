package upstream

import (
	"errors"
	"fmt"

	crerr "github.com/cockroachdb/errors"
)

// ErrUnavailable marks any failure to obtain data from the provider:
// transport errors, timeouts, missing credentials, an open circuit and
// non-success statuses. Callers fall back to local data on it.
var ErrUnavailable = crerr.New("football provider unavailable")

// StatusError is a non-2xx provider response.
type StatusError struct {
	Endpoint string
	Status   int
	Body     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("football provider %s returned status %d: %s", e.Endpoint, e.Status, e.Body)
}

// Is lets errors.Is(err, ErrUnavailable) match status failures.
func (e *StatusError) Is(target error) bool {
	return target == ErrUnavailable
}

// Retryable reports whether a repeat of the request could succeed.
func (e *StatusError) Retryable() bool {
	return e.Status == 429 || e.Status >= 500
}

// Unavailable wraps cause so it matches ErrUnavailable while keeping the
// cause reachable through errors.Is and errors.As.
func Unavailable(cause error, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if cause == nil {
		return crerr.Wrap(ErrUnavailable, msg)
	}
	return &unavailableError{msg: msg, cause: cause}
}

type unavailableError struct {
	msg   string
	cause error
}

func (e *unavailableError) Error() string {
	return e.msg + ": " + e.cause.Error()
}

func (e *unavailableError) Unwrap() error {
	return e.cause
}

func (e *unavailableError) Is(target error) bool {
	return target == ErrUnavailable
}

// IsUnavailable reports whether err should trigger a local fallback.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}
