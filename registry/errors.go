package registry

import (
	"errors"
	"fmt"
	"net/http"

	semerrors "github.com/c360studio/semstreams/pkg/errs"
)

// ErrMissingLocation is returned by Create when the registry does not answer
// with an identifier for the new entity.
var ErrMissingLocation = errors.New("registry returned no location")

// StatusError is a non-2xx response from the registry.
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s returned status code %d", e.Method, e.URL, e.StatusCode)
}

// Transient reports whether the status is worth retrying.
func (e *StatusError) Transient() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= 500
}

// classify marks err as transient or invalid so retries only repeat requests
// that can succeed on a second attempt.
func classify(err error, method, action string) error {
	var se *StatusError
	if errors.As(err, &se) && !se.Transient() {
		return semerrors.WrapInvalid(err, "registry", method, action)
	}
	return semerrors.WrapTransient(err, "registry", method, action)
}
