package browserx

import (
	"errors"
	"fmt"
)

var (
	ErrMissingLocation  = errors.New("redirect response missing location header")
	ErrTooManyRedirects = errors.New("too many redirects")
	ErrUnexpectedStatus = errors.New("unexpected status")
)

// StatusError surfaces a response whose status class is neither success nor
// redirect.
type StatusError struct {
	StatusCode  int
	Explanation string
}

func (e StatusError) Error() string {
	return fmt.Sprintf("unexpected http status: %d %s", e.StatusCode, e.Explanation)
}

func (e StatusError) Unwrap() error {
	return ErrUnexpectedStatus
}
