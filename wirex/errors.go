package wirex

import (
	"errors"
	"io"
	"net"
	"syscall"
)

var (
	ErrConnection        = errors.New("connection error")
	ErrMalformedResponse = errors.New("malformed response")
)

type connectionError struct {
	message string
	cause   error
}

func (e connectionError) Error() string {
	if e.cause == nil {
		return "connection error: " + e.message
	}
	return "connection error: " + e.message + ": " + e.cause.Error()
}

func (e connectionError) Unwrap() error {
	return ErrConnection
}

type malformedResponseError struct {
	message string
}

func (e malformedResponseError) Error() string {
	return "malformed response: " + e.message
}

func (e malformedResponseError) Unwrap() error {
	return ErrMalformedResponse
}

// isBrokenConnError reports whether a write failed because the peer closed or
// reset the connection, the one condition that triggers a reconnect.
func isBrokenConnError(err error) bool {
	return errors.Is(err, syscall.EPIPE) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, net.ErrClosed) ||
		errors.Is(err, io.ErrClosedPipe)
}

func isTimeoutError(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
