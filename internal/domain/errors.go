package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrUserAbort is returned when the human explicitly cancels, for
	// example by aborting the secret prompt.
	ErrUserAbort = errors.New("aborted by user")

	// ErrInvalidCredentials is the server-confirmed wrong-password outcome.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrInvalidUser is the server-confirmed unknown-account outcome.
	ErrInvalidUser = errors.New("unknown username")

	// ErrNoSecret is returned by a SecretProvider that has no value to
	// offer (for example, the user submitted an empty line).
	ErrNoSecret = errors.New("no secret provided")
)

// OtpRequiredError reports that the server demands a second factor, and
// which kind.
type OtpRequiredError struct {
	Method OtpMethod
}

func (e *OtpRequiredError) Error() string {
	return fmt.Sprintf("one-time password required (%s)", e.Method)
}

// UnsupportedError reports a server authentication mode this client
// recognizes but does not implement.
type UnsupportedError struct {
	Mode string
}

func (e *UnsupportedError) Error() string {
	return "unsupported authentication mode: " + e.Mode
}

// ProtocolError reports a malformed server reply, a missing required
// field, or an unrecognized server error cause. Reason carries the raw
// cause text verbatim when one is available.
type ProtocolError struct {
	Reason string
}

func (e *ProtocolError) Error() string {
	return "protocol error: " + e.Reason
}

// HTTPStatusError reports a response status other than 200.
type HTTPStatusError struct {
	Code int
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("unexpected HTTP status %d", e.Code)
}

// TransportError wraps a network-level failure: DNS, connect, TLS
// handshake (including pin rejection), or I/O. It is kept distinct from
// protocol-level errors.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "transport failure: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error { return e.Err }
