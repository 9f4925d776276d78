package domain

import (
	"context"

	"lpass/internal/secmem"
)

// Field is one name/value pair of a form-encoded request body. Order is
// significant, so requests carry slices of Field rather than maps.
type Field struct {
	Name  string
	Value []byte
}

// Transport posts a form-encoded request to a page on the vault server and
// returns the raw response body. Exactly HTTP 200 counts as success; other
// statuses surface as *HTTPStatusError and network-level failures as
// *TransportError.
type Transport interface {
	Post(ctx context.Context, server, page string, fields []Field) ([]byte, error)
}

// SecretProvider obtains a secret from the human operator: the master
// password before login, or a one-time code during an OTP round.
//
// priorError, when non-empty, describes why the previous attempt was
// rejected and should be surfaced before prompting again. Returns the
// secret in locked memory (owned by the caller), ErrNoSecret when the
// user offered nothing, or ErrUserAbort on explicit cancel.
type SecretProvider interface {
	RequestSecret(title, description, priorError string) (*secmem.Buffer, error)
}
