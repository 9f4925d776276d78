package domain

import (
	"strings"

	"lpass/internal/secmem"
)

// Session is one login identity and its state. It starts unauthenticated,
// is mutated only by the login sequence, and is not safe for concurrent
// use: the goroutine driving the login owns it exclusively.
type Session struct {
	username   string
	server     string
	iterations int

	uid       int64
	sessionID *secmem.Buffer
	token     *secmem.Buffer
	cryptoKey *secmem.Buffer
}

// NewSession creates an unauthenticated session. Usernames are always
// lowercase on the wire, so username is converted if necessary.
func NewSession(username, server string) *Session {
	return &Session{
		username: strings.ToLower(username),
		server:   server,
	}
}

// Username returns the lowercased account name.
func (s *Session) Username() string { return s.username }

// Server returns the vault server host name.
func (s *Session) Server() string { return s.server }

// Iterations returns the memoized KDF work factor, if it has been fetched.
func (s *Session) Iterations() (int, bool) {
	return s.iterations, s.iterations > 0
}

// SetIterations memoizes the server's KDF work factor for this session.
func (s *Session) SetIterations(n int) { s.iterations = n }

// Authenticated reports whether the login protocol has completed. It holds
// exactly when both the session ID and the token are present.
func (s *Session) Authenticated() bool {
	return s.sessionID != nil && s.token != nil
}

// Authenticate installs the server-issued identity and the locally derived
// crypto key in one step. The session takes ownership of all three buffers.
func (s *Session) Authenticate(uid int64, sessionID, token, cryptoKey *secmem.Buffer) {
	s.uid = uid
	s.sessionID = sessionID
	s.token = token
	s.cryptoKey = cryptoKey
}

// UID returns the numeric account ID issued at login.
func (s *Session) UID() int64 { return s.uid }

// SessionID returns the server-issued session identifier, or nil before
// authentication.
func (s *Session) SessionID() *secmem.Buffer { return s.sessionID }

// Token returns the server-issued session token, or nil before
// authentication.
func (s *Session) Token() *secmem.Buffer { return s.token }

// CryptoKey returns the derived vault decryption key, or nil before
// authentication. It never leaves the process.
func (s *Session) CryptoKey() *secmem.Buffer { return s.cryptoKey }

// Destroy wipes every secret the session holds. The session is
// unauthenticated afterwards.
func (s *Session) Destroy() {
	s.sessionID.Destroy()
	s.token.Destroy()
	s.cryptoKey.Destroy()
	s.sessionID = nil
	s.token = nil
	s.cryptoKey = nil
	s.uid = 0
}
