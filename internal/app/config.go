package app

import "time"

// Version of the client, reported in the User-Agent and by the version
// command.
const Version = "0.1.0"

// DefaultServer is the vault server used when none is configured.
const DefaultServer = "lastpass.com"

// Config holds runtime wiring options for building the app.
type Config struct {
	Server  string        // vault server host, e.g. "lastpass.com"
	Timeout time.Duration // per-request timeout; transport default when zero
}
