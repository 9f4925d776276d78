package app

import (
	"lpass/internal/domain"
	"lpass/internal/pinning"
	"lpass/internal/services/session"
	"lpass/internal/transport"
)

// Wire bundles the transport and engine for the CLI.
type Wire struct {
	Server    string
	Transport domain.Transport
	Engine    *session.Engine
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) *Wire {
	server := cfg.Server
	if server == "" {
		server = DefaultServer
	}

	tc := transport.New(transport.Config{
		Pinner:    pinning.New(),
		Timeout:   cfg.Timeout,
		UserAgent: "lpass-cli/" + Version,
	})

	return &Wire{
		Server:    server,
		Transport: tc,
		Engine:    session.New(tc),
	}
}
