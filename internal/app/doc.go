// Package app wires the client's dependency graph for the CLI: the
// certificate pinner, the pinned transport, and the login engine.
package app
