// Package commands defines the lpass CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - login    Authenticate a username against the vault server
//   - version  Print the client version
//
// The root command builds the pinned transport and login engine before any
// subcommand runs. Secrets are read through a terminal prompt provider
// that keeps them in locked memory from the moment they are typed.
package commands
