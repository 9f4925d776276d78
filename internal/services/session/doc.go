// Package session drives the vault login protocol.
//
// The Engine owns the state machine: fetch the account's KDF iteration
// count, derive the login and crypto keys, post the login request, and
// interpret the reply. A reply demanding a second factor loops back
// through the caller's SecretProvider for a one-time code and resubmits;
// everything else is terminal and surfaces as a typed error from
// internal/domain. One Engine call runs strictly sequentially with at
// most one request outstanding.
package session
