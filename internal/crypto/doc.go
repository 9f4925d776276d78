// Package crypto derives the two keys the vault protocol needs from a
// username and master password.
//
// Contents
//
//   - DeriveKeys: the two-stage PBKDF2-HMAC-SHA256 derivation producing the
//     local crypto key and the server-facing login key
//   - HexLoginKey: lowercase-hex encoding of a key into locked memory
//
// Both derivations are pure functions of (username, password, iterations)
// and deterministic for identical inputs. The crypto key decrypts vault
// data and never leaves the process; the login key is the proof of
// knowledge sent to the server.
package crypto
