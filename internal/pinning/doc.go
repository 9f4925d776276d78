// Package pinning constrains which TLS certificates the client will talk
// through, independent of standard CA chain validation.
//
// A Pinner compares the SHA-256 digest of each verified certificate's
// subject-public-key-info against a fixed allowlist and fails closed when
// nothing matches. It plugs into tls.Config.VerifyPeerCertificate, so it
// runs only after the standard chain and hostname checks have passed; it
// narrows trust, never widens it.
package pinning
