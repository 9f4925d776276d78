// Package domain defines the core types and contracts of the login engine:
// the Session state, OTP methods, the error taxonomy, and the Transport and
// SecretProvider interfaces implemented elsewhere.
package domain
