// Package transport performs the form-encoded HTTPS POST requests the
// vault protocol is made of, with the certificate pinner wired into the
// TLS handshake.
package transport
