package pinning

import (
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"errors"
)

// Pinner validates verified certificate chains against a fixed set of
// SPKI pins.
type Pinner struct {
	pins map[string]struct{}
}

// New returns a Pinner holding the compiled-in production pin set.
func New() *Pinner {
	return NewWithPins(defaultPins)
}

// NewWithPins returns a Pinner for an explicit pin set. Production code
// uses New; this constructor exists so tests can pin their own
// certificates.
func NewWithPins(pins []string) *Pinner {
	m := make(map[string]struct{}, len(pins))
	for _, p := range pins {
		m[p] = struct{}{}
	}
	return &Pinner{pins: m}
}

// Fingerprint returns the base64 SHA-256 digest of the certificate's
// DER-encoded subject-public-key-info.
func Fingerprint(cert *x509.Certificate) string {
	sum := sha256.Sum256(cert.RawSubjectPublicKeyInfo)
	return base64.StdEncoding.EncodeToString(sum[:])
}

// VerifyPeerCertificate is shaped for tls.Config.VerifyPeerCertificate.
// It accepts the handshake as soon as any certificate in any verified
// chain matches a pin, and rejects otherwise. verifiedChains must come
// from a verifier that has already passed standard validation; the Pinner
// borrows the chain certificates and never retains or frees them.
func (p *Pinner) VerifyPeerCertificate(_ [][]byte, verifiedChains [][]*x509.Certificate) error {
	if len(verifiedChains) == 0 {
		return errors.New("pinning: no verified certificate chain")
	}
	for _, chain := range verifiedChains {
		for _, cert := range chain {
			if _, ok := p.pins[Fingerprint(cert)]; ok {
				return nil
			}
		}
	}
	return errors.New("pinning: no certificate in the chain matches a pinned key")
}
