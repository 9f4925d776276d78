package pinning_test

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"math/big"
	"testing"
	"time"

	"lpass/internal/pinning"
)

// testCert builds a self-signed certificate good enough for pin math.
func testCert(t *testing.T, cn string) *x509.Certificate {
	t.Helper()
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	tmpl := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: cn},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
	}
	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	if err != nil {
		t.Fatalf("CreateCertificate: %v", err)
	}
	cert, err := x509.ParseCertificate(der)
	if err != nil {
		t.Fatalf("ParseCertificate: %v", err)
	}
	return cert
}

func TestVerifyPeerCertificate_AcceptsPinnedLeaf(t *testing.T) {
	leaf := testCert(t, "vault.example")
	root := testCert(t, "root.example")

	p := pinning.NewWithPins([]string{pinning.Fingerprint(leaf)})
	chains := [][]*x509.Certificate{{leaf, root}}
	if err := p.VerifyPeerCertificate(nil, chains); err != nil {
		t.Fatalf("pinned leaf rejected: %v", err)
	}
}

func TestVerifyPeerCertificate_AcceptsPinnedIntermediate(t *testing.T) {
	leaf := testCert(t, "vault.example")
	root := testCert(t, "root.example")

	p := pinning.NewWithPins([]string{pinning.Fingerprint(root)})
	chains := [][]*x509.Certificate{{leaf, root}}
	if err := p.VerifyPeerCertificate(nil, chains); err != nil {
		t.Fatalf("chain with pinned root rejected: %v", err)
	}
}

func TestVerifyPeerCertificate_RejectsUnpinnedChain(t *testing.T) {
	leaf := testCert(t, "vault.example")
	other := testCert(t, "other.example")

	p := pinning.NewWithPins([]string{pinning.Fingerprint(other)})
	chains := [][]*x509.Certificate{{leaf}}
	if err := p.VerifyPeerCertificate(nil, chains); err == nil {
		t.Fatal("chain without a pinned key was accepted")
	}
}

func TestVerifyPeerCertificate_RejectsEmptyChain(t *testing.T) {
	p := pinning.New()
	if err := p.VerifyPeerCertificate(nil, nil); err == nil {
		t.Fatal("empty chain list was accepted")
	}
}

func TestDefaultPinSetIsNonTrivial(t *testing.T) {
	// The production pinner must not accept an arbitrary certificate.
	stranger := testCert(t, "stranger.example")
	p := pinning.New()
	if err := p.VerifyPeerCertificate(nil, [][]*x509.Certificate{{stranger}}); err == nil {
		t.Fatal("default pin set accepted an arbitrary certificate")
	}
}
