package domain_test

import (
	"errors"
	"strings"
	"testing"

	"lpass/internal/domain"
	"lpass/internal/secmem"
)

func TestNewSession_LowercasesUsername(t *testing.T) {
	s := domain.NewSession("Alice@Example.COM", "lastpass.com")
	if s.Username() != "alice@example.com" {
		t.Fatalf("username = %q, want lowercase", s.Username())
	}
	if s.Server() != "lastpass.com" {
		t.Fatalf("server = %q", s.Server())
	}
}

func TestSession_AuthenticateSetsStateAtomically(t *testing.T) {
	s := domain.NewSession("bob", "lastpass.com")
	if s.Authenticated() {
		t.Fatal("new session reports authenticated")
	}

	sid := mustBuffer(t, "session-id")
	tok := mustBuffer(t, "token")
	key := mustBuffer(t, "crypto-key")
	s.Authenticate(7, sid, tok, key)

	if !s.Authenticated() {
		t.Fatal("session not authenticated after Authenticate")
	}
	if s.UID() != 7 {
		t.Fatalf("uid = %d, want 7", s.UID())
	}

	s.Destroy()
	if s.Authenticated() {
		t.Fatal("session still authenticated after Destroy")
	}
}

func TestOtpMethod_NamesAndWireFields(t *testing.T) {
	cases := []struct {
		method domain.OtpMethod
		name   string
		field  string
	}{
		{domain.OtpYubiKey, "YubiKey", "otp"},
		{domain.OtpGoogleAuthenticator, "Google Authenticator", "otp"},
		{domain.OtpSesame, "Sesame", "sesameotp"},
	}
	for _, c := range cases {
		if c.method.String() != c.name {
			t.Errorf("String() = %q, want %q", c.method.String(), c.name)
		}
		if c.method.WireField() != c.field {
			t.Errorf("%s: WireField() = %q, want %q", c.name, c.method.WireField(), c.field)
		}
	}
}

func TestErrorTaxonomy(t *testing.T) {
	var otpErr *domain.OtpRequiredError
	err := error(&domain.OtpRequiredError{Method: domain.OtpSesame})
	if !errors.As(err, &otpErr) || otpErr.Method != domain.OtpSesame {
		t.Fatal("OtpRequiredError does not carry its method")
	}

	protoErr := &domain.ProtocolError{Reason: "weirdcause"}
	if !strings.Contains(protoErr.Error(), "weirdcause") {
		t.Fatal("ProtocolError drops the cause text")
	}

	inner := errors.New("connection refused")
	var te *domain.TransportError
	if wrapped := error(&domain.TransportError{Err: inner}); !errors.As(wrapped, &te) || !errors.Is(wrapped, inner) {
		t.Fatal("TransportError does not unwrap")
	}
}

func mustBuffer(t *testing.T, s string) *secmem.Buffer {
	t.Helper()
	b, err := secmem.FromBytes([]byte(s))
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	return b
}
