package session

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"lpass/internal/crypto"
	"lpass/internal/domain"
	"lpass/internal/secmem"
	"lpass/internal/xmlresp"
)

// Engine runs login attempts over a Transport.
type Engine struct {
	transport domain.Transport
}

// New returns an Engine posting through t.
func New(t domain.Transport) *Engine {
	return &Engine{transport: t}
}

// Iterations returns the PBKDF2 work factor the server requires for the
// session's account, fetching it on first use and memoizing it on the
// session so later calls cost nothing.
func (e *Engine) Iterations(ctx context.Context, sess *domain.Session) (int, error) {
	if n, ok := sess.Iterations(); ok {
		return n, nil
	}

	body, err := e.transport.Post(ctx, sess.Server(), "iterations.php", []domain.Field{
		{Name: "email", Value: []byte(sess.Username())},
	})
	if err != nil {
		return 0, err
	}

	n, err := strconv.Atoi(strings.TrimSpace(string(body)))
	if err != nil || n <= 0 {
		return 0, &domain.ProtocolError{
			Reason: "iterations.php returned " + strconv.Quote(string(body)),
		}
	}

	log.Debug().Str("username", sess.Username()).Int("iterations", n).
		Msg("fetched iteration count")
	sess.SetIterations(n)
	return n, nil
}

// Login authenticates sess with the master password, driving as many OTP
// rounds through provider as the server demands. On success the session
// holds uid, session ID, token, and the derived crypto key; on failure it
// is left unauthenticated and the error is one of the domain taxonomy.
// The password buffer remains owned by the caller.
func (e *Engine) Login(ctx context.Context, sess *domain.Session, password *secmem.Buffer, provider domain.SecretProvider) error {
	iterations, err := e.Iterations(ctx, sess)
	if err != nil {
		return err
	}

	cryptoKey, loginKey, err := crypto.DeriveKeys(sess.Username(), password.Bytes(), iterations)
	if err != nil {
		return err
	}
	hexKey, err := crypto.HexLoginKey(loginKey)
	loginKey.Destroy()
	if err != nil {
		cryptoKey.Destroy()
		return err
	}
	defer hexKey.Destroy()

	// Field values and capability flags match the reference command-line
	// client; the server rejects requests that deviate.
	base := []domain.Field{
		{Name: "xml", Value: []byte("2")},
		{Name: "username", Value: []byte(sess.Username())},
		{Name: "hash", Value: hexKey.Bytes()},
		{Name: "iterations", Value: []byte(strconv.Itoa(iterations))},
		{Name: "includeprivatekeyenc", Value: []byte("1")},
		{Name: "method", Value: []byte("cli")},
		{Name: "outofbandsupported", Value: []byte("1")},
	}

	var (
		otp      *secmem.Buffer
		otpField string
	)
	defer func() {
		otp.Destroy()
	}()

	for {
		fields := base
		if otp != nil {
			fields = append(fields[:len(fields):len(fields)],
				domain.Field{Name: otpField, Value: otp.Bytes()})
		}

		body, err := e.transport.Post(ctx, sess.Server(), "login.php", fields)
		if err != nil {
			cryptoKey.Destroy()
			return err
		}

		tree, err := xmlresp.Parse(body)
		if err != nil {
			cryptoKey.Destroy()
			return err
		}

		if ok := tree.Element("response", "ok"); ok != nil {
			if err := authenticate(sess, ok, cryptoKey); err != nil {
				cryptoKey.Destroy()
				return err
			}
			log.Debug().Str("username", sess.Username()).Int64("uid", sess.UID()).
				Msg("login succeeded")
			return nil
		}

		errEl := tree.Element("response", "error")
		if errEl == nil {
			cryptoKey.Destroy()
			return &domain.ProtocolError{Reason: "response carries neither ok nor error"}
		}
		cause, present := errEl.Attr("cause")
		if !present {
			cryptoKey.Destroy()
			return &domain.ProtocolError{Reason: "error response carries no cause"}
		}

		outcome := outcomeForCause(cause)

		var otpErr *domain.OtpRequiredError
		if provider != nil && errors.As(outcome, &otpErr) {
			log.Debug().Str("cause", cause).Stringer("method", otpErr.Method).
				Msg("server demands a one-time password")

			prior, _ := errEl.Attr("message")
			secret, serr := provider.RequestSecret(
				otpErr.Method.String(),
				"Enter the one-time password for "+sess.Username(),
				prior,
			)
			if serr != nil {
				// No code and no way to get one: the login fails with the
				// demand itself, not with the provider's refusal.
				cryptoKey.Destroy()
				return outcome
			}
			otp.Destroy()
			otp = secret
			otpField = otpErr.Method.WireField()
			continue
		}

		cryptoKey.Destroy()
		return outcome
	}
}

// authenticate reads the required attributes off a response/ok element and
// installs them on the session, taking ownership of cryptoKey on success.
func authenticate(sess *domain.Session, ok *xmlresp.Element, cryptoKey *secmem.Buffer) error {
	uidStr, present := ok.Attr("uid")
	if !present {
		return &domain.ProtocolError{Reason: "ok response carries no uid"}
	}
	sidStr, present := ok.Attr("sessionid")
	if !present {
		return &domain.ProtocolError{Reason: "ok response carries no sessionid"}
	}
	tokStr, present := ok.Attr("token")
	if !present {
		return &domain.ProtocolError{Reason: "ok response carries no token"}
	}

	uid, err := strconv.ParseInt(uidStr, 10, 64)
	if err != nil {
		return &domain.ProtocolError{Reason: "ok response uid is not a number"}
	}

	sid, err := secmem.FromBytes([]byte(sidStr))
	if err != nil {
		return err
	}
	token, err := secmem.FromBytes([]byte(tokStr))
	if err != nil {
		sid.Destroy()
		return err
	}

	sess.Authenticate(uid, sid, token, cryptoKey)
	return nil
}
