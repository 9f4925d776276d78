package crypto

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/pbkdf2"

	"lpass/internal/secmem"
)

// KeyBytes is the size of both derived keys.
const KeyBytes = 32

// MinIterations is the lowest accepted PBKDF2 work factor. Servers that
// request fewer are running a legacy non-iterated mode this client does
// not support.
const MinIterations = 1000

// ErrIterationsTooLow is returned when the requested iteration count is
// below MinIterations.
var ErrIterationsTooLow = fmt.Errorf(
	"key derivation requires at least %d iterations", MinIterations,
)

// DeriveKeys computes the crypto key and the login key for the given
// credentials.
//
// The crypto key is PBKDF2-HMAC-SHA256 over the password salted with the
// username at the requested iteration count. The login key hardens the
// crypto key through one further PBKDF2 round salted with the password;
// only the login key is ever sent to the server. Both are returned in
// locked memory and owned by the caller.
func DeriveKeys(username string, password []byte, iterations int) (cryptoKey, loginKey *secmem.Buffer, err error) {
	if iterations < MinIterations {
		return nil, nil, ErrIterationsTooLow
	}

	raw := pbkdf2.Key(password, []byte(username), iterations, KeyBytes, sha256.New)
	cryptoKey, err = secmem.FromBytes(raw)
	secmem.Wipe(raw)
	if err != nil {
		return nil, nil, err
	}

	rawLogin := pbkdf2.Key(cryptoKey.Bytes(), password, 1, KeyBytes, sha256.New)
	loginKey, err = secmem.FromBytes(rawLogin)
	secmem.Wipe(rawLogin)
	if err != nil {
		cryptoKey.Destroy()
		return nil, nil, err
	}

	return cryptoKey, loginKey, nil
}

// HexLoginKey encodes key as lowercase hex into a fresh locked buffer,
// which is the form login.php expects in its hash field.
func HexLoginKey(key *secmem.Buffer) (*secmem.Buffer, error) {
	out, err := secmem.New(hex.EncodedLen(key.Len()))
	if err != nil {
		return nil, err
	}
	hex.Encode(out.Bytes(), key.Bytes())
	return out, nil
}
