package crypto_test

import (
	"encoding/hex"
	"errors"
	"testing"

	"lpass/internal/crypto"
)

// Golden vectors for the first-stage derivation.
var cryptoKeyVectors = []struct {
	username   string
	password   string
	iterations int
	hexKey     string
}{
	{"", "", 5000, "a0406b57184d8c8f615ebc7968c79eab89c23514cc81543a275b10ffd2659d6b"},
	{"bob", "password", 1000, "637a4773386d153ce7fd2e281f2f9ffdb289445f79214d0fd5b52010c5667a6b"},
}

func TestDeriveKeys_GoldenVectors(t *testing.T) {
	for _, v := range cryptoKeyVectors {
		cryptoKey, loginKey, err := crypto.DeriveKeys(v.username, []byte(v.password), v.iterations)
		if err != nil {
			t.Fatalf("DeriveKeys(%q, %q, %d): %v", v.username, v.password, v.iterations, err)
		}
		if got := hex.EncodeToString(cryptoKey.Bytes()); got != v.hexKey {
			t.Errorf("crypto key for (%q, %q, %d) = %s, want %s",
				v.username, v.password, v.iterations, got, v.hexKey)
		}
		if loginKey.Len() != crypto.KeyBytes {
			t.Errorf("login key length %d, want %d", loginKey.Len(), crypto.KeyBytes)
		}
		if cryptoKey.Equal(loginKey) {
			t.Error("login key must differ from crypto key")
		}
		cryptoKey.Destroy()
		loginKey.Destroy()
	}
}

func TestDeriveKeys_Deterministic(t *testing.T) {
	k1, l1, err := crypto.DeriveKeys("alice@example.com", []byte("hunter2"), 5000)
	if err != nil {
		t.Fatalf("DeriveKeys: %v", err)
	}
	defer k1.Destroy()
	defer l1.Destroy()

	k2, l2, err := crypto.DeriveKeys("alice@example.com", []byte("hunter2"), 5000)
	if err != nil {
		t.Fatalf("DeriveKeys: %v", err)
	}
	defer k2.Destroy()
	defer l2.Destroy()

	if !k1.Equal(k2) || !l1.Equal(l2) {
		t.Fatal("identical inputs produced different keys")
	}
}

func TestDeriveKeys_RejectsLowIterations(t *testing.T) {
	for _, n := range []int{0, 1, 100, 999} {
		_, _, err := crypto.DeriveKeys("bob", []byte("password"), n)
		if !errors.Is(err, crypto.ErrIterationsTooLow) {
			t.Errorf("iterations=%d: err = %v, want ErrIterationsTooLow", n, err)
		}
	}
}

func TestHexLoginKey(t *testing.T) {
	_, loginKey, err := crypto.DeriveKeys("bob", []byte("password"), 1000)
	if err != nil {
		t.Fatalf("DeriveKeys: %v", err)
	}
	defer loginKey.Destroy()

	hexKey, err := crypto.HexLoginKey(loginKey)
	if err != nil {
		t.Fatalf("HexLoginKey: %v", err)
	}
	defer hexKey.Destroy()

	if hexKey.Len() != 64 {
		t.Fatalf("hex key length %d, want 64", hexKey.Len())
	}
	decoded, err := hex.DecodeString(string(hexKey.Bytes()))
	if err != nil {
		t.Fatalf("hex key not valid lowercase hex: %v", err)
	}
	for _, c := range hexKey.Bytes() {
		if c >= 'A' && c <= 'F' {
			t.Fatal("hex key contains uppercase digits")
		}
	}
	if string(decoded) != string(loginKey.Bytes()) {
		t.Fatal("hex key does not decode back to the login key")
	}
}
