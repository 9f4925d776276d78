package secmem

import (
	"crypto/subtle"
	"runtime"
)

// LockError reports that the OS refused to lock a buffer's pages into
// memory, typically because the per-process locked-page limit is exhausted.
type LockError struct {
	Err error
}

func (e *LockError) Error() string {
	return "secmem: cannot lock memory: " + e.Err.Error()
}

func (e *LockError) Unwrap() error { return e.Err }

// Buffer is a byte region that stays out of swap and is zeroed on Destroy.
type Buffer struct {
	buf       []byte
	destroyed bool
}

// Empty returns a Buffer with no backing region. Empty regions are never
// locked; Destroy on the result is a no-op.
func Empty() *Buffer {
	return &Buffer{}
}

// New allocates a zeroed, locked Buffer of n bytes.
func New(n int) (*Buffer, error) {
	if n == 0 {
		return Empty(), nil
	}
	buf := make([]byte, n)
	if err := lock(buf); err != nil {
		return nil, &LockError{Err: err}
	}
	return &Buffer{buf: buf}, nil
}

// FromBytes copies b into a fresh locked Buffer. The caller still owns b
// and should wipe it if it holds a secret.
func FromBytes(b []byte) (*Buffer, error) {
	s, err := New(len(b))
	if err != nil {
		return nil, err
	}
	copy(s.buf, b)
	return s, nil
}

// Bytes exposes the contained bytes. The slice aliases the locked region;
// it is valid until Destroy and must not be retained past it.
func (b *Buffer) Bytes() []byte {
	if b == nil {
		return nil
	}
	return b.buf
}

// Len returns the number of contained bytes.
func (b *Buffer) Len() int {
	if b == nil {
		return 0
	}
	return len(b.buf)
}

// Equal reports whether two buffers hold the same bytes. The byte
// comparison runs in constant time for equal lengths.
func (b *Buffer) Equal(other *Buffer) bool {
	if b.Len() != other.Len() {
		return false
	}
	if b.Len() == 0 {
		return true
	}
	return subtle.ConstantTimeCompare(b.buf, other.buf) == 1
}

// Destroy wipes the region and releases the memory lock. It is safe to
// call more than once and on a nil Buffer.
func (b *Buffer) Destroy() {
	if b == nil || b.destroyed || len(b.buf) == 0 {
		return
	}
	// The wipe must happen before the unlock so the secret never sits in
	// an unlocked page.
	Wipe(b.buf)
	unlock(b.buf)
	b.buf = nil
	b.destroyed = true
}

// raw exposes the backing region regardless of destruction state. Test hook.
func (b *Buffer) raw() []byte { return b.buf }

// Wipe zeroes b. The function is kept out of line so the stores cannot be
// elided as dead writes.
//
//go:noinline
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(&b)
}
