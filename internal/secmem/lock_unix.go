//go:build !windows
// +build !windows

package secmem

import "golang.org/x/sys/unix"

// lock pins b's pages into physical memory so they cannot be swapped.
func lock(b []byte) error {
	return unix.Mlock(b)
}

// unlock releases the pin. The buffer is already zeroed at this point and
// there is nothing useful to do on failure, so the error is dropped.
func unlock(b []byte) {
	_ = unix.Munlock(b)
}
