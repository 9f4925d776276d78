//go:build windows
// +build windows

package secmem

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// lock pins b's pages into physical memory so they cannot be swapped.
func lock(b []byte) error {
	return windows.VirtualLock(uintptr(unsafe.Pointer(&b[0])), uintptr(len(b)))
}

// unlock releases the pin. The buffer is already zeroed at this point and
// there is nothing useful to do on failure, so the error is dropped.
func unlock(b []byte) {
	_ = windows.VirtualUnlock(uintptr(unsafe.Pointer(&b[0])), uintptr(len(b)))
}
