// Package secmem holds secrets in page-locked memory that is wiped on
// release.
//
// A Buffer owns a contiguous byte region. While the region is non-empty it
// is locked against swapping for the whole lifetime of the Buffer, and
// Destroy overwrites it with zeros before the lock is dropped. Buffers are
// single-owner values: pass pointers, never copy the struct, and call
// Destroy exactly when the secret is no longer needed.
package secmem
