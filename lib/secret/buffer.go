// Copyright 2026 The Strongbox Authors
// SPDX-License-Identifier: Apache-2.0

package secret

import (
	"runtime"
	"sync"
)

// Buffer holds sensitive data in memory that is zeroed on release,
// compared in constant time, and redacted from every textual surface.
// The backing pages are locked against swapping and excluded from core
// dumps where the platform allows it.
//
// A Buffer must not be copied after creation. Call Close to release
// the memory when the secret is no longer needed; buffers dropped
// without Close are zeroed by a finalizer, but that only happens when
// the garbage collector gets around to it, so explicit Close is the
// reliable path. After Close, any access to the contents panics.
type Buffer struct {
	mu     sync.Mutex
	data   []byte
	locked bool
	closed bool
}

// NewFromOwned creates a buffer that takes ownership of data without
// copying. The caller must not retain, read, or write the slice (or
// any other slice aliasing the same array) after this call: an alias
// would hold the secret in memory the buffer cannot zero.
//
// The backing memory is locked best-effort; see Locked.
func NewFromOwned(data []byte) *Buffer {
	buffer := &Buffer{data: data}
	buffer.locked = lockBuffer(data)
	runtime.SetFinalizer(buffer, (*Buffer).finalize)
	return buffer
}

// NewFromBytes creates a buffer holding a copy of data. The source
// slice is left untouched and remains the caller's responsibility —
// if it holds the only other copy of the secret, zero it with Zero
// once it is no longer needed.
func NewFromBytes(data []byte) *Buffer {
	owned := make([]byte, len(data))
	copy(owned, data)
	return NewFromOwned(owned)
}

// NewFromString creates a buffer holding a copy of the string's bytes.
// Go strings are immutable and cannot be zeroed, so the source string
// stays on the heap until collected; prefer the byte-slice
// constructors when the secret originates as bytes.
func NewFromString(s string) *Buffer {
	return NewFromOwned([]byte(s))
}

// Expose returns the buffer's raw bytes without copying, for handing
// to external collaborators such as hash functions or network writers.
// This is the single deliberate escape hatch out of the container:
// the returned slice aliases the protected memory, so it must not be
// stored, logged, or retained beyond the immediate use, and it goes
// stale (all zeros) after Zero and invalid after Close.
//
// The slice is writable — in-place mutation (for example overwriting
// with a replacement secret of the same length) is sanctioned use.
// Keep the Buffer itself reachable while the slice is in use,
// otherwise the finalizer may zero it mid-read.
//
// Panics if the buffer has been closed.
func (b *Buffer) Expose() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		panic("secret: use of closed buffer")
	}
	return b.data
}

// Len returns the number of secret bytes. Length is not treated as
// secret (comparison already reveals it); it is safe to branch on.
// Len reports zero after Close.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.data)
}

// Locked reports whether the mlock request at construction succeeded.
// A false result means the secret could reach swap on memory pressure;
// the buffer is otherwise fully functional. Cautious callers can use
// this to refuse to proceed on unlocked memory.
func (b *Buffer) Locked() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.locked
}

// Clone returns an independent buffer holding a copy of the contents,
// with its own lock attempt. Panics if the buffer has been closed.
func (b *Buffer) Clone() *Buffer {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		panic("secret: use of closed buffer")
	}

	owned := make([]byte, len(b.data))
	copy(owned, b.data)
	return NewFromOwned(owned)
}

// Zero overwrites every byte with zero, in place. The length and the
// allocation are unchanged, so the buffer can be reused by writing a
// new secret through Expose. Panics if the buffer has been closed.
func (b *Buffer) Zero() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		panic("secret: use of closed buffer")
	}
	Zero(b.data)
}

// Close zeros the contents, unlocks the backing memory, and releases
// the buffer. After Close, Expose, Equal, Digest, Zero, and Clone all
// panic. Close is idempotent and always returns nil: unlock failures
// are best-effort by contract and are logged at debug level only. The
// error return exists so Buffer satisfies io.Closer for defer chains.
func (b *Buffer) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.release()
	return nil
}

// release is the shared teardown for Close and the finalizer. The
// caller holds b.mu (the finalizer runs when the buffer is
// unreachable, so it takes the lock only for form).
func (b *Buffer) release() {
	if b.closed {
		return
	}
	b.closed = true

	Zero(b.data)
	if b.locked {
		unlockBuffer(b.data)
		b.locked = false
	}
	b.data = nil
	runtime.SetFinalizer(b, nil)
}

// finalize zeroes buffers that were dropped without Close. GC timing
// is not a security boundary — this is the backstop for forgotten
// Close calls, not a substitute for them.
func (b *Buffer) finalize() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.release()
}
