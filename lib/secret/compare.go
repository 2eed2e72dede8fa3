// Copyright 2026 The Strongbox Authors
// SPDX-License-Identifier: Apache-2.0

package secret

import "crypto/subtle"

// Equal reports whether two buffers hold identical bytes, in constant
// time: buffers of different length compare unequal immediately
// (length is not secret), buffers of equal length are scanned across
// their full length with an accumulated difference indicator and no
// early exit, so timing reveals nothing about where the contents
// diverge.
//
// There is deliberately no ordering comparison — a total order over
// secrets would reintroduce the content-dependent shortcuts that
// constant-time equality exists to remove.
//
// Panics if either buffer has been closed.
func (b *Buffer) Equal(other *Buffer) bool {
	if b == other {
		// Still validate the closed state so self-comparison does
		// not silently succeed on a released buffer.
		b.mu.Lock()
		defer b.mu.Unlock()
		if b.closed {
			panic("secret: use of closed buffer")
		}
		return true
	}
	return b.EqualBytes(other.Expose())
}

// EqualBytes reports whether the buffer's contents equal the given
// plaintext slice, using the same constant-time full-length scan as
// Equal. Panics if the buffer has been closed.
func (b *Buffer) EqualBytes(plain []byte) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		panic("secret: use of closed buffer")
	}
	return subtle.ConstantTimeCompare(b.data, plain) == 1
}

// EqualString reports whether the buffer's contents equal the given
// plaintext string. The byte conversion makes a transient heap copy of
// the string; it is zeroed before returning. Panics if the buffer has
// been closed.
func (b *Buffer) EqualString(plain string) bool {
	plainBytes := []byte(plain)
	defer Zero(plainBytes)
	return b.EqualBytes(plainBytes)
}
