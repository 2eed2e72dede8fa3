// Copyright 2026 The Strongbox Authors
// SPDX-License-Identifier: Apache-2.0

package secret

import "github.com/zeebo/blake3"

// Digest is a 32-byte BLAKE3 keyed digest of a buffer's contents. It
// is a comparable value, so it can serve as a map or set key where the
// buffer itself cannot. The digest is a one-way derivative of the
// secret: do not log it or use it as a password-hash substitute (it is
// fast by design and unsalted beyond the fixed domain key).
type Digest [32]byte

// digestDomainKey is the fixed 32-byte key for BLAKE3 keyed hashing.
// Domain separation keeps these digests from colliding with any other
// BLAKE3 use of the same bytes. The value is the ASCII package path,
// zero-padded — readable in a debugger, cryptographically opaque to
// BLAKE3.
var digestDomainKey = [32]byte{
	's', 't', 'r', 'o', 'n', 'g', 'b', 'o', 'x', '.', 's', 'e', 'c', 'r', 'e', 't',
	'.', 'd', 'i', 'g', 'e', 's', 't', 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// Digest computes the BLAKE3 keyed digest of the contents. BLAKE3
// consumes the full input with no content-dependent shortcut, so
// hashing leaks no more timing than the constant-time comparison
// does. Panics if the buffer has been closed.
func (b *Buffer) Digest() Digest {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		panic("secret: use of closed buffer")
	}

	// NewKeyed fails only on a wrong key length, which the fixed-size
	// array rules out.
	hasher, err := blake3.NewKeyed(digestDomainKey[:])
	if err != nil {
		panic("secret: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	hasher.Write(b.data)

	var digest Digest
	copy(digest[:], hasher.Sum(nil))
	return digest
}
