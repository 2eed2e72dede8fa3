// Copyright 2026 The Strongbox Authors
// SPDX-License-Identifier: Apache-2.0

//go:build !unix && !windows

package secret

// Platforms without a memory-locking facility. Buffers work normally
// with zero locking guarantees — locking is defense-in-depth, never a
// correctness requirement.

func lockBuffer(b []byte) bool {
	return false
}

func unlockBuffer(b []byte) {
}
