// Copyright 2026 The Strongbox Authors
// SPDX-License-Identifier: Apache-2.0

//go:build linux

package secret

import "golang.org/x/sys/unix"

// lockBuffer asks the kernel to keep b resident in physical RAM and
// out of crash artifacts. Reports whether the mlock itself succeeded;
// the madvise calls are further hardening on top and do not affect
// the result (they require page-aligned regions, which heap-allocated
// slices usually are not, so EINVAL is the common case and is
// swallowed).
func lockBuffer(b []byte) bool {
	if len(b) == 0 {
		return false
	}

	// mlock operates on whole pages and tolerates unaligned ranges;
	// typical failures are RLIMIT_MEMLOCK or missing privilege.
	if err := unix.Mlock(b); err != nil {
		debugLog("mlock", err)
		return false
	}

	// Exclude the pages from core dumps.
	if err := unix.Madvise(b, unix.MADV_DONTDUMP); err != nil {
		debugLog("madvise(MADV_DONTDUMP)", err)
	}

	// Zero the pages in children after fork, so the secret does not
	// ride along into subprocess address spaces.
	if err := unix.Madvise(b, unix.MADV_WIPEONFORK); err != nil {
		debugLog("madvise(MADV_WIPEONFORK)", err)
	}

	return true
}

// unlockBuffer reverses lockBuffer before the memory is released.
// Best-effort, same policy as locking.
func unlockBuffer(b []byte) {
	if len(b) == 0 {
		return
	}
	if err := unix.Munlock(b); err != nil {
		debugLog("munlock", err)
	}
}
