// Copyright 2026 The Strongbox Authors
// SPDX-License-Identifier: Apache-2.0

//go:build unix && !linux

package secret

import "golang.org/x/sys/unix"

// lockBuffer pins b into physical RAM via mlock. The Linux-only
// madvise hardening (core dump exclusion, wipe-on-fork) has no
// portable equivalent here.
func lockBuffer(b []byte) bool {
	if len(b) == 0 {
		return false
	}
	if err := unix.Mlock(b); err != nil {
		debugLog("mlock", err)
		return false
	}
	return true
}

// unlockBuffer reverses lockBuffer before the memory is released.
func unlockBuffer(b []byte) {
	if len(b) == 0 {
		return
	}
	if err := unix.Munlock(b); err != nil {
		debugLog("munlock", err)
	}
}
