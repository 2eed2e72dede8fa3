// Copyright 2026 The Strongbox Authors
// SPDX-License-Identifier: Apache-2.0

//go:build windows

package secret

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// lockBuffer pins b into physical RAM via VirtualLock, the Windows
// counterpart of mlock. Windows has no per-region core dump exclusion.
func lockBuffer(b []byte) bool {
	if len(b) == 0 {
		return false
	}
	err := windows.VirtualLock(uintptr(unsafe.Pointer(&b[0])), uintptr(len(b)))
	if err != nil {
		debugLog("VirtualLock", err)
		return false
	}
	return true
}

// unlockBuffer reverses lockBuffer before the memory is released.
func unlockBuffer(b []byte) {
	if len(b) == 0 {
		return
	}
	err := windows.VirtualUnlock(uintptr(unsafe.Pointer(&b[0])), uintptr(len(b)))
	if err != nil {
		debugLog("VirtualUnlock", err)
	}
}
