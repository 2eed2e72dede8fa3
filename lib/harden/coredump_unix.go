// Copyright 2026 The Strongbox Authors
// SPDX-License-Identifier: Apache-2.0

//go:build unix && !linux

package harden

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// DisableCoreDumps clamps RLIMIT_CORE to zero. The Linux prctl
// dumpable flag has no portable equivalent here.
func DisableCoreDumps() error {
	rlimit := unix.Rlimit{Cur: 0, Max: 0}
	if err := unix.Setrlimit(unix.RLIMIT_CORE, &rlimit); err != nil {
		return fmt.Errorf("harden: setting RLIMIT_CORE=0: %w", err)
	}
	return nil
}

// CoreDumpsDisabled reports whether the core file size limit is zero.
func CoreDumpsDisabled() bool {
	var rlimit unix.Rlimit
	if err := unix.Getrlimit(unix.RLIMIT_CORE, &rlimit); err != nil {
		return false
	}
	return rlimit.Cur == 0
}
