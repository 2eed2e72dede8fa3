// Copyright 2026 The Strongbox Authors
// SPDX-License-Identifier: Apache-2.0

//go:build linux

package harden

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// DisableCoreDumps prevents the kernel from writing this process's
// memory to a core file. It combines PR_SET_DUMPABLE (also blocks
// /proc/pid/mem reads and unprivileged ptrace) with a zero
// RLIMIT_CORE, so a re-enabled dumpable flag alone still produces an
// empty core.
func DisableCoreDumps() error {
	if err := unix.Prctl(unix.PR_SET_DUMPABLE, 0, 0, 0, 0); err != nil {
		return fmt.Errorf("harden: setting PR_SET_DUMPABLE=0: %w", err)
	}

	rlimit := unix.Rlimit{Cur: 0, Max: 0}
	if err := unix.Setrlimit(unix.RLIMIT_CORE, &rlimit); err != nil {
		return fmt.Errorf("harden: setting RLIMIT_CORE=0: %w", err)
	}

	return nil
}

// CoreDumpsDisabled reports whether the dumpable flag is currently
// clear. Useful for startup assertions in processes that require the
// hardening to have taken effect.
func CoreDumpsDisabled() bool {
	dumpable, err := unix.PrctlRetInt(unix.PR_GET_DUMPABLE, 0, 0, 0, 0)
	if err != nil {
		return false
	}
	return dumpable == 0
}
