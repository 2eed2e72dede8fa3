// Copyright 2026 The Strongbox Authors
// SPDX-License-Identifier: Apache-2.0

//go:build !unix

package harden

// Platforms without core dump controls. Windows minidumps are opt-in
// per process via WER registry settings, not a runtime syscall, so
// there is nothing to do here.

func DisableCoreDumps() error {
	return nil
}

func CoreDumpsDisabled() bool {
	return false
}
