// Copyright 2026 The Strongbox Authors
// SPDX-License-Identifier: Apache-2.0

// Package harden applies process-wide protections that complement the
// per-buffer memory locking in lib/secret.
//
// madvise(MADV_DONTDUMP) covers an individual buffer's pages, but a
// secret also transits registers, stack frames, and runtime-internal
// copies that no per-region call can reach. [DisableCoreDumps] shuts
// the whole channel: it marks the process non-dumpable and clamps the
// core file size limit to zero.
//
// Unlike buffer-level locking, these calls are an explicit caller
// decision with process-wide effects (a non-dumpable process also
// refuses ptrace attachment from unprivileged debuggers), so failures
// are returned as errors rather than swallowed.
package harden
