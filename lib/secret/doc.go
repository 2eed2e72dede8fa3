// Copyright 2026 The Strongbox Authors
// SPDX-License-Identifier: Apache-2.0

// Package secret provides a memory-safe container for sensitive data
// such as passwords, access tokens, and key material.
//
// [Buffer] owns a mutable byte sequence and enforces three guarantees
// around it:
//
//   - Zeroing: the bytes are overwritten with zeros before the memory
//     is released, on every exit path. [Buffer.Zero] wipes on demand,
//     [Buffer.Close] wipes on release, and a finalizer wipes buffers
//     that are dropped without Close.
//   - Constant-time equality: [Buffer.Equal], [Buffer.EqualBytes], and
//     [Buffer.EqualString] scan the full length with no early exit on
//     mismatch, so comparison time reveals nothing about where two
//     secrets diverge. Only the length is observable.
//   - Leak-resistant rendering: every textual surface (fmt verbs,
//     log/slog, JSON, YAML) emits the fixed sentinel "***SECRET***",
//     never the content, a hash, or the length.
//
// Construction additionally asks the operating system to lock the
// backing pages into physical RAM (no swap) and, where supported, to
// exclude them from core dumps and wipe them in forked children. These
// requests are best-effort: failure is logged at debug level and the
// buffer remains fully functional. [Buffer.Locked] reports whether the
// lock took hold.
//
// Constructors:
//
//   - [NewFromOwned] -- takes ownership of an existing slice, no copy
//   - [NewFromBytes] -- copies from a borrowed slice
//   - [NewFromString] -- copies from a string
//   - [ReadFromPath] -- reads a secret from a file or stdin
//   - [ReadPassword] -- prompts on the terminal without echo
//
// Access is through [Buffer.Expose], the single deliberate escape
// hatch handing the raw bytes to external collaborators.
//
// Depends on golang.org/x/sys, golang.org/x/term, fxamacker/cbor, and
// zeebo/blake3. No Strongbox-internal dependencies. Imported by
// lib/enclave for key and plaintext protection.
package secret
