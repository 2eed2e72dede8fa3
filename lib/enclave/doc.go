// Copyright 2026 The Strongbox Authors
// SPDX-License-Identifier: Apache-2.0

// Package enclave provides encrypted-at-rest storage for long-lived
// secrets held in process memory.
//
// A lib/secret Buffer holds its bytes in the clear: anyone who can
// read the process memory reads the secret. That is the right
// trade-off for secrets in active use, but a secret held for hours —
// a master key, a session root — is better kept sealed. [Enclave]
// stores the secret XChaCha20-Poly1305 encrypted under a random key
// that lives in a locked secret.Buffer, so a memory dump captures
// ciphertext and key as two separate allocations rather than the
// plaintext, and [Enclave.Rekey] periodically re-encrypts under a
// fresh key to shrink the window in which a captured pair correlates.
//
// The cipher here is internal plumbing, not an encryption API: callers
// put plaintext in with [Seal] and get plaintext out with
// [Enclave.Open] (as a locked, zeroing secret.Buffer). Encrypting
// data for storage or transmission is out of scope for this module.
package enclave
