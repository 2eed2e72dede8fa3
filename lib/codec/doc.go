// Copyright 2026 The Strongbox Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides Strongbox's standard CBOR encoding
// configuration.
//
// CBOR is the one sanctioned serialization boundary for secret
// material: a secret.Buffer encodes as a raw byte string through its
// MarshalCBOR method, while the JSON and YAML marshalers redact. This
// package holds the shared encoder and decoder modes so that every
// consumer serializing structs that embed buffers (credential
// bundles, sealed state files, IPC payloads) encodes identically.
//
// Encoding uses Core Deterministic Encoding (RFC 8949 §4.2): the same
// logical data always produces identical bytes, which keeps encoded
// secrets comparable and hashable without decoding.
package codec
