// Copyright 2026 The Strongbox Authors
// SPDX-License-Identifier: Apache-2.0

package secret

import "log/slog"

// Redacted is the fixed sentinel every textual surface emits in place
// of secret content. It intentionally carries no length, hash, or any
// other derivative of the bytes — those are metadata leaks.
const Redacted = "***SECRET***"

// String implements fmt.Stringer. It returns the redaction sentinel,
// never the contents, so a buffer that wanders into a log line or a
// fmt verb (%v, %s) cannot leak. Safe to call on a closed buffer.
func (b *Buffer) String() string {
	return Redacted
}

// GoString implements fmt.GoStringer, covering the %#v verb, which
// would otherwise render the struct fields and defeat String.
func (b *Buffer) GoString() string {
	return Redacted
}

// LogValue implements slog.LogValuer, so structured logging redacts
// buffers without the call site having to remember to.
func (b *Buffer) LogValue() slog.Value {
	return slog.StringValue(Redacted)
}

// MarshalJSON implements json.Marshaler. JSON output is treated as an
// accident-prone rendering surface (API logs, debug dumps), not a
// serialization boundary, so it gets the sentinel. Deliberate
// transfer across a process boundary goes through CBOR instead; see
// MarshalCBOR. There is no UnmarshalJSON for the same reason.
func (b *Buffer) MarshalJSON() ([]byte, error) {
	return []byte(`"` + Redacted + `"`), nil
}

// MarshalYAML implements yaml.Marshaler with the same stance as
// MarshalJSON: YAML renderings of config structs must never carry the
// secret.
func (b *Buffer) MarshalYAML() (any, error) {
	return Redacted, nil
}
