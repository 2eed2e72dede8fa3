// Copyright 2026 The Strongbox Authors
// SPDX-License-Identifier: Apache-2.0

package secret

import (
	"fmt"
	"runtime"

	"github.com/fxamacker/cbor/v2"
)

// MarshalCBOR implements cbor.Marshaler. Unlike the JSON and YAML
// marshalers, CBOR is the deliberate serialization boundary: the
// buffer encodes as a raw CBOR byte string with no extra framing, for
// transfer to another process or sealed store. The encoded form is a
// plaintext copy of the secret — the caller owns protecting (and
// zeroing) it.
//
// Panics if the buffer has been closed.
func (b *Buffer) MarshalCBOR() ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		panic("secret: use of closed buffer")
	}
	return cbor.Marshal(b.data)
}

// UnmarshalCBOR implements cbor.Unmarshaler. The decoded bytes are
// owned by the CBOR decoder's fresh allocation, so the buffer adopts
// them without copying and re-applies the memory lock attempt, exactly
// as NewFromOwned would.
func (b *Buffer) UnmarshalCBOR(data []byte) error {
	var decoded []byte
	if err := cbor.Unmarshal(data, &decoded); err != nil {
		return fmt.Errorf("secret: decoding CBOR byte string: %w", err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return fmt.Errorf("secret: decoding into closed buffer")
	}

	// Replace any previous contents safely.
	Zero(b.data)
	if b.locked {
		unlockBuffer(b.data)
	}

	b.data = decoded
	b.locked = lockBuffer(decoded)
	// Decoding may target a zero-value Buffer the constructors never
	// saw, so the finalizer backstop is (re)installed here.
	runtime.SetFinalizer(b, (*Buffer).finalize)
	return nil
}
