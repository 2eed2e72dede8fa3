// Copyright 2026 The Strongbox Authors
// SPDX-License-Identifier: Apache-2.0

package secret

import (
	"crypto/subtle"
	"runtime"
)

// Zero overwrites b with zeros using a write the compiler cannot
// eliminate as a dead store. A plain range loop over a slice that is
// about to become unreachable is exactly the pattern an optimizer is
// entitled to drop; subtle.ConstantTimeCopy plus runtime.KeepAlive
// pins the writes.
//
// Use this for caller-held scratch slices (password bytes read from a
// terminal, intermediate copies) that never made it into a Buffer.
func Zero(b []byte) {
	if len(b) == 0 {
		return
	}
	subtle.ConstantTimeCopy(1, b, make([]byte, len(b)))
	runtime.KeepAlive(b)
}
