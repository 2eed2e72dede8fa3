// Copyright 2026 The Strongbox Authors
// SPDX-License-Identifier: Apache-2.0

package secret

import (
	"io"
	"log/slog"
	"sync/atomic"
)

// discardLogger returns a logger that drops all records. slog.DiscardHandler
// is unavailable before Go 1.24; a text handler writing to io.Discard is the
// equivalent on older toolchains.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// logger receives the package's only log output: debug-level notices
// when a best-effort memory-protection syscall fails. Discarded by
// default — a library primitive should be silent unless asked.
var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(discardLogger())
}

// SetLogger directs the package's debug-level diagnostics (mlock,
// madvise, and munlock failures) to the given logger. Content is
// never logged, only syscall names and errno values. Pass nil to
// restore the default discard behavior.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = discardLogger()
	}
	logger.Store(l)
}

// debugLog reports a failed memory-protection syscall. These failures
// are non-fatal by contract (insufficient RLIMIT_MEMLOCK, unaligned
// region, unsupported platform), so debug is the ceiling.
func debugLog(operation string, err error) {
	logger.Load().Debug("memory protection request failed",
		"operation", operation,
		"error", err,
	)
}
