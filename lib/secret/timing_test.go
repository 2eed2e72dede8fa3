// Copyright 2026 The Strongbox Authors
// SPDX-License-Identifier: Apache-2.0

package secret

import (
	"bytes"
	"sort"
	"testing"
	"time"
)

// medianComparisonTime measures the median wall time of EqualBytes
// against the given plaintext over many trials. The median (not the
// mean) keeps scheduler hiccups and GC pauses from dominating.
func medianComparisonTime(t *testing.T, buffer *Buffer, plain []byte, trials int) time.Duration {
	t.Helper()

	durations := make([]time.Duration, trials)
	for trial := range durations {
		start := time.Now()
		buffer.EqualBytes(plain)
		durations[trial] = time.Since(start)
	}
	sort.Slice(durations, func(i, j int) bool { return durations[i] < durations[j] })
	return durations[trials/2]
}

// TestEqual_TimingIndependentOfMismatchPosition compares a buffer
// against plaintexts that diverge at the first byte, at the last
// byte, and nowhere, and requires the median comparison times to stay
// within a generous factor of each other. An early-exit comparison
// fails this by orders of magnitude on a buffer this large; the
// constant-time scan passes with a wide margin that absorbs machine
// noise.
func TestEqual_TimingIndependentOfMismatchPosition(t *testing.T) {
	if testing.Short() {
		t.Skip("timing measurement skipped in short mode")
	}

	const size = 64 * 1024
	const trials = 501

	reference := bytes.Repeat([]byte{'a'}, size)
	buffer := NewFromBytes(reference)
	defer buffer.Close()

	mismatchFirst := bytes.Repeat([]byte{'a'}, size)
	mismatchFirst[0] = 'b'
	mismatchLast := bytes.Repeat([]byte{'a'}, size)
	mismatchLast[size-1] = 'b'

	// Warm caches and the scheduler before measuring.
	for i := 0; i < 32; i++ {
		buffer.EqualBytes(reference)
		buffer.EqualBytes(mismatchFirst)
		buffer.EqualBytes(mismatchLast)
	}

	medians := map[string]time.Duration{
		"equal":          medianComparisonTime(t, buffer, reference, trials),
		"mismatch first": medianComparisonTime(t, buffer, mismatchFirst, trials),
		"mismatch last":  medianComparisonTime(t, buffer, mismatchLast, trials),
	}

	fastest, slowest := time.Duration(1<<62), time.Duration(0)
	for _, median := range medians {
		if median < fastest {
			fastest = median
		}
		if median > slowest {
			slowest = median
		}
	}

	// Early exit at byte 0 versus a full 64 KiB scan differs by a
	// factor in the thousands; 5x is pure measurement slack.
	if fastest > 0 && slowest > 5*fastest {
		t.Errorf("comparison time depends on mismatch position: %v", medians)
	}
}

func BenchmarkEqual_MismatchFirst(b *testing.B) {
	const size = 4096
	buffer := NewFromBytes(bytes.Repeat([]byte{'a'}, size))
	defer buffer.Close()

	plain := bytes.Repeat([]byte{'a'}, size)
	plain[0] = 'b'

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buffer.EqualBytes(plain)
	}
}

func BenchmarkEqual_MismatchLast(b *testing.B) {
	const size = 4096
	buffer := NewFromBytes(bytes.Repeat([]byte{'a'}, size))
	defer buffer.Close()

	plain := bytes.Repeat([]byte{'a'}, size)
	plain[size-1] = 'b'

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buffer.EqualBytes(plain)
	}
}
