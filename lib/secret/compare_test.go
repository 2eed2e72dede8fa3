// Copyright 2026 The Strongbox Authors
// SPDX-License-Identifier: Apache-2.0

package secret

import (
	"bytes"
	"testing"
)

func TestEqual_Table(t *testing.T) {
	tests := []struct {
		name     string
		left     string
		right    string
		expected bool
	}{
		{name: "identical", left: "hello", right: "hello", expected: true},
		{name: "different content", left: "hello", right: "yolo!", expected: false},
		{name: "reversed", left: "hello", right: "olleh", expected: false},
		{name: "shared prefix, longer", left: "hello", right: "helloworld", expected: false},
		{name: "empty vs content", left: "", right: "hello", expected: false},
		{name: "both empty", left: "", right: "", expected: true},
		{name: "differ in last byte", left: "hellp", right: "hello", expected: false},
		{name: "differ in first byte", left: "jello", right: "hello", expected: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			left := NewFromString(test.left)
			defer left.Close()
			right := NewFromString(test.right)
			defer right.Close()

			if got := left.Equal(right); got != test.expected {
				t.Errorf("Equal() = %v, want %v", got, test.expected)
			}
			if got := left.EqualBytes([]byte(test.right)); got != test.expected {
				t.Errorf("EqualBytes() = %v, want %v", got, test.expected)
			}
			if got := left.EqualString(test.right); got != test.expected {
				t.Errorf("EqualString() = %v, want %v", got, test.expected)
			}
		})
	}
}

func TestEqual_Reflexive(t *testing.T) {
	buffer := NewFromString("reflexive")
	defer buffer.Close()

	if !buffer.Equal(buffer) {
		t.Error("a buffer must equal itself")
	}
}

func TestEqual_PanicsAfterClose(t *testing.T) {
	left := NewFromString("left")
	defer left.Close()
	right := NewFromString("right")
	right.Close()

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic comparing against a closed buffer")
		}
	}()
	left.Equal(right)
}

// TestEqual_PassphraseScenario walks the full lifecycle: two buffers
// built from the same text by different constructors compare equal;
// zeroing one breaks equality and leaves zeros of the original length;
// formatting never shows the text.
func TestEqual_PassphraseScenario(t *testing.T) {
	passphrase := "correct horse battery staple"

	bufferA := NewFromString(passphrase)
	defer bufferA.Close()
	bufferB := NewFromBytes([]byte(passphrase))
	defer bufferB.Close()

	if !bufferA.Equal(bufferB) {
		t.Fatal("buffers built from the same text should compare equal")
	}

	bufferB.Zero()
	if bufferA.Equal(bufferB) {
		t.Error("zeroed buffer still compares equal")
	}
	if bufferB.Len() != len(passphrase) {
		t.Errorf("Len() after Zero = %d, want %d", bufferB.Len(), len(passphrase))
	}
	if !bytes.Equal(bufferB.Expose(), make([]byte, len(passphrase))) {
		t.Error("zeroed buffer should expose all-zero bytes of the original length")
	}

	if bufferA.String() != Redacted {
		t.Errorf("String() = %q, want the redaction sentinel", bufferA.String())
	}
}
