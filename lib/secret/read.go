// Copyright 2026 The Strongbox Authors
// SPDX-License-Identifier: Apache-2.0

package secret

import (
	"bufio"
	"bytes"
	"fmt"
	"os"

	"golang.org/x/term"
)

// ReadFromPath reads a secret from a file path, or from stdin if path
// is "-". Leading/trailing whitespace is trimmed before storing
// (trailing newlines are near-universal with echo/printf pipelines).
// Every intermediate copy of the data is zeroed before returning.
// Returns an error if the source is empty after trimming.
func ReadFromPath(path string) (*Buffer, error) {
	var data []byte

	if path == "-" {
		scanner := bufio.NewScanner(os.Stdin)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, fmt.Errorf("secret: reading stdin: %w", err)
			}
			return nil, fmt.Errorf("secret: stdin is empty")
		}
		data = scanner.Bytes()
	} else {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("secret: reading %s: %w", path, err)
		}
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		Zero(data)
		return nil, fmt.Errorf("secret: %s holds no secret after trimming whitespace", path)
	}

	buffer := NewFromBytes(trimmed)
	// data covers trimmed plus any whitespace prefix/suffix.
	Zero(data)
	return buffer, nil
}

// ReadPassword prompts on stderr and reads a password from the
// terminal with echo disabled. The terminal's own byte slice is zeroed
// after the copy into protected memory. Returns an error if stdin is
// not a terminal — callers with piped input should use ReadFromPath
// with "-" instead.
func ReadPassword(prompt string) (*Buffer, error) {
	stdinFileDescriptor := int(os.Stdin.Fd())
	if !term.IsTerminal(stdinFileDescriptor) {
		return nil, fmt.Errorf("secret: no terminal available for interactive prompt")
	}

	fmt.Fprint(os.Stderr, prompt)
	passwordBytes, err := term.ReadPassword(stdinFileDescriptor)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("secret: reading password: %w", err)
	}

	buffer := NewFromBytes(passwordBytes)
	Zero(passwordBytes)
	return buffer, nil
}
