// Copyright 2026 The Strongbox Authors
// SPDX-License-Identifier: Apache-2.0

package enclave

import (
	"crypto/rand"
	"fmt"
	"sync"

	"golang.org/x/crypto/chacha20poly1305"

	"github.com/strongbox-security/strongbox/lib/secret"
)

// Enclave holds a secret encrypted at rest in process memory. The
// ciphertext sits on the Go heap; the random key sits in a locked
// secret.Buffer. Neither allocation alone reveals the plaintext.
//
// An Enclave must not be copied after creation. Call Close when the
// secret is no longer needed.
type Enclave struct {
	mu         sync.Mutex
	key        *secret.Buffer
	nonce      []byte
	ciphertext []byte
	closed     bool
}

// Seal encrypts plaintext into a new enclave and wipes the caller's
// plaintext slice, so the enclave holds the only remaining copy.
// Returns an error if plaintext is empty or if the system's random
// source fails.
func Seal(plaintext []byte) (*Enclave, error) {
	if len(plaintext) == 0 {
		return nil, fmt.Errorf("enclave: nothing to seal")
	}

	enclave := &Enclave{}
	if err := enclave.encrypt(plaintext); err != nil {
		secret.Zero(plaintext)
		return nil, err
	}

	secret.Zero(plaintext)
	return enclave, nil
}

// encrypt replaces the enclave's key, nonce, and ciphertext with a
// fresh encryption of plaintext. The caller holds e.mu (or exclusive
// ownership, during Seal) and owns wiping plaintext.
func (e *Enclave) encrypt(plaintext []byte) error {
	key := make([]byte, chacha20poly1305.KeySize)
	if _, err := rand.Read(key); err != nil {
		return fmt.Errorf("enclave: generating key: %w", err)
	}

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return fmt.Errorf("enclave: initializing cipher: %w", err)
	}

	nonce := make([]byte, chacha20poly1305.NonceSizeX)
	if _, err := rand.Read(nonce); err != nil {
		secret.Zero(key)
		return fmt.Errorf("enclave: generating nonce: %w", err)
	}

	ciphertext := aead.Seal(nil, nonce, plaintext, nil)

	// Retire the previous generation, if any.
	if e.key != nil {
		e.key.Close()
	}
	secret.Zero(e.ciphertext)

	e.key = secret.NewFromOwned(key)
	e.nonce = nonce
	e.ciphertext = ciphertext
	return nil
}

// Open decrypts the enclave's contents into a fresh locked
// secret.Buffer. The enclave remains sealed and reusable; the caller
// must Close the returned buffer once done with the plaintext.
func (e *Enclave) Open() (*secret.Buffer, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	plaintext, err := e.decrypt()
	if err != nil {
		return nil, err
	}
	return secret.NewFromOwned(plaintext), nil
}

// decrypt returns a fresh plaintext slice. The caller holds e.mu and
// owns the returned bytes.
func (e *Enclave) decrypt() ([]byte, error) {
	if e.closed {
		return nil, fmt.Errorf("enclave: opened after Close")
	}

	aead, err := chacha20poly1305.NewX(e.key.Expose())
	if err != nil {
		return nil, fmt.Errorf("enclave: initializing cipher: %w", err)
	}

	plaintext, err := aead.Open(nil, e.nonce, e.ciphertext, nil)
	if err != nil {
		// Authentication failure: the ciphertext or key was altered
		// in memory. Nothing to recover.
		return nil, fmt.Errorf("enclave: decrypting: %w", err)
	}
	return plaintext, nil
}

// Rekey re-encrypts the contents under a fresh key and nonce. The
// plaintext is unchanged; the old key, nonce, and ciphertext become
// useless to an attacker who captured them earlier. Call this
// periodically for secrets that stay resident a long time.
func (e *Enclave) Rekey() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	plaintext, err := e.decrypt()
	if err != nil {
		return err
	}
	defer secret.Zero(plaintext)

	return e.encrypt(plaintext)
}

// Size returns the plaintext length in bytes. Like secret.Buffer.Len,
// length is not treated as secret.
func (e *Enclave) Size() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return 0
	}
	return len(e.ciphertext) - chacha20poly1305.Overhead
}

// Close wipes the ciphertext and releases the key buffer. After
// Close, Open and Rekey return errors. Idempotent.
func (e *Enclave) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return nil
	}
	e.closed = true

	secret.Zero(e.ciphertext)
	e.ciphertext = nil
	e.nonce = nil
	if e.key != nil {
		e.key.Close()
		e.key = nil
	}
	return nil
}
