// Copyright 2026 The Strongbox Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"bytes"
	"testing"

	"github.com/strongbox-security/strongbox/lib/secret"
)

// credentialBundle is the representative consumer shape: identifying
// metadata in the clear, the secret itself in a Buffer.
type credentialBundle struct {
	Service  string         `cbor:"service"`
	Username string         `cbor:"username,omitempty"`
	Password *secret.Buffer `cbor:"password"`
}

func TestMarshalUnmarshalRoundtrip(t *testing.T) {
	original := credentialBundle{
		Service:  "registry.internal",
		Username: "svc-backup",
		Password: secret.NewFromString("hunter2"),
	}
	defer original.Password.Close()

	data, err := Marshal(original)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("Marshal produced empty output")
	}

	var decoded credentialBundle
	if err := Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	defer decoded.Password.Close()

	if decoded.Service != original.Service || decoded.Username != original.Username {
		t.Errorf("metadata mismatch: got %+v", decoded)
	}
	if !decoded.Password.Equal(original.Password) {
		t.Error("password did not survive the roundtrip")
	}
	secret.Zero(data)
}

func TestMarshalDeterministic(t *testing.T) {
	bundle := credentialBundle{
		Service:  "vault.internal",
		Password: secret.NewFromString("fixed-secret"),
	}
	defer bundle.Password.Close()

	first, err := Marshal(bundle)
	if err != nil {
		t.Fatalf("first Marshal: %v", err)
	}
	second, err := Marshal(bundle)
	if err != nil {
		t.Fatalf("second Marshal: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Errorf("deterministic encoding violated: %x != %x", first, second)
	}
}

func TestEncoderDecoderStreamRoundtrip(t *testing.T) {
	passwords := []string{"first-secret", "second-secret", "third-secret"}

	var stream bytes.Buffer
	encoder := NewEncoder(&stream)
	for index, password := range passwords {
		bundle := credentialBundle{Service: "svc", Password: secret.NewFromString(password)}
		if err := encoder.Encode(bundle); err != nil {
			t.Fatalf("Encode message %d: %v", index, err)
		}
		bundle.Password.Close()
	}

	decoder := NewDecoder(&stream)
	for index, password := range passwords {
		var decoded credentialBundle
		if err := decoder.Decode(&decoded); err != nil {
			t.Fatalf("Decode message %d: %v", index, err)
		}
		if !decoded.Password.EqualString(password) {
			t.Errorf("message %d: password mismatch", index)
		}
		decoded.Password.Close()
	}
}

func TestUnmarshalInvalidCBOR(t *testing.T) {
	var bundle credentialBundle
	err := Unmarshal([]byte{0xFF, 0xFE, 0xFD}, &bundle)
	if err == nil {
		t.Error("Unmarshal should reject invalid CBOR")
	}
}

func TestAnyTargetDecodesStringKeyedMap(t *testing.T) {
	data, err := Marshal(map[string]any{"kind": "credential"})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var decoded any
	if err := Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	asMap, ok := decoded.(map[string]any)
	if !ok {
		t.Fatalf("decoded type = %T, want map[string]any", decoded)
	}
	if asMap["kind"] != "credential" {
		t.Errorf(`asMap["kind"] = %v, want "credential"`, asMap["kind"])
	}
}
