package crypt_test

import (
	"testing"

	"github.com/Saurav-S-Mehta-07/RetailEdge/pkg/crypt"
)

func TestEncryptDecrypt(t *testing.T) {
	encoded, err := crypt.Encrypt("hello world")
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	if encoded == "hello world" {
		t.Fatal("ciphertext equals plaintext")
	}

	plain, err := crypt.Decrypt(encoded)
	if err != nil {
		t.Fatalf("decrypt: %v", err)
	}
	if plain != "hello world" {
		t.Errorf("round trip = %q", plain)
	}
}

func TestDecryptRejectsGarbage(t *testing.T) {
	if _, err := crypt.Decrypt("not-base64!!"); err == nil {
		t.Error("expected error for invalid encoding")
	}
	if _, err := crypt.Decrypt("aGVsbG8"); err == nil {
		t.Error("expected error for undersized ciphertext")
	}
}

func TestEncryptJSON(t *testing.T) {
	type payload struct {
		Kind string `json:"kind"`
		Text string `json:"text"`
	}

	encoded, err := crypt.EncryptJSON(payload{Kind: "success", Text: "Item added successfully!"})
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}

	var got payload
	if err := crypt.DecryptJSON(encoded, &got); err != nil {
		t.Fatalf("decrypt: %v", err)
	}
	if got.Kind != "success" || got.Text != "Item added successfully!" {
		t.Errorf("round trip = %+v", got)
	}
}

func TestNonceVaries(t *testing.T) {
	a, _ := crypt.Encrypt("same input")
	b, _ := crypt.Encrypt("same input")
	if a == b {
		t.Error("two encryptions of the same input must differ")
	}
}
