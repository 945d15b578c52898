package service

import (
	"strings"
	"testing"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	encoded, err := HashPassword("s3cret-passw0rd")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if strings.Contains(encoded, "s3cret-passw0rd") {
		t.Fatalf("encoded record leaks the plaintext: %q", encoded)
	}
	if !strings.Contains(encoded, ".") {
		t.Fatalf("expected hash.salt format, got %q", encoded)
	}
	if !VerifyPassword("s3cret-passw0rd", encoded) {
		t.Fatalf("correct password did not verify")
	}
}

func TestVerifyPassword_WrongPassword(t *testing.T) {
	encoded, err := HashPassword("correct")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if VerifyPassword("incorrect", encoded) {
		t.Fatalf("wrong password verified")
	}
}

func TestHashPassword_SaltsDiffer(t *testing.T) {
	a, err := HashPassword("same")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	b, err := HashPassword("same")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if a == b {
		t.Fatalf("two hashes of the same password are identical; salt not random")
	}
}

func TestVerifyPassword_MalformedRecords(t *testing.T) {
	malformed := []string{
		"",
		"nodot",
		"deadbeef.",
		".deadbeef",
		"nothex.deadbeef",
		"deadbeef.nothex",
		// Decodes cleanly but the hash is 32 bytes, not 64.
		strings.Repeat("ab", 32) + ".deadbeef",
	}
	for _, record := range malformed {
		if VerifyPassword("anything", record) {
			t.Fatalf("malformed record %q verified", record)
		}
	}
}
