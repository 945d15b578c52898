package service

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/scrypt"
)

// Password hashing parameters. scrypt is slow and memory-hard;
// the derived key length of 64 bytes matches the stored-record format
// hex(hash) + "." + hex(salt) used by every existing account.
const (
	scryptN       = 16384
	scryptR       = 8
	scryptP       = 1
	scryptKeyLen  = 64
	scryptSaltLen = 16
)

// HashPassword derives an scrypt hash of the password under a fresh random
// salt and encodes both as "hexhash.hexsalt".
func HashPassword(password string) (string, error) {
	salt := make([]byte, scryptSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}

	hash, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return "", fmt.Errorf("deriving key: %w", err)
	}

	return hex.EncodeToString(hash) + "." + hex.EncodeToString(salt), nil
}

// VerifyPassword re-derives the hash from the supplied password and the
// stored salt and compares in constant time. Malformed stored records
// verify false without revealing which part was malformed.
func VerifyPassword(supplied, stored string) bool {
	hashHex, saltHex, ok := strings.Cut(stored, ".")
	if !ok {
		return false
	}

	storedHash, err := hex.DecodeString(hashHex)
	if err != nil {
		return false
	}
	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		return false
	}
	// A record with the wrong hash length was never produced by
	// HashPassword; rejecting it here keeps scrypt.Key from deriving a
	// zero-length key that would compare equal for any input.
	if len(storedHash) != scryptKeyLen || len(salt) == 0 {
		return false
	}

	derived, err := scrypt.Key([]byte(supplied), salt, scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return false
	}

	return subtle.ConstantTimeCompare(derived, storedHash) == 1
}
