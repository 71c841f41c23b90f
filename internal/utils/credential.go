// internal/utils/credential.go
package utils

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// HashCredential returns the hex SHA-256 digest of a code string. The digest
// is deterministic so bulk imports can precompute it before the batched
// insert; no plaintext code is ever persisted.
func HashCredential(code string) string {
	sum := sha256.Sum256([]byte(code))
	return hex.EncodeToString(sum[:])
}

// CheckCredential compares a submitted code against a stored digest.
func CheckCredential(hash, code string) bool {
	return subtle.ConstantTimeCompare([]byte(hash), []byte(HashCredential(code))) == 1
}
