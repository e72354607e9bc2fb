// Package auth implements the credential scheme for account passwords.
//
// Credentials are stored as "salt:hash" where hash = sha256(password + salt)
// and salt is 16 random bytes hex-encoded. This is a plain salted digest, not
// an adaptive KDF; it is kept for compatibility with existing stored
// credentials and should move to bcrypt or argon2id in a format-breaking
// rewrite.
package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"
)

const saltBytes = 16

// HashPassword derives a stored credential from a plaintext password.
func HashPassword(password string) (string, error) {
	buf := make([]byte, saltBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}
	salt := hex.EncodeToString(buf)
	sum := sha256.Sum256([]byte(password + salt))
	return salt + ":" + hex.EncodeToString(sum[:]), nil
}

// VerifyPassword reports whether password matches the stored credential.
// Malformed stored values never verify.
func VerifyPassword(password, stored string) bool {
	salt, hash, ok := strings.Cut(stored, ":")
	if !ok {
		return false
	}
	sum := sha256.Sum256([]byte(password + salt))
	check := hex.EncodeToString(sum[:])
	return subtle.ConstantTimeCompare([]byte(check), []byte(hash)) == 1
}
