// Package cryptox implements password hashing for the credential store.
// Passwords are never stored in recoverable form: each record carries a
// random salt and an argon2id digest derived from it.
package cryptox

import (
	"crypto/rand"
	"crypto/subtle"

	"golang.org/x/crypto/argon2"
)

const (
	saltSize   = 16
	digestSize = 32

	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
)

// NewSalt returns a fresh random salt for a new user record.
func NewSalt() ([]byte, error) {
	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// HashPassword derives the stored digest from a plaintext password and salt.
// The same parameters must be used at signup and at login so the round-trip
// property holds.
func HashPassword(password string, salt []byte) []byte {
	return argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, digestSize)
}

// VerifyPassword re-derives the digest from the candidate password and
// compares it against the stored one in constant time.
func VerifyPassword(password string, salt, digest []byte) bool {
	candidate := HashPassword(password, salt)
	return subtle.ConstantTimeCompare(candidate, digest) == 1
}

// Wipe overwrites a sensitive buffer with zeros. A nil slice is a no-op.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
