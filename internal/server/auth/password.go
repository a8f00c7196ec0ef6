package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword produces a salted one-way digest of plaintext. The salt is
// fresh per call, so hashing the same input twice yields different digests;
// digests must never be compared directly.
//
// bcrypt rejects plaintexts longer than 72 bytes outright — we propagate
// that error instead of truncating silently. A failing randomness source
// also surfaces as an error; the operation aborts rather than producing an
// unsalted digest.
func HashPassword(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// CheckPassword recomputes the digest using the salt embedded in digest and
// compares in constant time. Malformed digests report false, never an error.
func CheckPassword(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
