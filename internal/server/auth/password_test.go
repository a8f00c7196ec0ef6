package auth

import (
	"strings"
	"testing"
)

func TestHashPassword_SaltedPerCall(t *testing.T) {
	t.Parallel()

	d1, err := HashPassword("secret")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	d2, err := HashPassword("secret")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	if d1 == d2 {
		t.Fatalf("two hashes of the same input must differ")
	}
	if !CheckPassword("secret", d1) || !CheckPassword("secret", d2) {
		t.Fatalf("both digests must verify against the original plaintext")
	}
}

func TestCheckPassword_WrongPlaintext(t *testing.T) {
	t.Parallel()

	digest, err := HashPassword("secret")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if CheckPassword("wrong", digest) {
		t.Fatalf("wrong plaintext must not verify")
	}
}

func TestCheckPassword_MalformedDigest(t *testing.T) {
	t.Parallel()

	for _, digest := range []string{"", "plainly-not-bcrypt", "$2a$10$short"} {
		if CheckPassword("secret", digest) {
			t.Fatalf("malformed digest %q must report false", digest)
		}
	}
}

func TestHashPassword_RejectsOver72Bytes(t *testing.T) {
	t.Parallel()

	// 72 bytes is bcrypt's input limit; anything longer is rejected, not
	// silently truncated.
	ok := strings.Repeat("a", 72)
	if _, err := HashPassword(ok); err != nil {
		t.Fatalf("72-byte password must hash: %v", err)
	}

	long := strings.Repeat("a", 73)
	if _, err := HashPassword(long); err == nil {
		t.Fatalf("73-byte password must be rejected")
	}
}

func TestHashPassword_DigestNeverContainsPlaintext(t *testing.T) {
	t.Parallel()

	digest, err := HashPassword("CorrectHorseBatteryStaple")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if strings.Contains(digest, "CorrectHorseBatteryStaple") {
		t.Fatalf("digest leaks plaintext")
	}
}
