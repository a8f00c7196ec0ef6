package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/stayhub-dev/stayhub/internal/common"
)

func newTestManager() *TokenManager {
	return NewTokenManager([]byte("super-secret"), time.Hour)
}

func TestIssueAndVerify_Success(t *testing.T) {
	t.Parallel()

	m := newTestManager()

	tok, err := m.Issue("jane@example.com", 7, RoleUser, time.Hour)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	p, err := m.Verify(tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if p.Email != "jane@example.com" {
		t.Fatalf("email mismatch: got %q", p.Email)
	}
	if p.UserRef != 7 {
		t.Fatalf("user ref mismatch: got %d", p.UserRef)
	}
	if p.Role != RoleUser {
		t.Fatalf("role mismatch: got %q", p.Role)
	}
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	m := newTestManager()

	tok, err := m.Issue("u@example.com", 1, RoleUser, -1*time.Second)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = m.Verify(tok)
	if !errors.Is(err, common.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for expired token, got %v", err)
	}
}

func TestVerify_WrongKey(t *testing.T) {
	t.Parallel()

	other := NewTokenManager([]byte("other-secret"), time.Hour)

	// Token re-signed under a different key, with the role claim altered.
	tok, err := other.Issue("u@example.com", 1, RoleAdmin, time.Hour)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = newTestManager().Verify(tok)
	if !errors.Is(err, common.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for wrong signature, got %v", err)
	}
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	m := newTestManager()

	for _, tok := range []string{"", "not.a.jwt", "a.b", "Bearer xyz"} {
		if _, err := m.Verify(tok); !errors.Is(err, common.ErrUnauthorized) {
			t.Fatalf("token %q: expected ErrUnauthorized, got %v", tok, err)
		}
	}
}

func TestVerify_RejectsNoneAlgorithm(t *testing.T) {
	t.Parallel()

	claims := Claims{
		UserRef: 1,
		Role:    RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "u@example.com",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("signing with none: %v", err)
	}

	if _, err := newTestManager().Verify(tok); !errors.Is(err, common.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for alg=none, got %v", err)
	}
}

func TestVerify_RejectsForeignHMACAlgorithm(t *testing.T) {
	t.Parallel()

	claims := Claims{
		UserRef: 1,
		Role:    RoleUser,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "u@example.com",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	// Correct key, wrong algorithm.
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).
		SignedString([]byte("super-secret"))
	if err != nil {
		t.Fatalf("signing with HS512: %v", err)
	}

	if _, err := newTestManager().Verify(tok); !errors.Is(err, common.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for alg=HS512, got %v", err)
	}
}

func TestVerify_RejectsUnknownRole(t *testing.T) {
	t.Parallel()

	m := newTestManager()

	tok, err := m.Issue("u@example.com", 1, "superadmin", time.Hour)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if _, err := m.Verify(tok); !errors.Is(err, common.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for unknown role, got %v", err)
	}
}

func TestVerify_RejectsMissingExpiry(t *testing.T) {
	t.Parallel()

	claims := Claims{
		UserRef:          1,
		Role:             RoleUser,
		RegisteredClaims: jwt.RegisteredClaims{Subject: "u@example.com"},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte("super-secret"))
	if err != nil {
		t.Fatalf("signing: %v", err)
	}

	if _, err := newTestManager().Verify(tok); !errors.Is(err, common.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized without exp claim, got %v", err)
	}
}

func TestIssue_ZeroTTLUsesConfiguredDefault(t *testing.T) {
	t.Parallel()

	m := newTestManager()

	tok, err := m.Issue("u@example.com", 1, RoleUser, 0)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	if _, err := m.Verify(tok); err != nil {
		t.Fatalf("Verify error: %v", err)
	}
}
