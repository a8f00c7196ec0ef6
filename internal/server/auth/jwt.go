// Package auth implements the authentication core: salted password hashing,
// signed session tokens, and the role guard used by protected routes.
//
// The core never logs; every failure surfaces as a sentinel from
// internal/common and the HTTP layer decides how to present it.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stayhub-dev/stayhub/internal/common"
)

// Role values crossing the API boundary. Anything else in a token is
// rejected at verification time.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Claims is the payload of a session token: subject (email), a numeric user
// reference, the role, and the expiry instant.
type Claims struct {
	UserRef int64  `json:"uid"`
	Role    string `json:"role"`
	jwt.RegisteredClaims
}

// Principal is the verified identity extracted from a token.
type Principal struct {
	Email   string
	UserRef int64
	Role    string
}

// TokenManager issues and verifies HS256 session tokens. The signing key is
// process-wide configuration injected once at construction; the same key is
// used for both directions. Tokens are never revoked server-side — they
// expire purely by claim comparison.
type TokenManager struct {
	key []byte
	ttl time.Duration
}

func NewTokenManager(key []byte, ttl time.Duration) *TokenManager {
	return &TokenManager{key: key, ttl: ttl}
}

// TTL returns the configured token lifetime.
func (m *TokenManager) TTL() time.Duration {
	return m.ttl
}

// Issue mints a signed token for the given identity with expiry now+ttl.
// A non-positive ttl falls back to the configured default.
func (m *TokenManager) Issue(email string, userRef int64, role string, ttl time.Duration) (string, error) {
	if ttl == 0 {
		ttl = m.ttl
	}
	claims := Claims{
		UserRef: userRef,
		Role:    role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.key)
}

// Verify checks structure, signature and expiry and returns the embedded
// principal. Every failure — malformed token, wrong or absent signature,
// wrong algorithm (including "none"), expired claim, unknown role — yields
// common.ErrUnauthorized without distinguishing the cause, so callers can
// not probe internal state through error differences.
func (m *TokenManager) Verify(tokenString string) (*Principal, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (any, error) {
			// WithValidMethods already pins the algorithm; the keyfunc check
			// stays as a second gate against parser misconfiguration.
			if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
				return nil, common.ErrUnauthorized
			}
			return m.key, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return nil, common.ErrUnauthorized
	}

	if claims.Subject == "" {
		return nil, common.ErrUnauthorized
	}
	if claims.Role != RoleUser && claims.Role != RoleAdmin {
		return nil, common.ErrUnauthorized
	}

	return &Principal{
		Email:   claims.Subject,
		UserRef: claims.UserRef,
		Role:    claims.Role,
	}, nil
}
