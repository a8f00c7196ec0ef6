package auth

import (
	"github.com/stayhub-dev/stayhub/internal/common"
)

// Guard derives a caller's identity from a bearer token and enforces role
// requirements. Each request is evaluated independently: no state, no retry.
type Guard struct {
	tokens *TokenManager
}

func NewGuard(tokens *TokenManager) *Guard {
	return &Guard{tokens: tokens}
}

// RequireAuthenticated verifies the token and returns the principal, or
// common.ErrUnauthorized.
func (g *Guard) RequireAuthenticated(token string) (*Principal, error) {
	if token == "" {
		return nil, common.ErrUnauthorized
	}
	return g.tokens.Verify(token)
}

// RequireRole verifies the token and then checks the role claim. An invalid
// token is always ErrUnauthorized; a valid token with the wrong role is
// ErrForbidden — the distinction matters to clients.
func (g *Guard) RequireRole(token, role string) (*Principal, error) {
	principal, err := g.RequireAuthenticated(token)
	if err != nil {
		return nil, err
	}
	if principal.Role != role {
		return nil, common.ErrForbidden
	}
	return principal, nil
}
