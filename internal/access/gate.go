// Package access resolves a session token to a principal and decides whether
// the principal may perform an operation.
package access

import (
	"context"
	"errors"

	"mis/internal/model"
	"mis/internal/session"
	"mis/pkg/apperror"
)

// Requirement is checked against a resolved principal.
type Requirement struct {
	name  string
	allow func(u *model.User) bool
}

func (r Requirement) String() string {
	return r.name
}

// Authenticated only requires a valid token whose principal exists.
func Authenticated() Requirement {
	return Requirement{name: "authenticated", allow: func(*model.User) bool { return true }}
}

// Level requires the principal's authorization level to equal level.
func Level(level string) Requirement {
	return Requirement{name: "level " + level, allow: func(u *model.User) bool { return u.Level == level }}
}

// Capability requires a capability flag; admins hold every capability.
func Capability(capability string) Requirement {
	return Requirement{name: "capability " + capability, allow: func(u *model.User) bool { return u.Has(capability) }}
}

// PrincipalFinder looks a principal up by identifier.
type PrincipalFinder interface {
	GetByUsername(ctx context.Context, username string) (*model.User, error)
}

// TokenVerifier verifies a session token.
type TokenVerifier interface {
	Verify(token string) (*session.Claims, error)
}

// Gate is the access-control gate placed before every mutating accessor call.
type Gate struct {
	tokens     TokenVerifier
	principals PrincipalFinder
}

func NewGate(tokens TokenVerifier, principals PrincipalFinder) *Gate {
	return &Gate{tokens: tokens, principals: principals}
}

// Authorize returns the principal when token and requirement both hold.
// Missing or invalid token: Unauthorized, with no lookup. Unknown principal: NotFound.
// Requirement not met: Forbidden.
func (g *Gate) Authorize(ctx context.Context, token string, req Requirement) (*model.User, error) {
	claims, err := g.tokens.Verify(token)
	if err != nil {
		if errors.Is(err, session.ErrNoToken) {
			return nil, apperror.Unauthorized("authentication required")
		}
		return nil, apperror.Unauthorized(err.Error())
	}

	user, err := g.principals.GetByUsername(ctx, claims.Principal())
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.NotFound("user not found")
		}
		return nil, err
	}

	if req.allow != nil && !req.allow(user) {
		return nil, apperror.Forbidden("access denied: requires " + req.String())
	}
	return user, nil
}
