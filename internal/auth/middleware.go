package auth

import (
	"context"
	"errors"

	"fitlife/internal/api"
	"fitlife/internal/logger"

	"github.com/gin-gonic/gin"
)

var (
	ErrUnauthorized   = api.Unauthorized("Unauthorized")
	ErrSessionInvalid = api.Unauthorized("Invalid token")
	ErrAdminNotFound  = api.NotFound("Admin not found")
	ErrMemberNotFound = api.NotFound("Member not found")
)

// AdminLookup loads the gym behind an admin principal. It returns
// ErrAdminNotFound when the account no longer exists.
type AdminLookup func(ctx context.Context, adminID int) (AdminScope, error)

// MemberLookup loads the member behind a member principal. It returns
// ErrMemberNotFound when the account no longer exists.
type MemberLookup func(ctx context.Context, memberID int) (MemberScope, error)

func AdminGuard(issuer *SessionIssuer, lookup AdminLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := authenticate(c, issuer, KindAdmin)
		if !ok {
			return
		}

		scope, err := lookup(c.Request.Context(), principal.ID)
		if err != nil {
			api.Abort(c, err)
			return
		}

		SetAdminScope(c, scope)
		c.Next()
	}
}

func MemberGuard(issuer *SessionIssuer, lookup MemberLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := authenticate(c, issuer, KindMember)
		if !ok {
			return
		}

		scope, err := lookup(c.Request.Context(), principal.ID)
		if err != nil {
			api.Abort(c, err)
			return
		}

		SetMemberScope(c, scope)
		c.Next()
	}
}

func authenticate(c *gin.Context, issuer *SessionIssuer, kind Kind) (*Principal, bool) {
	token, err := c.Cookie(CookieName(kind))
	if err != nil || token == "" {
		api.Abort(c, ErrUnauthorized)
		return nil, false
	}

	principal, err := issuer.Validate(c.Request.Context(), token, kind)
	if err != nil {
		if errors.Is(err, ErrInvalidToken) {
			logger.Debug("session rejected", "kind", string(kind), "error", err.Error())
			api.Abort(c, ErrSessionInvalid)
			return nil, false
		}
		api.Abort(c, err)
		return nil, false
	}
	return principal, true
}
