package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/food-ordering/internal/auth"
	"github.com/BruksfildServices01/food-ordering/internal/httperr"
)

const ContextIdentity = "identity"

var (
	errUserRequired       = httperr.Forbidden("user_required", "User access required")
	errAdminRequired      = httperr.Forbidden("admin_required", "Admin access required")
	errSuperAdminRequired = httperr.Forbidden("super_admin_required", "Super admin access required")
)

// RequireLogin accepts any resolved identity. A bad bearer token falls back
// to the session.
func RequireLogin(resolver *auth.Resolver) gin.HandlerFunc {
	return gate(resolver, auth.ModeLogin, nil)
}

// RequireUser is RequireLogin restricted to customer accounts.
func RequireUser(resolver *auth.Resolver) gin.HandlerFunc {
	return gate(resolver, auth.ModeLogin, func(id auth.Identity) error {
		if !id.IsUser() {
			return errUserRequired
		}
		return nil
	})
}

// RequireAdmin rejects a present but invalid bearer token without looking
// at the session.
func RequireAdmin(resolver *auth.Resolver) gin.HandlerFunc {
	return gate(resolver, auth.ModeRole, func(id auth.Identity) error {
		if !id.IsAdmin() {
			return errAdminRequired
		}
		return nil
	})
}

func RequireSuperAdmin(resolver *auth.Resolver) gin.HandlerFunc {
	return gate(resolver, auth.ModeRole, func(id auth.Identity) error {
		if !id.IsAdmin() {
			return errAdminRequired
		}
		if !id.IsSuperAdmin() {
			return errSuperAdminRequired
		}
		return nil
	})
}

func gate(resolver *auth.Resolver, mode auth.Mode, check func(auth.Identity) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := resolver.Resolve(c.Request, mode)
		if err == nil && check != nil {
			err = check(id)
		}
		if err != nil {
			httperr.Respond(c, err)
			c.Abort()
			return
		}

		c.Set(ContextIdentity, id)
		c.Next()
	}
}

// Identity returns what the auth gate stored for this request.
func Identity(c *gin.Context) auth.Identity {
	if v, ok := c.Get(ContextIdentity); ok {
		if id, ok := v.(auth.Identity); ok {
			return id
		}
	}
	return auth.Identity{}
}
