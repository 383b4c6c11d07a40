package middleware

import (
	"strings"

	"anoa.com/kosthub/internal/guard"
	"anoa.com/kosthub/internal/model"
	"anoa.com/kosthub/pkg/response"
	"github.com/gin-gonic/gin"
)

const principalKey = "principal"

type AuthMiddleware struct {
	resolver *guard.Resolver
}

func NewAuthMiddleware(resolver *guard.Resolver) *AuthMiddleware {
	return &AuthMiddleware{resolver: resolver}
}

// RequireAuth resolves the session token and memoizes the principal in the
// gin context, so guard dalam satu request tidak mengulang round-trip ke
// storage. Tidak ada cache lintas request.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := m.resolver.Resolve(c.Request.Context(), sessionToken(c))
		if err != nil {
			response.Denied(c, err, "")
			return
		}

		c.Set(principalKey, p)
		c.Next()
	}
}

// RequireRoles gates a route group on the role hierarchy.
func (m *AuthMiddleware) RequireRoles(roles ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := PrincipalFrom(c)
		if err := guard.RequireRole(p, roles...); err != nil {
			home := ""
			if p != nil {
				home = p.Role.Home()
			}
			response.Denied(c, err, home)
			return
		}
		c.Next()
	}
}

func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return m.RequireRoles(model.RoleAdmin)
}

// RequireOwner admits owners and admins (hierarchy rule).
func (m *AuthMiddleware) RequireOwner() gin.HandlerFunc {
	return m.RequireRoles(model.RoleOwner)
}

func (m *AuthMiddleware) RequireStudent() gin.HandlerFunc {
	return m.RequireRoles(model.RoleStudent)
}

// PrincipalFrom returns the memoized principal, nil when the request never
// passed RequireAuth.
func PrincipalFrom(c *gin.Context) *guard.Principal {
	if v, ok := c.Get(principalKey); ok {
		if p, ok := v.(*guard.Principal); ok {
			return p
		}
	}
	return nil
}

// sessionToken extracts the opaque session credential: Authorization bearer
// header untuk action callers, cookie sesi untuk page callers.
func sessionToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
	}

	if cookie, err := c.Cookie("kosthub_session"); err == nil {
		return cookie
	}

	return ""
}
