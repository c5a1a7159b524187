package middleware

import (
	"net/http"
	"strings"

	"lexintake/internal/domain/entities"
	"lexintake/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Context keys set by RequireSession.
const (
	ContextProfileID = "session_profile_id"
	ContextEmail     = "session_email"
	ContextRole      = "session_role"
)

var errAuthRequired = pkg.NewDomainErrorSimple("AUTH_REQUIRED", "Authentication required", http.StatusUnauthorized)

// RequireSession validates the Bearer session token and stores the staff
// identity on the request context. Requests without a valid token never
// reach the handler.
func RequireSession(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if auth == "" {
			c.AbortWithStatusJSON(errAuthRequired.HTTPStatus, errAuthRequired.ToHTTPError())
			return
		}
		tokenString := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))

		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
			return secret, nil
		}, jwt.WithValidMethods([]string{"HS256"}))
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(errAuthRequired.HTTPStatus, errAuthRequired.ToHTTPError())
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(errAuthRequired.HTTPStatus, errAuthRequired.ToHTTPError())
			return
		}
		role, ok := entities.ParseRole(stringClaim(claims, "role"))
		if !ok {
			c.AbortWithStatusJSON(errAuthRequired.HTTPStatus, errAuthRequired.ToHTTPError())
			return
		}

		c.Set(ContextProfileID, stringClaim(claims, "sub"))
		c.Set(ContextEmail, stringClaim(claims, "email"))
		c.Set(ContextRole, role)
		c.Next()
	}
}

// RoleFromContext returns the authenticated staff role set by
// RequireSession.
func RoleFromContext(c *gin.Context) (entities.Role, bool) {
	v, ok := c.Get(ContextRole)
	if !ok {
		return "", false
	}
	role, ok := v.(entities.Role)
	return role, ok
}

func stringClaim(claims jwt.MapClaims, key string) string {
	if s, ok := claims[key].(string); ok {
		return s
	}
	return ""
}
