package middlewares

import (
	"MediPoint/models"
	"MediPoint/utils"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// claimsContextKey is the gin context key the handlers read token claims
// from.
const claimsContextKey = "tokenClaims"

// extractToken pulls the token from the Authorization header, falling back
// to the accessToken cookie set at login.
func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	if cookie, err := c.Cookie("accessToken"); err == nil {
		return cookie
	}
	return ""
}

// TokenAuthMiddleware validates the token, rejects revoked ones, and stores
// the claims on the context.
func TokenAuthMiddleware() gin.HandlerFunc {
	allRoles := append([]string{models.RolePatient}, models.StaffRoles...)
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Missing access token"})
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(token, allRoles...)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid token"})
			c.Abort()
			return
		}

		revoked, err := utils.IsTokenRevoked(c.Request.Context(), claims)
		if err != nil || revoked {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Token has been revoked"})
			c.Abort()
			return
		}

		c.Set(claimsContextKey, claims)
		c.Next()
	}
}

// OptionalTokenMiddleware stores claims when a valid token is presented but
// lets anonymous requests through. The public booking flow uses it to pin
// logged-in patients to their own record.
func OptionalTokenMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.Next()
			return
		}

		claims, err := utils.ValidateToken(token)
		if err != nil {
			c.Next()
			return
		}
		if revoked, err := utils.IsTokenRevoked(c.Request.Context(), claims); err == nil && !revoked {
			c.Set(claimsContextKey, claims)
		}
		c.Next()
	}
}

// RoleAuthMiddleware restricts a route to the listed roles. It assumes
// TokenAuthMiddleware already ran.
func RoleAuthMiddleware(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, ok := c.Get(claimsContextKey)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authentication required"})
			c.Abort()
			return
		}
		claims, ok := value.(*utils.TokenClaims)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authentication required"})
			c.Abort()
			return
		}

		for _, role := range allowedRoles {
			if claims.Role == role {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Forbidden: insufficient privileges"})
		c.Abort()
	}
}
