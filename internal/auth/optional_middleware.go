package auth

import "github.com/gin-gonic/gin"

// OptionalAuthMiddleware inspects for a token and sets the userID if present and valid,
// but does not fail if the token is missing or invalid. Used on open routes,
// such as stats lookups for an arbitrary user.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, ok := userIDFromHeader(c); ok {
			c.Set("userID", userID)
		}
		c.Next()
	}
}
