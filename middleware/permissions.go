package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const accessContextKey = "access_context"

// AccessContext stores the authenticated caller for downstream handlers
type AccessContext struct {
	UserID   uint
	Email    string
	FullName string
	IsAdmin  bool
}

// GetAccessContext extracts the caller set by AuthMiddleware.
// On failure it writes a 401 response and returns false.
func GetAccessContext(c *gin.Context) (AccessContext, bool) {
	accessContextRaw, exists := c.Get(accessContextKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "access context missing"})
		return AccessContext{}, false
	}

	accessContext, ok := accessContextRaw.(AccessContext)
	if !ok || accessContext.UserID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid access context"})
		return AccessContext{}, false
	}

	return accessContext, true
}

// SetAccessContext is used by AuthMiddleware and by tests that bypass JWT.
func SetAccessContext(c *gin.Context, ac AccessContext) {
	c.Set(accessContextKey, ac)
	c.Set("user_id", ac.UserID)
}
