package middleware

import (
	"github.com/gin-gonic/gin"
)

// ClientIP records the caller's address for audit logging. Forwarding headers
// are only honored from proxies set with Engine.SetTrustedProxies.
func ClientIP() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("client_ip", c.ClientIP())
		c.Next()
	}
}

// GetIPFromContext retrieves IP address from gin context
func GetIPFromContext(c *gin.Context) string {
	if ip := c.GetString("client_ip"); ip != "" {
		return ip
	}
	return c.ClientIP()
}
