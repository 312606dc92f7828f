package middleware

import (
	"github.com/gin-gonic/gin"
)

// CurrentUser sets the acting user's id in the request context. The dashboard
// operates as a single implicit account; session handling is out of scope, so
// the configured user id stands in for identity resolution. Handlers read it
// with c.MustGet("user_id").
func CurrentUser(userID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	}
}
