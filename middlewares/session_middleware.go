// middlewares/session_middleware.go
package middlewares

import (
	"net/http"

	"backend/config"
	"backend/models"

	"github.com/gin-gonic/gin"
)

// SessionCookie is the cookie carrying the opaque session token issued at
// registration.
const SessionCookie = "sessionId"

// SessionMiddleware resolves the session cookie to a registered user and
// stores the user's id under "userID" for downstream handlers. The token is
// looked up against the store on every request; there are no signed claims.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(SessionCookie)
		if err != nil || sessionID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		var user models.User
		if err := config.DB.Where("session_id = ?", sessionID).First(&user).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		c.Set("userID", user.ID)

		c.Next()
	}
}
