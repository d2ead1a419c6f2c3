package middleware

import (
	"errors"
	"net/http"

	"github.com/Engel1110/gaming-room-cust/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// SessionCookie is the cookie carrying the signed session token.
	SessionCookie = "session"

	UserContextKey     = "userID"
	UsernameContextKey = "username"
)

// RequireSession guards protected routes. Requests without a live session
// are redirected to the login route and aborted.
func RequireSession(sessions *services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie(SessionCookie)
		if err != nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		session, err := sessions.Validate(c.Request.Context(), tokenStr)
		if err != nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set(UserContextKey, session.UserID)
		c.Set(UsernameContextKey, session.Username)
		c.Next()
	}
}

// GetUserID returns the authenticated user's ID from the request context.
func GetUserID(c *gin.Context) (uuid.UUID, error) {
	if val, ok := c.Get(UserContextKey); ok {
		if id, ok := val.(uuid.UUID); ok {
			return id, nil
		}
	}
	return uuid.Nil, errors.New("user ID not found in context")
}
