package utils

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"storefront/config"
)

const (
	CartSessionHeader = "X-Cart-Session"
	CartSessionCookie = "cart_session"
)

// CartSession resolves the caller's cart session ID from the request header
// or cookie, issuing a new one when absent. The ID is echoed back on the
// response so browser and non-browser clients can both hold on to it.
func CartSession(c *gin.Context) string {
	session := c.GetHeader(CartSessionHeader)
	if session == "" {
		if cookie, err := c.Cookie(CartSessionCookie); err == nil {
			session = cookie
		}
	}
	if session == "" {
		session = uuid.New().String()
		secure := config.AppConfig != nil && config.AppConfig.AppEnv == "production"
		c.SetCookie(CartSessionCookie, session, 60*60*24*30, "/", "", secure, true)
	}

	c.Header(CartSessionHeader, session)
	return session
}

// CartKey is the storage key the session's cart persists under.
func CartKey(session string) string {
	return "cart:" + session
}
