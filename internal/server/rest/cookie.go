package rest

import (
	"math"
	"net/http"
	"time"

	"github.com/dmitrijs2005/blog/internal/common"
	"github.com/gin-gonic/gin"
)

func (s *Server) setSessionCookie(c *gin.Context, token string, validUntil time.Time) {
	maxAge := int(math.Ceil(validUntil.Sub(s.now()).Seconds()))
	if maxAge <= 0 {
		s.clearSessionCookie(c)
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(common.SessionCookieName, token, maxAge, "/", "", s.cookieSecure, true)
}

// clearSessionCookie sends an empty value with Max-Age=0.
func (s *Server) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(common.SessionCookieName, "", -1, "/", "", s.cookieSecure, true)
}

func sessionToken(c *gin.Context) (string, bool) {
	token, err := c.Cookie(common.SessionCookieName)
	if err != nil || token == "" {
		return "", false
	}
	return token, true
}
