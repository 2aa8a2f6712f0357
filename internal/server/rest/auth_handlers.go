package rest

import (
	"net/http"

	"github.com/dmitrijs2005/blog/internal/server/models"
	"github.com/gin-gonic/gin"
)

func (s *Server) createCredential(c *gin.Context) {
	var req credentialsRequest
	if !s.bind(c, &req) {
		return
	}

	auth, err := s.credentials.Create(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, auth)
}

func (s *Server) listCredentials(c *gin.Context) {
	items, err := s.credentials.List(c.Request.Context(), identityFrom(c))
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (s *Server) getCredential(c *gin.Context) {
	auth, err := s.credentials.Get(c.Request.Context(), identityFrom(c), c.Param("id"))
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, auth)
}

func (s *Server) updateCredential(c *gin.Context) {
	var req credentialPatchRequest
	if !s.bind(c, &req) {
		return
	}

	auth, err := s.credentials.Update(c.Request.Context(), identityFrom(c), c.Param("id"), req.Email, req.Password)
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, auth)
}

func (s *Server) deleteCredential(c *gin.Context) {
	auth, err := s.credentials.Delete(c.Request.Context(), identityFrom(c), c.Param("id"))
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, auth)
}

func (s *Server) signIn(c *gin.Context) {
	var req signInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.clearSessionCookie(c)
		s.abortBadRequest(c, "malformed request body")
		return
	}

	sess, err := s.sessions.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		s.clearSessionCookie(c)
		s.abortWithError(c, err)
		return
	}

	s.setSessionCookie(c, sess.SessionID, sess.ValidUntil)
	c.JSON(http.StatusOK, toSessionResponse(sess))
}

// rotateSession reissues the token carried by the cookie. The :id path
// segment is accepted for route compatibility only.
func (s *Server) rotateSession(c *gin.Context) {
	token, ok := sessionToken(c)
	if !ok {
		s.clearSessionCookie(c)
		c.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
		return
	}

	sess, err := s.sessions.Rotate(c.Request.Context(), token)
	if err != nil {
		if statusFor(err) == http.StatusUnauthorized {
			s.clearSessionCookie(c)
		}
		s.abortWithError(c, err)
		return
	}

	s.setSessionCookie(c, sess.SessionID, sess.ValidUntil)
	c.JSON(http.StatusOK, toSessionResponse(sess))
}

func (s *Server) signOut(c *gin.Context) {
	if token, ok := sessionToken(c); ok {
		if err := s.sessions.SignOut(c.Request.Context(), token); err != nil {
			s.abortWithError(c, err)
			return
		}
	}
	s.clearSessionCookie(c)
	c.Status(http.StatusNoContent)
}

func toSessionResponse(sess *models.Session) sessionResponse {
	return sessionResponse{AuthID: sess.AuthID, UserID: sess.UserID, ValidUntil: sess.ValidUntil}
}
