package rest

import (
	"net/http"

	"github.com/dmitrijs2005/blog/internal/server/models"
	"github.com/gin-gonic/gin"
)

func (s *Server) createProfile(c *gin.Context) {
	var req profileRequest
	if !s.bind(c, &req) {
		return
	}

	user, err := s.profiles.Create(c.Request.Context(), identityFrom(c), req.DisplayName)
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (s *Server) listProfiles(c *gin.Context) {
	items, err := s.profiles.List(c.Request.Context(), identityFrom(c))
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (s *Server) getProfile(c *gin.Context) {
	user, err := s.profiles.Get(c.Request.Context(), identityFrom(c), c.Param("id"))
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (s *Server) updateProfile(c *gin.Context) {
	var req profilePatchRequest
	if !s.bind(c, &req) {
		return
	}

	user, err := s.profiles.Update(c.Request.Context(), identityFrom(c), c.Param("id"),
		models.UserPatch{DisplayName: req.DisplayName})
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (s *Server) deleteProfile(c *gin.Context) {
	user, err := s.profiles.Delete(c.Request.Context(), identityFrom(c), c.Param("id"))
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
