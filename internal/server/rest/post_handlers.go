package rest

import (
	"net/http"

	"github.com/dmitrijs2005/blog/internal/server/models"
	"github.com/gin-gonic/gin"
)

func (s *Server) createPost(c *gin.Context) {
	var req postRequest
	if !s.bind(c, &req) {
		return
	}

	post, err := s.posts.Create(c.Request.Context(), identityFrom(c), req.Title, req.Content)
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

func (s *Server) listPosts(c *gin.Context) {
	items, err := s.posts.List(c.Request.Context())
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (s *Server) getPost(c *gin.Context) {
	post, err := s.posts.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

func (s *Server) updatePost(c *gin.Context) {
	var req postPatchRequest
	if !s.bind(c, &req) {
		return
	}

	post, err := s.posts.Update(c.Request.Context(), identityFrom(c), c.Param("id"),
		models.PostPatch{Title: req.Title, Content: req.Content})
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

func (s *Server) deletePost(c *gin.Context) {
	post, err := s.posts.Delete(c.Request.Context(), identityFrom(c), c.Param("id"))
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

func (s *Server) coverUploadURL(c *gin.Context) {
	url, err := s.posts.CoverUploadURL(c.Request.Context(), identityFrom(c), c.Param("id"))
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, url)
}

func (s *Server) coverDownloadURL(c *gin.Context) {
	url, err := s.posts.CoverDownloadURL(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, url)
}
