package rest

import (
	"github.com/gin-gonic/gin"
)

// bind decodes the JSON body into dst and validates it. On failure the
// request has already been aborted with 400.
func (s *Server) bind(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		s.abortBadRequest(c, "malformed request body")
		return false
	}
	if err := s.validator.Validate(dst); err != nil {
		s.abortBadRequest(c, err.Error())
		return false
	}
	return true
}
