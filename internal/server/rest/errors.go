package rest

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/blog/internal/common"
	"github.com/gin-gonic/gin"
)

// statusFor maps service error kinds to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, common.ErrorValidation):
		return http.StatusBadRequest
	case errors.Is(err, common.ErrorUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, common.ErrorForbidden):
		return http.StatusForbidden
	case errors.Is(err, common.ErrorNotFound):
		return http.StatusNotFound
	case errors.Is(err, common.ErrorConflict):
		return http.StatusConflict
	case errors.Is(err, common.ErrorTransient):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// messageFor keeps denial bodies free of resource data; causes stay in the log.
func messageFor(status int, err error) string {
	switch status {
	case http.StatusBadRequest:
		return err.Error()
	case http.StatusUnauthorized:
		return common.ErrorUnauthorized.Error()
	case http.StatusForbidden:
		return common.ErrorForbidden.Error()
	case http.StatusNotFound:
		return common.ErrorNotFound.Error()
	case http.StatusConflict:
		return common.ErrorConflict.Error()
	case http.StatusServiceUnavailable:
		return common.ErrorTransient.Error()
	default:
		return common.ErrorInternal.Error()
	}
}

func (s *Server) abortWithError(c *gin.Context, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error(c.Request.Context(), "request failed",
			"method", c.Request.Method, "path", c.FullPath(), "status", status, "error", err)
	}
	c.AbortWithStatusJSON(status, errorResponse{Error: messageFor(status, err)})
}

func (s *Server) abortBadRequest(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Error: msg})
}
