package rest

import (
	"net/http"
	"time"

	"github.com/dmitrijs2005/blog/internal/logging"
	"github.com/dmitrijs2005/blog/internal/server/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	identityKey  = "identity"
	requestIDKey = "request_id"
)

// requestLogger tags every request with an id and logs it once served.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := uuid.NewString()
		c.Set(requestIDKey, requestID)
		c.Header("X-Request-ID", requestID)
		c.Request = c.Request.WithContext(logging.ContextWith(c.Request.Context(), "request_id", requestID))

		c.Next()

		s.logger.Info(c.Request.Context(), "request served",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start).String(),
		)
	}
}

func (s *Server) recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		s.logger.Error(c.Request.Context(), "panic recovered",
			"method", c.Request.Method, "path", c.Request.URL.Path, "panic", recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	})
}

// sessionIdentity resolves the session cookie into an Identity. Requests
// without a live session continue as Anonymous; the policy decides.
func (s *Server) sessionIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := models.Anonymous()

		if token, ok := sessionToken(c); ok {
			id, err := s.sessions.Resolve(c.Request.Context(), token)
			if err != nil {
				s.abortWithError(c, err)
				return
			}
			identity = id
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

func identityFrom(c *gin.Context) models.Identity {
	if v, ok := c.Get(identityKey); ok {
		if identity, ok := v.(models.Identity); ok {
			return identity
		}
	}
	return models.Anonymous()
}

// requireUUID rejects path ids that are not UUIDs before any handler runs.
func (s *Server) requireUUID(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := uuid.Parse(c.Param(param)); err != nil {
			s.abortBadRequest(c, param+" must be a valid UUID")
			return
		}
		c.Next()
	}
}
