package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Router builds the gin engine with every route of the API.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(s.recovery(), s.requestLogger())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api", s.sessionIdentity())

	auth := api.Group("/auth")
	{
		auth.POST("", s.createCredential)
		auth.GET("", s.listCredentials)
		auth.POST("/sign-in", s.signIn)
		auth.POST("/sign-in-session/:id", s.rotateSession)
		auth.POST("/sign-out", s.signOut)

		byID := auth.Group("/:id", s.requireUUID("id"))
		byID.GET("", s.getCredential)
		byID.PATCH("", s.updateCredential)
		byID.DELETE("", s.deleteCredential)
	}

	users := api.Group("/users")
	{
		users.POST("", s.createProfile)
		users.GET("", s.listProfiles)

		byID := users.Group("/:id", s.requireUUID("id"))
		byID.GET("", s.getProfile)
		byID.PATCH("", s.updateProfile)
		byID.DELETE("", s.deleteProfile)
	}

	posts := api.Group("/posts")
	{
		posts.POST("", s.createPost)
		posts.GET("", s.listPosts)

		byID := posts.Group("/:id", s.requireUUID("id"))
		byID.GET("", s.getPost)
		byID.PATCH("", s.updatePost)
		byID.DELETE("", s.deletePost)
		byID.POST("/cover", s.coverUploadURL)
		byID.GET("/cover", s.coverDownloadURL)
	}

	return r
}
