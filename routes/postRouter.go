package routes

import (
	"github.com/Senethlakshan/wanderlust-tales/controllers"
	"github.com/Senethlakshan/wanderlust-tales/middleware"
	"github.com/Senethlakshan/wanderlust-tales/session"
	"github.com/gin-gonic/gin"
)

func PostRoutes(api *gin.RouterGroup, ctl *controllers.Controller, sessions *session.Manager) {
	postGroup := api.Group("/posts")
	{
		postGroup.GET("", middleware.OptionalAuth(sessions), ctl.GetAllPosts)
		postGroup.GET("/popular", middleware.OptionalAuth(sessions), ctl.GetPopularPosts)
		postGroup.GET("/recent", middleware.OptionalAuth(sessions), ctl.GetRecentPosts)
		postGroup.GET("/search", middleware.OptionalAuth(sessions), ctl.SearchPosts)
		postGroup.GET("/:id", middleware.OptionalAuth(sessions), ctl.GetPost)
	}

	authGroup := postGroup.Group("")
	authGroup.Use(middleware.AuthMiddleware(sessions))
	{
		authGroup.POST("/create", ctl.CreatePost)
		authGroup.PUT("/update/:id", ctl.EditPost)
		authGroup.DELETE("/:id", ctl.DeletePost)
		authGroup.POST("/:id/like", ctl.ToggleLike)
	}
}
