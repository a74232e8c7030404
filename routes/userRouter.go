package routes

import (
	"github.com/Senethlakshan/wanderlust-tales/controllers"
	"github.com/Senethlakshan/wanderlust-tales/middleware"
	"github.com/Senethlakshan/wanderlust-tales/session"
	"github.com/gin-gonic/gin"
)

func UserRoutes(api *gin.RouterGroup, ctl *controllers.Controller, sessions *session.Manager) {
	userGroup := api.Group("/users")
	{
		userGroup.GET("/:id", ctl.GetProfile)
		userGroup.GET("/:id/posts", middleware.OptionalAuth(sessions), ctl.GetUserPosts)
		userGroup.POST("/:id/follow", middleware.AuthMiddleware(sessions), ctl.FollowUser)
		userGroup.POST("/:id/unfollow", middleware.AuthMiddleware(sessions), ctl.UnfollowUser)
	}
}

func CountryRoutes(api *gin.RouterGroup, ctl *controllers.Controller, sessions *session.Manager) {
	countryGroup := api.Group("/countries")
	{
		countryGroup.GET("", ctl.GetAllCountries)
		countryGroup.GET("/:name", ctl.GetCountry)
		countryGroup.GET("/:name/posts", middleware.OptionalAuth(sessions), ctl.GetPostsByCountry)
	}
}
