package routes

import (
	"github.com/Senethlakshan/wanderlust-tales/controllers"
	"github.com/gin-gonic/gin"
)

func AuthRoutes(api *gin.RouterGroup, ctl *controllers.Controller) {
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", ctl.RegisterUser)
		authGroup.POST("/login", ctl.LoginUser)
		authGroup.POST("/logout", ctl.LogoutUser)
		authGroup.GET("/me", ctl.GetCurrentUser)
		authGroup.GET("/events", ctl.SessionEvents)
	}
}
