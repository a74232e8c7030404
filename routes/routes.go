package routes

import (
	"net/http"

	"github.com/Senethlakshan/wanderlust-tales/controllers"
	"github.com/Senethlakshan/wanderlust-tales/directory"
	"github.com/Senethlakshan/wanderlust-tales/middleware"
	"github.com/Senethlakshan/wanderlust-tales/session"
	"github.com/gin-gonic/gin"
)

// SetupRoutes mounts every route group on r.
func SetupRoutes(r *gin.Engine, dir *directory.Directory, sessions *session.Manager) {
	ctl := controllers.New(dir, sessions)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Welcome to TravelTales Server running on Go!",
		})
	})

	api := r.Group("/api")
	api.Use(middleware.InvalidateOnUnauthorized(sessions))

	PostRoutes(api, ctl, sessions)
	UserRoutes(api, ctl, sessions)
	CountryRoutes(api, ctl, sessions)
	AuthRoutes(api, ctl)
}
