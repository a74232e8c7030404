package controllers

import (
	"net/http"

	"github.com/Senethlakshan/wanderlust-tales/common"
	"github.com/Senethlakshan/wanderlust-tales/directory"
	"github.com/Senethlakshan/wanderlust-tales/models"
	"github.com/Senethlakshan/wanderlust-tales/session"
	"github.com/gin-gonic/gin"
)

// Context keys set by the auth middleware.
const (
	UserIDKey = "userId"
	UserKey   = "user"
)

type Controller struct {
	Dir      *directory.Directory
	Sessions *session.Manager
}

func New(dir *directory.Directory, sessions *session.Manager) *Controller {
	return &Controller{Dir: dir, Sessions: sessions}
}

// StatusFor maps an error to the HTTP status it is reported with.
func StatusFor(err error) int {
	switch common.KindOf(err) {
	case common.KindNotFound:
		return http.StatusNotFound
	case common.KindInvalidArgument:
		return http.StatusBadRequest
	case common.KindInvalidCredentials, common.KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// Fail records err on the context and writes the error response.
func Fail(c *gin.Context, err error) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		common.ErrorLogger.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, gin.H{"error": common.Message(err)})
}

func ok(c *gin.Context, status int, message string, data interface{}) {
	body := gin.H{"status": true, "data": data}
	if message != "" {
		body["message"] = message
	}
	c.JSON(status, body)
}

// viewer is the id of the logged-in caller, or "" for anonymous reads.
func viewer(c *gin.Context) string {
	return c.GetString(UserIDKey)
}

func currentUser(c *gin.Context) (models.User, bool) {
	v, exists := c.Get(UserKey)
	if !exists {
		return models.User{}, false
	}
	u, isUser := v.(models.User)
	return u, isUser
}
