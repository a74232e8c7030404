package controllers

import (
	"net/http"
	"time"

	"github.com/Senethlakshan/wanderlust-tales/common"
	"github.com/Senethlakshan/wanderlust-tales/models"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

func (ctl *Controller) LoginUser(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		Fail(c, common.InvalidArgumentError(err, "invalid login body"))
		return
	}

	s, err := ctl.Sessions.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		Fail(c, err)
		return
	}
	ok(c, http.StatusOK, "Login successful", s)
}

// RegisterUser acknowledges every sign-up; no account is stored.
func (ctl *Controller) RegisterUser(c *gin.Context) {
	var input struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		Fail(c, common.InvalidArgumentError(err, "invalid registration body"))
		return
	}

	res := ctl.Sessions.Register(c.Request.Context(), input.Username, input.Email, input.Password)
	c.JSON(http.StatusCreated, res)
}

// LogoutUser always reports success; a store failure is only logged.
func (ctl *Controller) LogoutUser(c *gin.Context) {
	if err := ctl.Sessions.Logout(c.Request.Context()); err != nil {
		common.ErrorLogger.Println("logout:", err)
	}
	ok(c, http.StatusOK, "Logged out", nil)
}

func (ctl *Controller) GetCurrentUser(c *gin.Context) {
	ctx := c.Request.Context()
	var user *models.User
	s, authenticated := ctl.Sessions.Current(ctx)
	if authenticated {
		user = &s.User
	}
	ok(c, http.StatusOK, "", gin.H{"authenticated": authenticated, "user": user})
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type stateMessage struct {
	Type          string       `json:"type"`
	Authenticated bool         `json:"authenticated"`
	User          *models.User `json:"user,omitempty"`
}

const writeWait = 10 * time.Second

// SessionEvents streams session changes over a websocket. The first message is
// the current state; every login, logout and invalidation follows.
func (ctl *Controller) SessionEvents(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		common.WarningLogger.Println("websocket upgrade:", err)
		return
	}
	defer conn.Close()

	events, cancel := ctl.Sessions.Subscribe()
	defer cancel()

	state := stateMessage{Type: "state"}
	if s, authenticated := ctl.Sessions.Current(c.Request.Context()); authenticated {
		state.Authenticated = true
		state.User = &s.User
	}
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteJSON(state); err != nil {
		common.WarningLogger.Println("websocket write:", err)
		return
	}

	// The client sends nothing; reading only detects the close.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-done:
			return
		case e, open := <-events:
			if !open {
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(e); err != nil {
				common.WarningLogger.Println("websocket write:", err)
				return
			}
		}
	}
}
