package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (ctl *Controller) GetProfile(c *gin.Context) {
	user, err := ctl.Dir.Profile(c.Request.Context(), c.Param("id"))
	if err != nil {
		Fail(c, err)
		return
	}
	ok(c, http.StatusOK, "", user)
}

func (ctl *Controller) GetUserPosts(c *gin.Context) {
	posts, err := ctl.Dir.UserPosts(c.Request.Context(), c.Param("id"), viewer(c))
	if err != nil {
		Fail(c, err)
		return
	}
	ok(c, http.StatusOK, "", posts)
}

func (ctl *Controller) FollowUser(c *gin.Context) {
	user, err := ctl.Dir.Follow(c.Request.Context(), c.Param("id"))
	if err != nil {
		Fail(c, err)
		return
	}
	ok(c, http.StatusOK, "", user)
}

func (ctl *Controller) UnfollowUser(c *gin.Context) {
	user, err := ctl.Dir.Unfollow(c.Request.Context(), c.Param("id"))
	if err != nil {
		Fail(c, err)
		return
	}
	ok(c, http.StatusOK, "", user)
}

func (ctl *Controller) GetAllCountries(c *gin.Context) {
	countries, err := ctl.Dir.Countries(c.Request.Context())
	if err != nil {
		Fail(c, err)
		return
	}
	ok(c, http.StatusOK, "", countries)
}

func (ctl *Controller) GetCountry(c *gin.Context) {
	country, err := ctl.Dir.Country(c.Request.Context(), c.Param("name"))
	if err != nil {
		Fail(c, err)
		return
	}
	ok(c, http.StatusOK, "", country)
}
