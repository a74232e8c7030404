package controllers

import (
	"net/http"
	"strconv"

	"github.com/Senethlakshan/wanderlust-tales/common"
	"github.com/Senethlakshan/wanderlust-tales/models"
	"github.com/Senethlakshan/wanderlust-tales/utils"
	"github.com/gin-gonic/gin"
)

const defaultRecent = 6

// GetAllPosts godoc
// @Summary      list posts
// @Description  All posts in directory order. Optional sort (newest, most_liked, most_commented) and page/limit.
// @Tags         Posts
// @Produce      json
// @Router       /posts [get]
func (ctl *Controller) GetAllPosts(c *gin.Context) {
	posts, err := ctl.Dir.List(c.Request.Context(), viewer(c))
	if err != nil {
		Fail(c, err)
		return
	}
	ctl.listing(c, posts)
}

// SearchPosts matches ?query= against title, country and author username.
// A ?country= parameter takes precedence and filters by country instead.
func (ctl *Controller) SearchPosts(c *gin.Context) {
	var (
		posts []models.Post
		err   error
	)
	if country := c.Query("country"); country != "" {
		posts, err = ctl.Dir.ByCountry(c.Request.Context(), country, viewer(c))
	} else {
		posts, err = ctl.Dir.Search(c.Request.Context(), c.Query("query"), viewer(c))
	}
	if err != nil {
		Fail(c, err)
		return
	}
	ctl.listing(c, posts)
}

func (ctl *Controller) GetPostsByCountry(c *gin.Context) {
	posts, err := ctl.Dir.ByCountry(c.Request.Context(), c.Param("name"), viewer(c))
	if err != nil {
		Fail(c, err)
		return
	}
	ctl.listing(c, posts)
}

// listing applies ?sort= and, when ?page= is given, paginates.
func (ctl *Controller) listing(c *gin.Context, posts []models.Post) {
	if err := utils.SortPosts(posts, c.Query("sort")); err != nil {
		Fail(c, err)
		return
	}
	pageStr, paged := c.GetQuery("page")
	if !paged {
		ok(c, http.StatusOK, "", posts)
		return
	}

	page, err := strconv.Atoi(pageStr)
	if err != nil {
		Fail(c, common.InvalidArgumentError(err, "page must be a number"))
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(utils.DefaultPerPage)))
	if err != nil {
		Fail(c, common.InvalidArgumentError(err, "limit must be a number"))
		return
	}
	p, err := utils.Paginate(posts, page, limit)
	if err != nil {
		Fail(c, err)
		return
	}
	ok(c, http.StatusOK, "", p)
}

func (ctl *Controller) GetPopularPosts(c *gin.Context) {
	posts, err := ctl.Dir.Popular(c.Request.Context(), viewer(c))
	if err != nil {
		Fail(c, err)
		return
	}
	ok(c, http.StatusOK, "", posts)
}

func (ctl *Controller) GetRecentPosts(c *gin.Context) {
	n, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultRecent)))
	if err != nil {
		Fail(c, common.InvalidArgumentError(err, "limit must be a number"))
		return
	}
	posts, err := ctl.Dir.Recent(c.Request.Context(), viewer(c), n)
	if err != nil {
		Fail(c, err)
		return
	}
	ok(c, http.StatusOK, "", posts)
}

func (ctl *Controller) GetPost(c *gin.Context) {
	post, err := ctl.Dir.Get(c.Request.Context(), c.Param("id"), viewer(c))
	if err != nil {
		Fail(c, err)
		return
	}
	ok(c, http.StatusOK, "", post)
}

// CreatePost godoc
// @Summary      create a travel story
// @Description  Empty fields get defaults. The logged-in user becomes the author.
// @Tags         Posts
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        post  body      models.NewPost  true  "Post input"
// @Success      201   {object}  map[string]interface{}
// @Router       /posts/create [post]
func (ctl *Controller) CreatePost(c *gin.Context) {
	var input models.NewPost
	if err := c.ShouldBindJSON(&input); err != nil {
		Fail(c, common.InvalidArgumentError(err, "invalid post body"))
		return
	}

	author, exists := currentUser(c)
	if !exists {
		Fail(c, common.UnauthorizedError(nil, "Unauthorized request"))
		return
	}

	post, err := ctl.Dir.Create(c.Request.Context(), input, author)
	if err != nil {
		Fail(c, err)
		return
	}
	ok(c, http.StatusCreated, "Post created successfully", post)
}

func (ctl *Controller) EditPost(c *gin.Context) {
	var patch models.PostPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		Fail(c, common.InvalidArgumentError(err, "invalid post body"))
		return
	}
	post, err := ctl.Dir.Update(c.Request.Context(), c.Param("id"), viewer(c), patch)
	if err != nil {
		Fail(c, err)
		return
	}
	ok(c, http.StatusOK, "Post updated successfully", post)
}

// DeletePost reports whether a post was removed; deleting an absent id is not an error.
func (ctl *Controller) DeletePost(c *gin.Context) {
	removed, err := ctl.Dir.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		Fail(c, err)
		return
	}
	ok(c, http.StatusOK, "", gin.H{"deleted": removed})
}

func (ctl *Controller) ToggleLike(c *gin.Context) {
	post, err := ctl.Dir.ToggleLike(c.Request.Context(), c.Param("id"), viewer(c))
	if err != nil {
		Fail(c, err)
		return
	}
	ok(c, http.StatusOK, "", post)
}
