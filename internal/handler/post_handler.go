package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"devconnect/internal/service"
)

// PostHandler handles post endpoints and their like/comment sub-resources.
type PostHandler struct {
	postService service.PostService
}

// NewPostHandler creates a new post handler.
func NewPostHandler(postService service.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// PostRequest represents a post creation request.
type PostRequest struct {
	Text string `json:"text" validate:"required"`
}

// CommentRequest represents a comment creation request.
type CommentRequest struct {
	Text string `json:"text" validate:"required"`
}

// Create godoc
// @Summary Create a post
// @Tags posts
// @Accept json
// @Produce json
// @Param request body PostRequest true "Post text"
// @Success 200 {object} model.Post
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /posts [post]
// @Security TokenAuth
func (h *PostHandler) Create(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req PostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post, err := h.postService.Create(c.Request().Context(), userID, req.Text)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, post)
}

// List godoc
// @Summary List all posts, newest first
// @Tags posts
// @Produce json
// @Success 200 {array} model.Post
// @Failure 401 {object} errors.ErrorResponse
// @Router /posts [get]
// @Security TokenAuth
func (h *PostHandler) List(c echo.Context) error {
	posts, err := h.postService.List(c.Request().Context())
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, posts)
}

// Get godoc
// @Summary Get a post by id
// @Tags posts
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} model.Post
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /posts/{id} [get]
// @Security TokenAuth
func (h *PostHandler) Get(c echo.Context) error {
	postID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	post, err := h.postService.Get(c.Request().Context(), postID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, post)
}

// Delete godoc
// @Summary Delete a post (owner only)
// @Tags posts
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /posts/{id} [delete]
// @Security TokenAuth
func (h *PostHandler) Delete(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	postID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.postService.Delete(c.Request().Context(), userID, postID); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "post deleted"})
}

// Like godoc
// @Summary Like a post
// @Tags posts
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {array} model.Like
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /posts/like/{id} [put]
// @Security TokenAuth
func (h *PostHandler) Like(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	postID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	likes, err := h.postService.Like(c.Request().Context(), userID, postID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, likes)
}

// Unlike godoc
// @Summary Remove a like from a post
// @Tags posts
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {array} model.Like
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /posts/unlike/{id} [put]
// @Security TokenAuth
func (h *PostHandler) Unlike(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	postID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	likes, err := h.postService.Unlike(c.Request().Context(), userID, postID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, likes)
}

// Comment godoc
// @Summary Comment on a post
// @Tags posts
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param request body CommentRequest true "Comment text"
// @Success 200 {array} model.Comment
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /posts/comment/{id} [post]
// @Security TokenAuth
func (h *PostHandler) Comment(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	postID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req CommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comments, err := h.postService.AddComment(c.Request().Context(), userID, postID, req.Text)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, comments)
}

// DeleteComment godoc
// @Summary Delete a comment (comment author only)
// @Tags posts
// @Produce json
// @Param post_id path string true "Post ID"
// @Param comment_id path string true "Comment ID"
// @Success 200 {array} model.Comment
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /posts/{post_id}/comment/{comment_id} [delete]
// @Security TokenAuth
func (h *PostHandler) DeleteComment(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	postID, err := pathID(c, "post_id")
	if err != nil {
		return err
	}
	commentID, err := pathID(c, "comment_id")
	if err != nil {
		return err
	}

	comments, err := h.postService.DeleteComment(c.Request().Context(), userID, postID, commentID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, comments)
}
