package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"technews/internal/services"
)

// PostHandler coordinates post CRUD and the upvote handler.
type PostHandler struct {
	postService *services.PostService
	voteService *services.VoteService
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(postService *services.PostService, voteService *services.VoteService) *PostHandler {
	return &PostHandler{
		postService: postService,
		voteService: voteService,
	}
}

// ListPosts returns all posts, newest first, with their vote counts.
func (h *PostHandler) ListPosts(c *gin.Context) {
	posts, err := h.postService.ListPosts()
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, posts)
}

// GetPost returns one post with its vote count.
func (h *PostHandler) GetPost(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	post, err := h.postService.GetPost(id)
	if err != nil {
		respondPostError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// CreatePost submits a new link.
func (h *PostHandler) CreatePost(c *gin.Context) {
	type CreatePostRequest struct {
		Title   string `json:"title" binding:"required"`
		PostURL string `json:"post_url" binding:"required,url"`
		UserID  uint   `json:"user_id" binding:"required"`
	}

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	post, err := h.postService.CreatePost(services.CreatePostInput{
		Title:   req.Title,
		PostURL: req.PostURL,
		UserID:  req.UserID,
	})
	if err != nil {
		respondPostError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// Upvote records a vote and returns the post with its updated tally. The
// insert never rejects a repeat vote from the same user.
func (h *PostHandler) Upvote(c *gin.Context) {
	type UpvoteRequest struct {
		UserID uint `json:"user_id" binding:"required"`
		PostID uint `json:"post_id" binding:"required"`
	}

	var req UpvoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	post, err := h.voteService.CastVote(req.UserID, req.PostID)
	if err != nil {
		respondPostError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// UpdatePost renames a post.
func (h *PostHandler) UpdatePost(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	type UpdatePostRequest struct {
		Title string `json:"title" binding:"required"`
	}

	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	post, err := h.postService.UpdatePostTitle(id, req.Title)
	if err != nil {
		respondPostError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// DeletePost removes a post.
func (h *PostHandler) DeletePost(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.postService.DeletePost(id); err != nil {
		respondPostError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted"})
}

func respondPostError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrPostNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "No post found with this id"})
	case errors.Is(err, services.ErrTitleRequired):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Title is required"})
	default:
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
