package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/suraj-17-jadhav/internship-program/internal/app"
	"github.com/suraj-17-jadhav/internship-program/internal/transport/http/response"
)

type PostHandler struct {
	postService *app.PostService
}

type CreatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type UpdatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func NewPostHandler(postService *app.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.postService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	projections := make([]gin.H, 0, len(posts))
	for i := range posts {
		projections = append(projections, postProjection(&posts[i]))
	}
	response.OK(c, gin.H{"posts": projections})
}

func (h *PostHandler) Create(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, app.ErrValidation)
		return
	}

	caller, ok := mustCurrentUser(c)
	if !ok {
		return
	}
	post, err := h.postService.Create(c.Request.Context(), caller, req.Title, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Created(c, "post created successfully", gin.H{
		"post": postProjection(post),
	})
}

func (h *PostHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id", app.ErrPostNotFound)
	if !ok {
		return
	}

	post, err := h.postService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, gin.H{"post": postProjection(post)})
}

func (h *PostHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id", app.ErrPostNotFound)
	if !ok {
		return
	}

	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, app.ErrValidation)
		return
	}

	caller, ok := mustCurrentUser(c)
	if !ok {
		return
	}
	post, err := h.postService.Update(c.Request.Context(), caller.ID, id, req.Title, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, gin.H{
		"post": postProjection(post),
	})
}

func (h *PostHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id", app.ErrPostNotFound)
	if !ok {
		return
	}

	caller, ok := mustCurrentUser(c)
	if !ok {
		return
	}
	if err := h.postService.Delete(c.Request.Context(), caller.ID, id); err != nil {
		respondError(c, err)
		return
	}
	response.OKMessage(c, "post deleted successfully")
}
