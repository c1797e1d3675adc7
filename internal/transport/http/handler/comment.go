package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/suraj-17-jadhav/internship-program/internal/app"
	"github.com/suraj-17-jadhav/internship-program/internal/transport/http/response"
)

type CommentHandler struct {
	commentService *app.CommentService
}

type CommentRequest struct {
	Content string `json:"content"`
}

func NewCommentHandler(commentService *app.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

func (h *CommentHandler) AddToPost(c *gin.Context) {
	postID, ok := parseIDParam(c, "id", app.ErrPostNotFound)
	if !ok {
		return
	}

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, app.ErrValidation)
		return
	}

	caller, ok := mustCurrentUser(c)
	if !ok {
		return
	}
	comment, err := h.commentService.AddToPost(c.Request.Context(), caller, postID, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Created(c, "comment added successfully", gin.H{
		"comment": commentProjection(comment),
	})
}

func (h *CommentHandler) ListForPost(c *gin.Context) {
	postID, ok := parseIDParam(c, "id", app.ErrPostNotFound)
	if !ok {
		return
	}

	comments, err := h.commentService.ListForPost(c.Request.Context(), postID)
	if err != nil {
		respondError(c, err)
		return
	}

	projections := make([]gin.H, 0, len(comments))
	for i := range comments {
		projections = append(projections, commentProjection(&comments[i]))
	}
	response.OK(c, gin.H{"comments": projections})
}

func (h *CommentHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id", app.ErrCommentNotFound)
	if !ok {
		return
	}

	comment, err := h.commentService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, gin.H{
		"id":      comment.ID,
		"content": comment.Content,
	})
}

func (h *CommentHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id", app.ErrCommentNotFound)
	if !ok {
		return
	}

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, app.ErrValidation)
		return
	}

	caller, ok := mustCurrentUser(c)
	if !ok {
		return
	}
	comment, err := h.commentService.Update(c.Request.Context(), caller.ID, id, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, gin.H{
		"comment": commentProjection(comment),
	})
}

func (h *CommentHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id", app.ErrCommentNotFound)
	if !ok {
		return
	}

	caller, ok := mustCurrentUser(c)
	if !ok {
		return
	}
	if err := h.commentService.Delete(c.Request.Context(), caller.ID, id); err != nil {
		respondError(c, err)
		return
	}
	response.OKMessage(c, "comment deleted successfully")
}
