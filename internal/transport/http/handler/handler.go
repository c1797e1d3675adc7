package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/suraj-17-jadhav/internship-program/internal/app"
	"github.com/suraj-17-jadhav/internship-program/internal/model"
	"github.com/suraj-17-jadhav/internship-program/internal/transport/http/middleware"
	"github.com/suraj-17-jadhav/internship-program/internal/transport/http/response"
)

// respondError maps app sentinels onto the HTTP status and envelope code.
// Anything unclassified is an internal error; details never leak outward.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, app.ErrValidation):
		response.Error(c, http.StatusBadRequest, response.CodeValidation, err.Error())
	case errors.Is(err, app.ErrUserExists):
		response.Error(c, http.StatusConflict, response.CodeUserExists, err.Error())
	case errors.Is(err, app.ErrEmailExists):
		response.Error(c, http.StatusConflict, response.CodeEmailExists, err.Error())
	case errors.Is(err, app.ErrUserNotFound):
		response.Error(c, http.StatusNotFound, response.CodeUserNotFound, err.Error())
	case errors.Is(err, app.ErrInvalidPassword):
		response.Error(c, http.StatusUnauthorized, response.CodeInvalidCredentials, err.Error())
	case errors.Is(err, app.ErrForbidden):
		response.Error(c, http.StatusForbidden, response.CodeForbidden, err.Error())
	case errors.Is(err, app.ErrPostNotFound):
		response.Error(c, http.StatusNotFound, response.CodePostNotFound, err.Error())
	case errors.Is(err, app.ErrCommentNotFound):
		response.Error(c, http.StatusNotFound, response.CodeCommentNotFound, err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "internal server error")
	}
}

// mustCurrentUser fetches the gate-resolved caller; a missing identity on
// a gated route means the gate never ran.
func mustCurrentUser(c *gin.Context) (*model.User, bool) {
	user := middleware.CurrentUser(c)
	if user == nil {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "you must be logged in")
		return nil, false
	}
	return user, true
}

// parseIDParam reads a numeric path parameter. A non-numeric id cannot
// reference any stored resource, so it reports not found.
func parseIDParam(c *gin.Context, name string, notFound error) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		respondError(c, notFound)
		return 0, false
	}
	return uint(id), true
}

func userProjection(u *model.User) gin.H {
	return gin.H{
		"id":       u.ID,
		"username": u.Username,
		"email":    u.Email,
	}
}

func authorProjection(u *model.User) gin.H {
	return gin.H{
		"id":       u.ID,
		"username": u.Username,
	}
}

func postProjection(p *model.Post) gin.H {
	return gin.H{
		"id":      p.ID,
		"title":   p.Title,
		"content": p.Content,
		"author":  authorProjection(&p.Author),
	}
}

func commentProjection(cm *model.Comment) gin.H {
	return gin.H{
		"id":      cm.ID,
		"post_id": cm.PostID,
		"content": cm.Content,
		"author":  authorProjection(&cm.Author),
	}
}
