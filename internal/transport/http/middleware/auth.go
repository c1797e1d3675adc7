package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/suraj-17-jadhav/internship-program/internal/model"
	"github.com/suraj-17-jadhav/internship-program/internal/pkg/jwtutil"
	"github.com/suraj-17-jadhav/internship-program/internal/transport/http/response"
)

const ContextUserKey = "current_user"

// UserResolver turns a token's embedded user id into a live user record.
// (nil, nil) means the user no longer exists.
type UserResolver interface {
	GetUserByID(id uint) (*model.User, error)
}

// RequireLogin extracts the bearer token, verifies it, resolves the
// embedded id to a user and attaches the record to the request context.
// Exactly one user lookup per gated request; any failure is terminal.
func RequireLogin(secret string, users UserResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
		if authHeader == "" {
			response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "you must be logged in")
			c.Abort()
			return
		}

		const prefix = "Bearer "
		if !strings.HasPrefix(authHeader, prefix) {
			response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "invalid authorization scheme")
			c.Abort()
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, prefix))
		claims, err := jwtutil.ParseToken(secret, token)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		user, err := users.GetUserByID(claims.UserID)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "resolve user failed")
			c.Abort()
			return
		}
		if user == nil {
			response.Error(c, http.StatusNotFound, response.CodeUserNotFound, "user not found")
			c.Abort()
			return
		}

		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// CurrentUser returns the gate-resolved caller, or nil on ungated routes.
func CurrentUser(c *gin.Context) *model.User {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return nil
	}
	user, ok := value.(*model.User)
	if !ok {
		return nil
	}
	return user
}
