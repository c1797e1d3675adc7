package http

import (
	"time"

	"github.com/gin-gonic/gin"

	appsvc "github.com/suraj-17-jadhav/internship-program/internal/app"
	"github.com/suraj-17-jadhav/internship-program/internal/bootstrap"
	"github.com/suraj-17-jadhav/internship-program/internal/cache"
	"github.com/suraj-17-jadhav/internship-program/internal/platform/rabbitmq"
	"github.com/suraj-17-jadhav/internship-program/internal/repository"
	"github.com/suraj-17-jadhav/internship-program/internal/transport/http/handler"
	"github.com/suraj-17-jadhav/internship-program/internal/transport/http/middleware"
)

func NewRouter(app *bootstrap.App) *gin.Engine {
	gin.SetMode(app.Config.App.GinMode)

	userRepo := repository.NewUserRepository(app.MySQL)
	postRepo := repository.NewPostRepository(app.MySQL)
	commentRepo := repository.NewCommentRepository(app.MySQL)

	feedCache := cache.NewPostFeedCache(app.Redis, time.Duration(app.Config.Redis.PostFeedTTLSeconds)*time.Second)
	activityPublisher := rabbitmq.NewActivityPublisher(app.MQConn, app.Config.RabbitMQ.ActivityQueue)

	authService := appsvc.NewAuthService(
		userRepo,
		app.Config.Auth.JWTSecret,
		time.Duration(app.Config.Auth.JWTExpireMinute)*time.Minute,
		app.Config.Auth.BcryptCost,
	)
	postService := appsvc.NewPostService(postRepo, feedCache, activityPublisher)
	commentService := appsvc.NewCommentService(commentRepo, postRepo, activityPublisher)

	router := newEngine(app.Config.Auth.JWTSecret, authService, postService, commentService)

	healthHandler := handler.NewHealthHandler(app)
	router.GET("/healthz", healthHandler.Check)

	return router
}

func newEngine(jwtSecret string, authService *appsvc.AuthService, postService *appsvc.PostService, commentService *appsvc.CommentService) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	authHandler := handler.NewAuthHandler(authService)
	postHandler := handler.NewPostHandler(postService)
	commentHandler := handler.NewCommentHandler(commentService)

	requireLogin := middleware.RequireLogin(jwtSecret, authService)

	router.POST("/register", authHandler.Register)
	router.POST("/login", authHandler.Login)

	router.GET("/posts", postHandler.List)
	router.POST("/posts", requireLogin, postHandler.Create)
	router.GET("/posts/:id", postHandler.Get)
	router.PUT("/posts/:id", requireLogin, postHandler.Update)
	router.DELETE("/posts/:id", requireLogin, postHandler.Delete)

	// gin allows one wildcard name per segment position, so the parent
	// post id rides on :id here as well.
	router.POST("/posts/:id/comments", requireLogin, commentHandler.AddToPost)
	router.GET("/posts/:id/comments", commentHandler.ListForPost)
	router.GET("/comments/:id", commentHandler.Get)
	router.PUT("/comments/:id", requireLogin, commentHandler.Update)
	router.DELETE("/comments/:id", requireLogin, commentHandler.Delete)

	return router
}
