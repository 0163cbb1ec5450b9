package http

import (
	"time"

	"github.com/elaibiton11/colman-web-development-assignments/internal/delivery/http/controllers"
	authctl "github.com/elaibiton11/colman-web-development-assignments/internal/delivery/http/controllers/auth"
	commentctl "github.com/elaibiton11/colman-web-development-assignments/internal/delivery/http/controllers/comment"
	"github.com/elaibiton11/colman-web-development-assignments/internal/delivery/http/controllers/middleware"
	postctl "github.com/elaibiton11/colman-web-development-assignments/internal/delivery/http/controllers/post"
	userctl "github.com/elaibiton11/colman-web-development-assignments/internal/delivery/http/controllers/user"
	"github.com/elaibiton11/colman-web-development-assignments/internal/service"
	"github.com/elaibiton11/colman-web-development-assignments/pkg/logger"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func InitRoutes(l logger.Log, u service.Collection) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	config := cors.Config{
		AllowOrigins:     []string{"http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	r.Use(cors.New(config))
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggingMiddleware(l))

	statusController := controllers.NewStatusHandler()
	authController := authctl.NewHandler(l, u.AuthService)
	postController := postctl.NewHandler(l, u.PostService)
	commentController := commentctl.NewHandler(l, u.CommentService)
	userController := userctl.NewHandler(l, u.UserService)
	gate := middleware.NewAuthMiddlewareProvider(l, u.AuthService)

	r.GET("/", statusController.Status)

	auth := r.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/logout", authController.Logout)
		auth.POST("/refresh", authController.Refresh)
	}

	posts := r.Group("/post", gate.AuthMiddleware)
	{
		posts.POST("", postController.CreatePost)
		posts.GET("", postController.GetAllPosts)
		posts.GET("/:id", postController.GetPostByID)
		posts.PUT("/:id", postController.UpdatePost)
		posts.DELETE("/:id", postController.DeletePost)
	}

	comments := r.Group("/comments", gate.AuthMiddleware)
	{
		comments.POST("", commentController.AddComment)
		comments.GET("", commentController.GetAllComments)
		comments.GET("/:id", commentController.GetCommentByID)
		comments.PUT("/:id", commentController.UpdateComment)
		comments.DELETE("/:id", commentController.DeleteComment)
		comments.GET("/post/:postId", commentController.GetCommentsByPost)
	}

	users := r.Group("/users", gate.AuthMiddleware)
	{
		users.GET("", userController.GetAllUsers)
		users.GET("/:id", userController.GetUserByID)
		users.PUT("/:id", userController.UpdateUser)
		users.DELETE("/:id", userController.DeleteUser)
	}

	return r
}
