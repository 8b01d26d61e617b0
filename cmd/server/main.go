package main

import (
	"log"

	"github.com/gin-contrib/sessions"
	gormsessions "github.com/gin-contrib/sessions/gorm"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"technews/internal/config"
	"technews/internal/constants"
	"technews/internal/database"
	"technews/internal/handlers"
	"technews/internal/middleware"
	"technews/internal/repository"
	"technews/internal/services"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading env vars from system")
	}

	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize Gin router
	r := gin.Default()

	// Sessions live in the same database the app already owns
	store := gormsessions.NewStore(database.GetDB(), true, []byte(cfg.SessionSecret))
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	// Wire repositories, services, handlers
	userRepo := repository.NewUserRepository(database.GetDB())
	postRepo := repository.NewPostRepository(database.GetDB())

	authService := services.NewAuthService(userRepo)
	userService := services.NewUserService(userRepo, authService)
	postService := services.NewPostService(postRepo)
	voteService := services.NewVoteService(postRepo)

	userHandler := handlers.NewUserHandler(userService, authService)
	postHandler := handlers.NewPostHandler(postService, voteService)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Tech news API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		users := api.Group("/users")
		{
			users.POST("", userHandler.CreateUser)
			users.POST("/login", userHandler.Login)
			users.POST("/logout", userHandler.Logout)
			users.GET("", userHandler.ListUsers)
			users.GET("/:id", userHandler.GetUser)
			users.PUT("/:id", userHandler.UpdateUser)
			users.DELETE("/:id", userHandler.DeleteUser)
		}

		posts := api.Group("/posts")
		{
			posts.GET("", postHandler.ListPosts)
			posts.GET("/:id", postHandler.GetPost)
			posts.POST("", middleware.RequireAuth(), postHandler.CreatePost)
			posts.PUT("/upvote", middleware.RequireAuth(), postHandler.Upvote)
			posts.PUT("/:id", middleware.RequireAuth(), postHandler.UpdatePost)
			posts.DELETE("/:id", middleware.RequireAuth(), postHandler.DeletePost)
		}
	}

	// Start server
	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
