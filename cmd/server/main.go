package main

import (
	"log"

	"github.com/bkaraca/taskhive/internal/config"
	"github.com/bkaraca/taskhive/internal/database"
	"github.com/bkaraca/taskhive/internal/handler"
	"github.com/bkaraca/taskhive/internal/middleware"
	"github.com/bkaraca/taskhive/internal/repository"
	"github.com/bkaraca/taskhive/internal/service"
	"github.com/bkaraca/taskhive/pkg/logger"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg := config.Load()
	log.Println("Config loaded successfully")

	if err := logger.Init(!cfg.IsProduction()); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	db := database.Connect(cfg)
	database.Migrate(db)

	// Rate limiter guards the unauthenticated auth endpoints. Optional:
	// without Redis the API still works, just unthrottled.
	var rateLimiter *middleware.RateLimiter
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("Invalid REDIS_URL: %v", err)
		}
		rateLimiter = middleware.NewRateLimiter(redis.NewClient(opt), middleware.RateLimiterConfig{
			MaxRequests: cfg.RateLimitMaxRequests,
			Window:      cfg.RateLimitWindow,
			BlockTime:   cfg.RateLimitBlockTime,
		})
	} else {
		log.Println("REDIS_URL not set, rate limiting disabled")
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	todoRepo := repository.NewTodoRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiry)
	todoService := service.NewTodoService(todoRepo)
	userService := service.NewUserService(userRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	todoHandler := handler.NewTodoHandler(todoService)
	adminHandler := handler.NewAdminHandler(todoService)
	userHandler := handler.NewUserHandler(userService)

	// Setup Gin router
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.HSTSMiddleware(cfg.IsProduction()))
	router.Use(cors.Default())

	// Public routes (registration and login)
	auth := router.Group("/auth")
	if rateLimiter != nil {
		auth.Use(rateLimiter.Middleware())
	}
	auth.POST("/", authHandler.Register)
	auth.POST("/token", authHandler.Token)

	// Protected routes (require JWT)
	todos := router.Group("/todos")
	todos.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		todos.GET("/", todoHandler.List)
		todos.GET("/:id", todoHandler.Get)
		todos.POST("/", todoHandler.Create)
		todos.PUT("/:id", todoHandler.Update)
		todos.DELETE("/:id", todoHandler.Delete)
	}

	// Admin routes (require JWT + admin role)
	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(cfg.JWTSecret), middleware.AdminMiddleware())
	{
		admin.GET("/todo", adminHandler.ListTodos)
		admin.DELETE("/todo/:id", adminHandler.DeleteTodo)
	}

	// Profile routes (require JWT)
	users := router.Group("/users")
	users.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		users.GET("/me", userHandler.Me)
		users.POST("/change-password", userHandler.ChangePassword)
		users.PUT("/phone", userHandler.UpdatePhone)
	}

	// Start server
	log.Printf("Server starting on %s", cfg.ServerPort)
	if err := router.Run(cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
