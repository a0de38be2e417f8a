package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	activityapp "github.com/taskhub/backend/internal/application/activity"
	identityapp "github.com/taskhub/backend/internal/application/identity"
	projectapp "github.com/taskhub/backend/internal/application/project"
	taskapp "github.com/taskhub/backend/internal/application/task"
	"github.com/taskhub/backend/internal/infrastructure/auth"
	"github.com/taskhub/backend/internal/infrastructure/config"
	"github.com/taskhub/backend/internal/infrastructure/logger"
	"github.com/taskhub/backend/internal/infrastructure/persistence"
	"github.com/taskhub/backend/internal/interfaces/http/handler"
	"github.com/taskhub/backend/internal/interfaces/http/middleware"
	"github.com/taskhub/backend/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting TaskHub Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))

	// Initialize database connection
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	projectRepo := persistence.NewGormProjectRepository(db.DB)
	memberRepo := persistence.NewGormMemberRepository(db.DB)
	taskRepo := persistence.NewGormTaskRepository(db.DB)
	commentRepo := persistence.NewGormCommentRepository(db.DB)
	activityRepo := persistence.NewGormActivityRepository(db.DB)

	// Token blacklist: Redis when configured, in-memory otherwise
	var blacklist auth.TokenBlacklist
	if cfg.Redis.Host != "" {
		redisBlacklist, err := auth.NewRedisTokenBlacklist(cfg.Redis)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		blacklist = redisBlacklist
		log.Info("Token blacklist backed by Redis", zap.String("addr", cfg.Redis.Addr()))
	} else {
		blacklist = auth.NewInMemoryTokenBlacklist()
		log.Warn("Redis not configured, using in-memory token blacklist")
	}

	// Activity recorder shared by project and task services
	recorder := activityapp.NewRecorder(activityRepo, log)

	// Application services
	jwtService := auth.NewJWTService(cfg.JWT)
	authConfig := identityapp.DefaultAuthServiceConfig()
	if cfg.Workflow.MaxLoginAttempts > 0 {
		authConfig.MaxLoginAttempts = cfg.Workflow.MaxLoginAttempts
	}
	if cfg.Workflow.LockDuration > 0 {
		authConfig.LockDuration = cfg.Workflow.LockDuration
	}
	authService := identityapp.NewAuthService(userRepo, jwtService, blacklist, authConfig, log)
	userService := identityapp.NewUserService(userRepo, log)
	projectService := projectapp.NewProjectService(projectRepo, memberRepo, userRepo, recorder, log)
	taskService := taskapp.NewTaskService(taskRepo, commentRepo, projectRepo, memberRepo, recorder,
		taskapp.TaskServiceConfig{
			RequireMemberAssignee: cfg.Workflow.RequireMemberAssignee,
			LogUnchangedStatus:    cfg.Workflow.LogUnchangedStatus,
		}, log)

	// HTTP handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	projectHandler := handler.NewProjectHandler(projectService)
	taskHandler := handler.NewTaskHandler(taskService)
	systemHandler := handler.NewSystemHandler()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware stack: request ID, panic recovery, request logging,
	// security headers, CORS, body size limit
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	// Health check endpoint (outside API versioning)
	engine.GET("/health", healthHandler(db))

	// API routes
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	r.Use(middleware.JWTAuthMiddleware(middleware.JWTMiddlewareConfig{
		JWTService: jwtService,
		Blacklist:  blacklist,
		SkipPaths: []string{
			"/api/v1/auth/register",
			"/api/v1/auth/login",
			"/api/v1/auth/refresh",
			"/api/v1/system/ping",
			"/api/v1/system/info",
		},
		Logger: log,
	}))

	// Identity domain
	authRoutes := router.NewDomainGroup("auth", "/auth")
	authRoutes.POST("/register", authHandler.Register)
	authRoutes.POST("/login", authHandler.Login)
	authRoutes.POST("/refresh", authHandler.RefreshToken)
	authRoutes.POST("/logout", authHandler.Logout)
	authRoutes.PUT("/password", authHandler.ChangePassword)

	userRoutes := router.NewDomainGroup("users", "/users")
	userRoutes.GET("/me", userHandler.Me)
	userRoutes.PUT("/me", userHandler.UpdateProfile)
	userRoutes.GET("", userHandler.List)
	userRoutes.GET("/:id", userHandler.GetByID)
	userRoutes.POST("/:id/roles", userHandler.GrantRole)
	userRoutes.DELETE("/:id", userHandler.Deactivate)

	// Project domain
	projectRoutes := router.NewDomainGroup("projects", "/projects")
	projectRoutes.POST("", projectHandler.Create)
	projectRoutes.GET("", projectHandler.List)
	projectRoutes.GET("/:id", projectHandler.GetByID)
	projectRoutes.PUT("/:id", projectHandler.Update)
	projectRoutes.DELETE("/:id", projectHandler.Archive)
	projectRoutes.GET("/:id/members", projectHandler.ListMembers)
	projectRoutes.POST("/:id/members", projectHandler.AddMember)
	projectRoutes.DELETE("/:id/members/:user_id", projectHandler.RemoveMember)
	projectRoutes.GET("/:id/activity", projectHandler.Activity)

	// Task domain
	taskRoutes := router.NewDomainGroup("tasks", "/tasks")
	taskRoutes.POST("", taskHandler.Create)
	taskRoutes.GET("", taskHandler.List)
	taskRoutes.GET("/:id", taskHandler.GetByID)
	taskRoutes.PUT("/:id", taskHandler.Update)
	taskRoutes.PUT("/:id/status", taskHandler.UpdateStatus)
	taskRoutes.PUT("/:id/assignee", taskHandler.Assign)
	taskRoutes.DELETE("/:id", taskHandler.Archive)
	taskRoutes.POST("/:id/comments", taskHandler.AddComment)
	taskRoutes.GET("/:id/comments", taskHandler.ListComments)
	taskRoutes.GET("/:id/activity", taskHandler.Activity)

	// System routes
	systemRoutes := router.NewDomainGroup("system", "/system")
	systemRoutes.GET("/ping", systemHandler.Ping)
	systemRoutes.GET("/info", systemHandler.GetSystemInfo)

	r.Register(authRoutes).
		Register(userRoutes).
		Register(projectRoutes).
		Register(taskRoutes).
		Register(systemRoutes)

	r.Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// healthHandler reports API and database health
func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
