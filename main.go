package main

import (
	"fmt"
	"log"
	"os"

	"studyhub/config"
	"studyhub/handler"
	"studyhub/middleware"
	"studyhub/repository"
	"studyhub/services"
	"studyhub/usecase"
	"studyhub/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func init() {
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Println("No .env file found, using process environment")
	}
}

func setupRouter(cfg *config.Config) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(middleware.Metrics())

	// Repositories
	usersRepo := repository.GetUsersRepo(utils.MongoClient)
	notesRepo := repository.GetNotesRepo(utils.MongoClient)
	doubtsRepo := repository.GetDoubtsRepo(utils.MongoClient)
	timetableRepo := repository.GetTimetableRepo(utils.MongoClient)
	sessionsRepo := repository.GetSessionsRepo(utils.MongoClient)

	// Services
	userService := &usecase.UsersService{UsersRepo: usersRepo}
	notesService := &usecase.NotesService{NotesRepo: notesRepo}
	doubtsService := &usecase.DoubtsService{DoubtsRepo: doubtsRepo, UsersRepo: usersRepo}
	timetableService := &usecase.TimetableService{TimetableRepo: timetableRepo}

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.NoRoute(handler.NotFoundHandler)

	// Public routes (no authentication required)
	public := router.Group("/api")
	{
		public.GET("/health", handler.HealthHandler)
		public.GET("/public", handler.PublicHandler)

		// The doubts board is publicly readable
		public.GET("/doubts", middleware.CacheControl("30"), func(c *gin.Context) {
			handler.ListDoubtsHandler(c, doubtsService)
		})

		auth := public.Group("/auth")
		{
			auth.POST("/register", func(c *gin.Context) {
				handler.RegistrationHandler(c, userService)
			})
			auth.POST("/login", func(c *gin.Context) {
				handler.LoginHandler(c, userService, sessionsRepo, cfg.SessionTTL)
			})
			auth.POST("/refresh", handler.RefreshHandler)
		}
	}

	// Protected routes (authentication required)
	protected := router.Group("/api")
	protected.Use(middleware.Auth(cfg, usersRepo))
	protected.Use(middleware.SessionActivity(sessionsRepo))
	{
		auth := protected.Group("/auth")
		{
			auth.GET("/me", handler.ProfileHandler)
			auth.POST("/logout", func(c *gin.Context) {
				handler.LogoutHandler(c, sessionsRepo)
			})
			auth.POST("/change-password", func(c *gin.Context) {
				handler.ChangePasswordHandler(c, userService)
			})

			twofa := auth.Group("/2fa")
			{
				twofa.POST("/setup", func(c *gin.Context) {
					handler.Setup2FAHandler(c, usersRepo)
				})
				twofa.POST("/enable", func(c *gin.Context) {
					handler.Enable2FAHandler(c, usersRepo)
				})
				twofa.POST("/disable", func(c *gin.Context) {
					handler.Disable2FAHandler(c, usersRepo)
				})
			}
		}

		sessions := protected.Group("/sessions")
		{
			sessions.GET("/active", func(c *gin.Context) {
				handler.GetActiveSessionsHandler(c, sessionsRepo)
			})
			sessions.POST("/logout-all", func(c *gin.Context) {
				handler.LogoutAllSessionsHandler(c, sessionsRepo)
			})
		}

		notes := protected.Group("/notes")
		{
			notes.GET("", func(c *gin.Context) {
				handler.GetUserNotesHandler(c, notesService)
			})
			notes.POST("", func(c *gin.Context) {
				handler.CreateNoteHandler(c, notesService)
			})
			notes.PUT("/:id", func(c *gin.Context) {
				handler.UpdateNoteHandler(c, notesService)
			})
			notes.DELETE("/:id", func(c *gin.Context) {
				handler.DeleteNoteHandler(c, notesService)
			})
		}

		doubts := protected.Group("/doubts")
		{
			doubts.POST("", func(c *gin.Context) {
				handler.CreateDoubtHandler(c, doubtsService)
			})
			doubts.POST("/:id/answers", func(c *gin.Context) {
				handler.AnswerDoubtHandler(c, doubtsService)
			})
			doubts.PUT("/:id/resolve", func(c *gin.Context) {
				handler.ResolveDoubtHandler(c, doubtsService)
			})
		}

		timetable := protected.Group("/timetable")
		{
			timetable.GET("", func(c *gin.Context) {
				handler.GetTimetableHandler(c, timetableService)
			})
			timetable.POST("", func(c *gin.Context) {
				handler.ReplaceTimetableHandler(c, timetableService)
			})
		}

		protected.GET("/stats", func(c *gin.Context) {
			handler.StatsHandler(c, handler.StatsRepos{
				Users:  usersRepo,
				Notes:  notesRepo,
				Doubts: doubtsRepo,
			})
		})
	}

	return router
}

func main() {
	cfg := config.Load()

	utils.InitValidator()
	services.InitJWT(cfg.JWTSecret, cfg.JWTExpiration, cfg.RefreshExpiry)
	utils.InitMongoClient(utils.MongoSettings{
		URI:             cfg.Database.URI,
		Database:        cfg.Database.DatabaseName,
		MaxPoolSize:     cfg.Database.MaxPoolSize,
		MinPoolSize:     cfg.Database.MinPoolSize,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		RetryWrites:     cfg.Database.RetryWrites,
	})

	if err := repository.SetupIndexes(utils.MongoClient.Database(cfg.Database.DatabaseName)); err != nil {
		log.Printf("Failed to create indexes: %v", err)
	}

	if cfg.RedisURL != "" {
		blacklist, err := services.NewTokenBlacklist(cfg.RedisURL)
		if err != nil {
			log.Fatalf("Failed to connect token blacklist: %v", err)
		}
		services.TokenBlacklist = blacklist
	} else {
		log.Println("REDIS_URL not set; token blacklisting disabled, tokens expire naturally")
	}

	if cfg.AuthMode == config.AuthBypassed {
		log.Println("WARNING: DISABLE_AUTH is set; every request runs as a placeholder identity. Never use this outside local development.")
	}

	router := setupRouter(cfg)

	serverAddr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Server starting on %s", serverAddr)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
