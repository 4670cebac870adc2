package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/devjobs/backend/internal/auth"
	"github.com/devjobs/backend/internal/config"
	"github.com/devjobs/backend/internal/database"
	"github.com/devjobs/backend/internal/handlers"
	"github.com/devjobs/backend/internal/services"
	"github.com/devjobs/backend/internal/store"
)

func main() {
	// 1. Environment
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}
	cfg := config.Load()

	// 2. Storage backend selection, decided once at startup. The memory
	// store always exists: it is the whole backend in demo mode and the
	// per-call fallback target for listings otherwise.
	mem := store.NewMemoryStore()

	var (
		jobs      store.JobStore         = mem
		apps      store.ApplicationStore = mem
		favorites store.FavoriteStore    = mem
		alerts    store.AlertStore       = mem
		users     store.UserStore        = mem
	)

	if cfg.DemoMode() {
		log.Println("DATABASE_URL not configured, running in demo mode (in-memory store)")
	} else {
		db, err := database.Connect(cfg.DatabaseURL)
		if err != nil {
			log.Printf("Database unreachable (%v), falling back to demo mode", err)
		} else {
			g := store.NewGormStore(db)
			jobs = store.NewFallbackJobStore(g, mem)
			apps, favorites, alerts, users = g, g, g, g
		}
	}

	// 3. Services
	tokens := auth.New(cfg.JWTSecret)
	mailer := services.NewEmailService(cfg.Mail)
	if !mailer.Enabled() {
		log.Println("Outbound email not configured, confirmations disabled")
	}

	jobService := services.NewJobService(jobs)
	applicationService := services.NewApplicationService(apps, jobs, mailer)
	favoriteService := services.NewFavoriteService(favorites)
	alertService := services.NewAlertService(alerts, mailer)
	userService := services.NewUserService(users, tokens)

	// 4. Handlers
	jobHandler := handlers.NewJobHandler(jobService, tokens)
	applicationHandler := handlers.NewApplicationHandler(applicationService)
	favoriteHandler := handlers.NewFavoriteHandler(favoriteService)
	alertHandler := handlers.NewAlertHandler(alertService)
	authHandler := handlers.NewAuthHandler(userService)

	// 5. Router & CORS
	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// 6. Routes
	r.GET("/health", handlers.HealthCheck)

	r.GET("/jobs", jobHandler.Search)
	r.POST("/jobs", jobHandler.Create)
	r.GET("/jobs/mine", jobHandler.Mine)
	r.GET("/jobs/:id", jobHandler.GetByID)
	r.PUT("/jobs/:id", jobHandler.Update)
	r.DELETE("/jobs/:id", jobHandler.Delete)

	r.POST("/applications", applicationHandler.Submit)
	r.GET("/applications", applicationHandler.List)

	r.POST("/favorites", favoriteHandler.Add)
	r.DELETE("/favorites", favoriteHandler.Remove)
	r.GET("/favorites", favoriteHandler.List)

	r.POST("/email-alerts", alertHandler.Subscribe)
	r.GET("/email-alerts", alertHandler.Get)
	r.DELETE("/email-alerts", alertHandler.Unsubscribe)

	r.POST("/auth/register", authHandler.Register)
	r.POST("/auth/login", authHandler.Login)

	log.Printf("Server starting on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
