package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"contactbook/docs"
	"contactbook/internal/auth"
	"contactbook/internal/cache"
	"contactbook/internal/config"
	"contactbook/internal/db"
	"contactbook/internal/handler"
	"contactbook/internal/mail"
	"contactbook/internal/media"
	"contactbook/internal/model"
	"contactbook/internal/ratelimit"
	"contactbook/internal/repository"
	"contactbook/internal/router"
	"contactbook/internal/service"
)

// Contact creation is capped at five requests per minute per client.
const (
	contactCreateLimit  = 5
	contactCreateWindow = time.Minute
)

// @title Contactbook API
// @version 1.0
// @description Contacts management API with email verification, JWT authentication and avatar upload.
// @host localhost:8080
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.Contact{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Contact{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize external collaborators
	mailer := mail.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)
	uploader, err := media.NewCloudinaryUploader(cfg.CloudinaryName, cfg.CloudinaryKey, cfg.CloudinarySecret)
	if err != nil {
		log.Fatalf("uploader init: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	contactRepo := repository.NewContactRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret, time.Duration(cfg.TokenExpiryMinutes)*time.Minute)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService)
	userService := service.NewUserService(userRepo, mailer, uploader, cacheClient)
	contactService := service.NewContactService(contactRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	contactHandler := handler.NewContactHandler(contactService)

	limiter := ratelimit.New(cacheClient, contactCreateLimit, contactCreateWindow)

	// Register routes
	router.Register(
		e,
		jwtService,
		limiter,
		authHandler,
		userHandler,
		contactHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
