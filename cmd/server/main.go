package main

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "terracore/docs" // swagger docs

	"terracore/internal/auth"
	"terracore/internal/cache"
	"terracore/internal/config"
	"terracore/internal/db"
	"terracore/internal/handler"
	"terracore/internal/mail"
	"terracore/internal/repository"
	"terracore/internal/router"
	"terracore/internal/service"
)

// @title TerraCore Solutions API
// @version 1.0
// @description Real-estate and building-materials API with JWT authentication.
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestID())

	// The store is fully opened, migrated and seeded before any handler is
	// wired, so no request can observe a half-initialized database.
	gormDB, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}
	if err := db.Seed(gormDB); err != nil {
		log.Fatalf("database seed: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	mailer := mail.NewMailer(cfg)
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	userRepo := repository.NewUserRepository(gormDB)
	propertyRepo := repository.NewPropertyRepository(gormDB)
	materialRepo := repository.NewMaterialRepository(gormDB)
	contactRepo := repository.NewContactRepository(gormDB)
	newsletterRepo := repository.NewNewsletterRepository(gormDB)

	authService := service.NewAuthService(userRepo, jwtService)
	propertyService := service.NewPropertyService(propertyRepo, cacheClient)
	materialService := service.NewMaterialService(materialRepo, cacheClient)
	contactService := service.NewContactService(contactRepo, mailer, cfg.AdminEmail)
	newsletterService := service.NewNewsletterService(newsletterRepo)

	router.Register(
		e,
		cfg,
		jwtService,
		handler.NewAuthHandler(authService),
		handler.NewPropertyHandler(propertyService),
		handler.NewMaterialHandler(materialService),
		handler.NewContactHandler(contactService),
		handler.NewNewsletterHandler(newsletterService),
	)

	log.Printf("TerraCore Solutions API Server running on port %s", cfg.ServerPort)
	log.Printf("Environment: %s", cfg.Env)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
