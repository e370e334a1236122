package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/nabilath/portfolio-api/config"
	"github.com/nabilath/portfolio-api/internal/api/handlers"
	"github.com/nabilath/portfolio-api/internal/api/middleware"
	"github.com/nabilath/portfolio-api/internal/api/routes"
	"github.com/nabilath/portfolio-api/internal/logger"
	pgrepo "github.com/nabilath/portfolio-api/internal/repositories/postgres"
	"github.com/nabilath/portfolio-api/internal/services"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	l := logger.New()

	db, err := config.OpenPostgres(cfg)
	if err != nil {
		log.Fatalf("PostgreSQL init error: %v", err)
	}
	defer func() {
		if err := config.ClosePostgres(db); err != nil {
			l.WithError(err).Warn("closing database pool")
		}
	}()
	l.Info("PostgreSQL connected")

	if err := pgrepo.Migrate(db); err != nil {
		log.Fatalf("migration error: %v", err)
	}

	// Repositories
	userRepo := pgrepo.NewUserRepo(db)
	profileRepo := pgrepo.NewProfileRepo(db)
	aboutRepo := pgrepo.NewAboutRepo(db)
	skillRepo := pgrepo.NewSkillRepo(db)
	projectRepo := pgrepo.NewProjectRepo(db)
	experienceRepo := pgrepo.NewExperienceRepo(db)
	certificateRepo := pgrepo.NewCertificateRepo(db)
	imageRepo := pgrepo.NewImageRepo(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	profileSvc := services.NewProfileService(profileRepo)
	aboutSvc := services.NewAboutService(aboutRepo)
	skillSvc := services.NewSkillService(skillRepo)
	projectSvc := services.NewProjectService(projectRepo)
	experienceSvc := services.NewExperienceService(experienceRepo)
	certificateSvc := services.NewCertificateService(certificateRepo)
	imageSvc := services.NewImageService(imageRepo)

	seedCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := authSvc.SeedAdmin(seedCtx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		cancel()
		log.Fatalf("admin seed error: %v", err)
	}
	cancel()

	secureCookie := os.Getenv("APP_ENV") == "production"

	r := gin.New()
	r.Use(middleware.RequestLogger(l), gin.Recovery())

	routes.RegisterRoutes(r, routes.Deps{
		JWTSecret:   cfg.JWTSecret,
		Auth:        handlers.NewAuthHandler(authSvc, secureCookie),
		Profile:     handlers.NewProfileHandler(profileSvc),
		About:       handlers.NewAboutHandler(aboutSvc),
		Skill:       handlers.NewSkillHandler(skillSvc),
		Project:     handlers.NewProjectHandler(projectSvc),
		Experience:  handlers.NewExperienceHandler(experienceSvc),
		Certificate: handlers.NewCertificateHandler(certificateSvc),
		Upload:      handlers.NewUploadHandler(imageSvc, profileSvc, cfg.MaxUploadBytes),
		Image:       handlers.NewImageHandler(imageSvc),
	})

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
