package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/nabilath/portfolio-api/internal/api/handlers"
	"github.com/nabilath/portfolio-api/internal/api/middleware"
)

type Deps struct {
	JWTSecret string

	Auth        *handlers.AuthHandler
	Profile     *handlers.ProfileHandler
	About       *handlers.AboutHandler
	Skill       *handlers.SkillHandler
	Project     *handlers.ProjectHandler
	Experience  *handlers.ExperienceHandler
	Certificate *handlers.CertificateHandler
	Upload      *handlers.UploadHandler
	Image       *handlers.ImageHandler
}

// RegisterRoutes wires the REST surface: reads are public, every mutating
// route sits behind the session gate.
func RegisterRoutes(r *gin.Engine, d Deps) {
	// Health-ish
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	r.POST("/auth/login", d.Auth.Login)
	r.POST("/auth/logout", d.Auth.Logout)

	// Public reads
	r.GET("/profile", d.Profile.Get)
	r.GET("/about", d.About.Get)
	r.GET("/skills", d.Skill.List)
	r.GET("/projects", d.Project.List)
	r.GET("/experiences", d.Experience.List)
	r.GET("/certificates", d.Certificate.List)
	r.GET("/images/:id", d.Image.Serve)

	// Admin writes
	auth := r.Group("/")
	auth.Use(middleware.RequireAuth(d.JWTSecret))

	auth.POST("/profile", d.Profile.Save)
	auth.POST("/about", d.About.Save)

	auth.POST("/skills", d.Skill.Create)
	auth.PUT("/skills/reorder", d.Skill.Reorder)
	auth.PUT("/skills/:id", d.Skill.Update)
	auth.DELETE("/skills/:id", d.Skill.Delete)

	auth.POST("/projects", d.Project.Create)
	auth.PUT("/projects/reorder", d.Project.Reorder)
	auth.PUT("/projects/:id", d.Project.Update)
	auth.DELETE("/projects/:id", d.Project.Delete)

	auth.POST("/experiences", d.Experience.Create)
	auth.PUT("/experiences/reorder", d.Experience.Reorder)
	auth.PUT("/experiences/:id", d.Experience.Update)
	auth.DELETE("/experiences/:id", d.Experience.Delete)

	auth.POST("/certificates", d.Certificate.Create)
	auth.PUT("/certificates/:id", d.Certificate.Update)
	auth.DELETE("/certificates/:id", d.Certificate.Delete)

	auth.POST("/upload", d.Upload.Upload)
}
