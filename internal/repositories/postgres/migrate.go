package postgres

import (
	"github.com/nabilath/portfolio-api/internal/models"
	"gorm.io/gorm"
)

// Migrate creates or alters every table the API owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.About{},
		&models.Skill{},
		&models.Project{},
		&models.Experience{},
		&models.Certificate{},
		&models.Image{},
	)
}
