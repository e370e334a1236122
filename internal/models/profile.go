package models

import (
	"time"

	"gorm.io/datatypes"
)

// Profile is a singleton: at most one row exists and it is accessed via
// upsert, never deleted.
type Profile struct {
	ID          string `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name        string `gorm:"column:name;type:text" json:"name"`
	Title       string `gorm:"column:title;type:text" json:"title"`
	Description string `gorm:"column:description;type:text" json:"description"`
	Location    string `gorm:"column:location;type:text" json:"location,omitempty"`
	Status      string `gorm:"column:status;type:text" json:"status,omitempty"`

	EduMajor          string `gorm:"column:edu_major;type:text" json:"eduMajor,omitempty"`
	EduUniversity     string `gorm:"column:edu_university;type:text" json:"eduUniversity,omitempty"`
	EduGraduationYear int    `gorm:"column:edu_graduation_year" json:"eduGraduationYear,omitempty"`

	ProfileImage       string `gorm:"column:profile_image;type:text" json:"profileImage,omitempty"`
	BackgroundGradient string `gorm:"column:background_gradient;type:text" json:"backgroundGradient,omitempty"`

	// JSONB (save as raw JSON, structure flexible)
	Links datatypes.JSON `gorm:"column:links;type:jsonb" json:"links,omitempty"`

	UpdatedAt time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (Profile) TableName() string { return "profiles" }

// DefaultProfile is what GET returns before the admin has saved anything.
func DefaultProfile() *Profile {
	return &Profile{
		Name:               "Your Name",
		Title:              "Full-Stack Developer",
		Description:        "Passionate about creating beautiful and functional web applications with modern technologies.",
		Status:             "Welcome To My Portfolio",
		EduMajor:           "Computer Science",
		BackgroundGradient: "from-blue-600 via-purple-600 to-indigo-600",
	}
}
