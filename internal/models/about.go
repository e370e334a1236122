package models

import "time"

// About is the singleton free-text section, upserted like Profile.
type About struct {
	ID      string `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Content string `gorm:"column:content;type:text" json:"content"`

	UpdatedAt time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (About) TableName() string { return "about" }

func DefaultAbout() *About {
	return &About{
		Content: "Welcome to my portfolio. You can edit this text in the admin panel.",
	}
}
