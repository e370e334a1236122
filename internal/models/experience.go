package models

import "time"

// DefaultExperienceIcon is used when a submission omits the icon tag.
const DefaultExperienceIcon = "briefcase"

type Experience struct {
	ID          string `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Title       string `gorm:"column:title;type:text" json:"title"`
	Location    string `gorm:"column:location;type:text" json:"location"`
	Description string `gorm:"column:description;type:text" json:"description"`
	// Free-form label ("2024", "2023 - Present"); never parsed.
	Date  string `gorm:"column:date;type:text" json:"date"`
	Icon  string `gorm:"column:icon;type:text" json:"icon"`
	Order int    `gorm:"column:display_order" json:"order"`

	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (Experience) TableName() string { return "experiences" }
