package models

import "time"

type Skill struct {
	ID    string `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name  string `gorm:"column:name;type:text" json:"name"`
	Order int    `gorm:"column:display_order" json:"order"`

	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (Skill) TableName() string { return "skills" }
