package models

import "time"

// Certificate shares the ordered-item shape but has no batch reorder; its
// position is set at creation or update only.
type Certificate struct {
	ID          string `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Title       string `gorm:"column:title;type:text" json:"title"`
	Description string `gorm:"column:description;type:text" json:"description"`
	ImageURL    string `gorm:"column:image_url;type:text" json:"imageUrl"`
	IssueDate   string `gorm:"column:issue_date;type:text" json:"issueDate"`
	Issuer      string `gorm:"column:issuer;type:text" json:"issuer"`
	Order       int    `gorm:"column:display_order" json:"order"`

	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (Certificate) TableName() string { return "certificates" }
