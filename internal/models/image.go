package models

import "time"

// Image owns its binary exclusively; other entities reference it only by
// the /images/{id} URL.
type Image struct {
	ID       string `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Filename string `gorm:"column:filename;type:text" json:"filename"`
	MimeType string `gorm:"column:mime_type;type:text" json:"mimetype"`
	Size     int64  `gorm:"column:size" json:"size"`
	Data     []byte `gorm:"column:data" json:"-"`

	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
}

func (Image) TableName() string { return "images" }
