package models

import "time"

// User is the admin account. The deployment assumes a single administrative
// actor; there is no role model beyond existing or not.
type User struct {
	ID           string `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Email        string `gorm:"column:email;type:text;uniqueIndex" json:"email"`
	PasswordHash string `gorm:"column:password_hash;type:text" json:"-"`

	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
}

func (User) TableName() string { return "users" }
