package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// TagList is an ordered set of tags. The API presents it as a JSON array
// while the database column holds a single comma-joined string.
type TagList []string

func (t TagList) Value() (driver.Value, error) {
	return strings.Join(t, ","), nil
}

func (t *TagList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*t = nil
		return nil
	case string:
		*t = ParseTags(v)
		return nil
	case []byte:
		*t = ParseTags(string(v))
		return nil
	default:
		return fmt.Errorf("tags: cannot scan %T", src)
	}
}

// ParseTags splits a comma-separated string, trimming whitespace and
// dropping empty segments.
func ParseTags(s string) TagList {
	parts := strings.Split(s, ",")
	tags := make(TagList, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			tags = append(tags, p)
		}
	}
	return tags
}

type Project struct {
	ID          string  `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Title       string  `gorm:"column:title;type:text" json:"title"`
	Description string  `gorm:"column:description;type:text" json:"description"`
	Tags        TagList `gorm:"column:tags;type:text" json:"tags"`
	ImageURL    string  `gorm:"column:image_url;type:text" json:"imageUrl"`
	Link        string  `gorm:"column:link;type:text" json:"link,omitempty"`
	Order       int     `gorm:"column:display_order" json:"order"`

	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (Project) TableName() string { return "projects" }
