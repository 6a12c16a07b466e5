package models

import "time"

// Banner is a homepage banner; ascending display_order renders first.
type Banner struct {
	ID           string    `json:"id" bson:"_id"`
	Title        string    `json:"title" bson:"title"`
	Subtitle     string    `json:"subtitle,omitempty" bson:"subtitle,omitempty"`
	DisplayOrder int       `json:"display_order" bson:"display_order"`
	IsActive     bool      `json:"is_active" bson:"is_active"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}
