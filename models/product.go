package models

import "time"

// Product categories sold by the storefront.
const (
	CategoryNecklace = "necklace"
	CategoryEarrings = "earrings"
	CategoryBangles  = "bangles"
	CategoryRings    = "rings"
)

// ValidCategory reports whether c is one of the known categories.
func ValidCategory(c string) bool {
	switch c {
	case CategoryNecklace, CategoryEarrings, CategoryBangles, CategoryRings:
		return true
	}
	return false
}

type Product struct {
	ID          string    `json:"id" bson:"_id"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description" bson:"description"`
	Price       float64   `json:"price" bson:"price"`
	Category    string    `json:"category" bson:"category"`
	Stock       int       `json:"stock" bson:"stock"`
	Size        string    `json:"size,omitempty" bson:"size,omitempty"`
	ImageURL    string    `json:"image_url" bson:"image_url"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}
