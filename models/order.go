package models

import (
	"time"

	"github.com/google/uuid"
)

// Order is immutable once created; there is no update path.
type Order struct {
	ID              uuid.UUID   `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CustomerName    string      `gorm:"not null" json:"customer_name"`
	CustomerPhone   string      `gorm:"type:varchar(10);not null" json:"customer_phone"`
	CustomerEmail   string      `json:"customer_email"`
	CustomerAddress string      `gorm:"not null" json:"customer_address"`
	Subtotal        float64     `gorm:"not null" json:"subtotal"`
	Shipping        float64     `gorm:"not null" json:"shipping"`
	TotalAmount     float64     `gorm:"not null" json:"total_amount"`
	CreatedAt       time.Time   `gorm:"autoCreateTime" json:"created_at"`
	Items           []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
}

// OrderItem stores the name/price snapshot from the cart line, not a
// live product reference.
type OrderItem struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OrderID  uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	Name     string    `gorm:"not null" json:"name"`
	Price    float64   `gorm:"not null" json:"price"`
	Quantity int       `gorm:"not null" json:"quantity"`
}
