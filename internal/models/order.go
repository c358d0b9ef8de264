// internal/models/order.go
package models

import (
	"time"

	"github.com/google/uuid"
)

type Order struct {
	BaseModel
	OrderNumber      string        `json:"order_number" gorm:"uniqueIndex;size:32;not null"`
	UserID           uuid.UUID     `json:"user_id" gorm:"type:uuid;not null;index"`
	TotalAmount      float64       `json:"total_amount" gorm:"type:decimal(10,2);not null"`
	DiscountAmount   float64       `json:"discount_amount" gorm:"type:decimal(10,2);default:0"`
	TaxAmount        float64       `json:"tax_amount" gorm:"type:decimal(10,2);default:0"`
	ShippingFee      float64       `json:"shipping_fee" gorm:"type:decimal(10,2);default:0"`
	FinalAmount      float64       `json:"final_amount" gorm:"type:decimal(10,2);not null"`
	Status           OrderStatus   `json:"status" gorm:"type:varchar(20);default:'pending';index"`
	PaymentStatus    PaymentStatus `json:"payment_status" gorm:"type:varchar(20);default:'unpaid';index"`
	PaymentReference string        `json:"payment_reference" gorm:"size:255"`
	ShippingAddress  JSONB         `json:"shipping_address" gorm:"type:jsonb"`
	Notes            string        `json:"notes" gorm:"type:text"`
	PaidAt           *time.Time    `json:"paid_at"`
	CancelledAt      *time.Time    `json:"cancelled_at"`

	// Relationships
	User  User        `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Items []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

type OrderItem struct {
	BaseModel
	OrderID   uuid.UUID `json:"order_id" gorm:"type:uuid;not null;index"`
	ArtworkID uuid.UUID `json:"artwork_id" gorm:"type:uuid;not null;index"`
	Price     float64   `json:"price" gorm:"type:decimal(10,2);not null"`
	Quantity  int       `json:"quantity" gorm:"not null"`
	Subtotal  float64   `json:"subtotal" gorm:"type:decimal(10,2);not null"`

	// Relationships
	Order   Order   `json:"order,omitempty" gorm:"foreignKey:OrderID"`
	Artwork Artwork `json:"artwork,omitempty" gorm:"foreignKey:ArtworkID"`
}
