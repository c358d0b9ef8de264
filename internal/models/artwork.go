// internal/models/artwork.go
package models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Artwork struct {
	BaseModel
	ArtistID    uuid.UUID      `json:"artist_id" gorm:"type:uuid;not null;index"`
	CategoryID  uuid.UUID      `json:"category_id" gorm:"type:uuid;not null;index"`
	Title       string         `json:"title" gorm:"size:255;not null"`
	Description string         `json:"description" gorm:"type:text"`
	Price       float64        `json:"price" gorm:"type:decimal(10,2);not null"`
	Stock       int            `json:"stock" gorm:"default:1"`
	WidthCm     float64        `json:"width_cm" gorm:"type:decimal(7,2);default:0"`
	HeightCm    float64        `json:"height_cm" gorm:"type:decimal(7,2);default:0"`
	DepthCm     float64        `json:"depth_cm" gorm:"type:decimal(7,2);default:0"`
	Medium      string         `json:"medium" gorm:"size:100"`
	Year        int            `json:"year" gorm:"default:0"`
	Images      pq.StringArray `json:"images" gorm:"type:text[]"`
	Tags        pq.StringArray `json:"tags" gorm:"type:text[]"`
	Status      ArtworkStatus  `json:"status" gorm:"type:varchar(20);default:'available';index"`
	ViewCount   int64          `json:"view_count" gorm:"default:0"`
	Rating      float64        `json:"rating" gorm:"type:decimal(3,2);default:0"`
	ReviewCount int64          `json:"review_count" gorm:"default:0"`

	// Relationships
	Artist     Artist      `json:"artist,omitempty" gorm:"foreignKey:ArtistID"`
	Category   Category    `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	OrderItems []OrderItem `json:"order_items,omitempty" gorm:"foreignKey:ArtworkID"`
	Reviews    []Review    `json:"reviews,omitempty" gorm:"foreignKey:ArtworkID"`
	Favorites  []Favorite  `json:"favorites,omitempty" gorm:"foreignKey:ArtworkID"`
}
