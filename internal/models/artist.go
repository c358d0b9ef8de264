// internal/models/artist.go
package models

import (
	"github.com/google/uuid"
)

type Artist struct {
	BaseModel
	UserID        *uuid.UUID   `json:"user_id" gorm:"type:uuid;index"`
	Name          string       `json:"name" gorm:"size:255;not null"`
	Slug          string       `json:"slug" gorm:"uniqueIndex;size:255;not null"`
	Bio           string       `json:"bio" gorm:"type:text"`
	Country       string       `json:"country" gorm:"size:100;index"`
	AvatarURL     string       `json:"avatar_url" gorm:"size:500"`
	CoverURL      string       `json:"cover_url" gorm:"size:500"`
	Status        ArtistStatus `json:"status" gorm:"type:varchar(20);default:'pending';index"`
	TotalArtworks int64        `json:"total_artworks" gorm:"default:0"`
	TotalSales    int64        `json:"total_sales" gorm:"default:0"`

	// Relationships
	User     *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Artworks []Artwork `json:"artworks,omitempty" gorm:"foreignKey:ArtistID"`
}
