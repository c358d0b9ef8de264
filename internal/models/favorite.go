// internal/models/favorite.go
package models

import (
	"github.com/google/uuid"
)

type Favorite struct {
	BaseModel
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_favorites_user_artwork"`
	ArtworkID uuid.UUID `json:"artwork_id" gorm:"type:uuid;not null;uniqueIndex:idx_favorites_user_artwork"`

	// Relationships
	User    User    `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Artwork Artwork `json:"artwork,omitempty" gorm:"foreignKey:ArtworkID"`
}
