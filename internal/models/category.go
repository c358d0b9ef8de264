// internal/models/category.go
package models

type Category struct {
	BaseModel
	Name        string `json:"name" gorm:"size:100;not null"`
	Slug        string `json:"slug" gorm:"uniqueIndex;size:100;not null"`
	Description string `json:"description" gorm:"type:text"`
	SortOrder   int    `json:"sort_order" gorm:"default:0;index"`
	IsActive    bool   `json:"is_active" gorm:"default:true"`

	// Relationships
	Artworks []Artwork `json:"artworks,omitempty" gorm:"foreignKey:CategoryID"`
}
