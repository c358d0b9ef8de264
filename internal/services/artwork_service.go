// internal/services/artwork_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/artvista/artmarket-backend/internal/models"
	"github.com/artvista/artmarket-backend/internal/utils"
)

type ArtworkService struct {
	db *gorm.DB
}

type CreateArtworkRequest struct {
	CategoryID  uuid.UUID `json:"category_id" validate:"required"`
	Title       string    `json:"title" validate:"required,min=2,max=255"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price" validate:"required,min=0.01"`
	Stock       int       `json:"stock,omitempty" validate:"omitempty,min=0"`
	WidthCm     float64   `json:"width_cm,omitempty" validate:"omitempty,min=0"`
	HeightCm    float64   `json:"height_cm,omitempty" validate:"omitempty,min=0"`
	DepthCm     float64   `json:"depth_cm,omitempty" validate:"omitempty,min=0"`
	Medium      string    `json:"medium,omitempty" validate:"omitempty,max=100"`
	Year        int       `json:"year,omitempty"`
	Images      []string  `json:"images,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
}

type UpdateArtworkRequest struct {
	CategoryID  *uuid.UUID           `json:"category_id,omitempty"`
	Title       string               `json:"title,omitempty" validate:"omitempty,min=2,max=255"`
	Description string               `json:"description,omitempty"`
	Price       float64              `json:"price,omitempty" validate:"omitempty,min=0.01"`
	Stock       *int                 `json:"stock,omitempty" validate:"omitempty,min=0"`
	WidthCm     float64              `json:"width_cm,omitempty" validate:"omitempty,min=0"`
	HeightCm    float64              `json:"height_cm,omitempty" validate:"omitempty,min=0"`
	DepthCm     float64              `json:"depth_cm,omitempty" validate:"omitempty,min=0"`
	Medium      string               `json:"medium,omitempty" validate:"omitempty,max=100"`
	Year        int                  `json:"year,omitempty"`
	Images      []string             `json:"images,omitempty"`
	Tags        []string             `json:"tags,omitempty"`
	Status      models.ArtworkStatus `json:"status,omitempty"`
}

type ArtworkSearchParams struct {
	utils.PaginationParams
	ArtistID   *uuid.UUID            `json:"artist_id,omitempty"`
	CategoryID *uuid.UUID            `json:"category_id,omitempty"`
	Status     *models.ArtworkStatus `json:"status,omitempty"`
	PriceMin   *float64              `json:"price_min,omitempty"`
	PriceMax   *float64              `json:"price_max,omitempty"`
	Tags       []string              `json:"tags,omitempty"`
	InStock    *bool                 `json:"in_stock,omitempty"`
}

func NewArtworkService(db *gorm.DB) *ArtworkService {
	return &ArtworkService{db: db}
}

func (s *ArtworkService) CreateArtwork(artistID uuid.UUID, req *CreateArtworkRequest) (*models.Artwork, error) {
	// Validate request
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	// Verify artist exists and is active
	var artist models.Artist
	if err := s.db.First(&artist, artistID).Error; err != nil {
		return nil, fmt.Errorf("artist not found: %w", err)
	}

	if artist.Status != models.ArtistStatusActive {
		return nil, errors.New("artist profile is not active")
	}

	// Verify category exists and is active
	var category models.Category
	if err := s.db.First(&category, req.CategoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("category not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	if !category.IsActive {
		return nil, errors.New("category is not active")
	}

	stock := req.Stock
	if stock == 0 {
		// Original works are one of a kind unless stated otherwise
		stock = 1
	}

	artwork := &models.Artwork{
		ArtistID:    artistID,
		CategoryID:  req.CategoryID,
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Stock:       stock,
		WidthCm:     req.WidthCm,
		HeightCm:    req.HeightCm,
		DepthCm:     req.DepthCm,
		Medium:      req.Medium,
		Year:        req.Year,
		Images:      pq.StringArray(req.Images),
		Tags:        pq.StringArray(req.Tags),
		Status:      models.ArtworkStatusAvailable,
	}

	// Artwork insert and the artist counter move together
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(artwork).Error; err != nil {
			return fmt.Errorf("failed to create artwork: %w", err)
		}

		if err := tx.Model(&models.Artist{}).Where("id = ?", artistID).
			UpdateColumn("total_artworks", gorm.Expr("total_artworks + 1")).Error; err != nil {
			return fmt.Errorf("failed to update artist counter: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.db.Preload("Artist").Preload("Category").First(artwork, artwork.ID)
	return artwork, nil
}

func (s *ArtworkService) GetArtwork(id uuid.UUID, viewerArtistID *uuid.UUID) (*models.Artwork, error) {
	var artwork models.Artwork
	if err := s.db.Preload("Artist").Preload("Category").First(&artwork, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("artwork not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	// Hidden artworks are only visible to their artist
	if artwork.Status == models.ArtworkStatusHidden {
		if viewerArtistID == nil || *viewerArtistID != artwork.ArtistID {
			return nil, errors.New("artwork not found")
		}
	}

	// Increment view count if not the artist viewing
	if viewerArtistID == nil || *viewerArtistID != artwork.ArtistID {
		go s.incrementViewCount(id)
	}

	return &artwork, nil
}

func (s *ArtworkService) UpdateArtwork(id uuid.UUID, artistID uuid.UUID, req *UpdateArtworkRequest) (*models.Artwork, error) {
	// Validate request
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	// Find and verify ownership
	var artwork models.Artwork
	if err := s.db.First(&artwork, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("artwork not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if artwork.ArtistID != artistID {
		return nil, errors.New("unauthorized to update this artwork")
	}

	// Prepare updates
	updates := make(map[string]interface{})
	if req.CategoryID != nil {
		var category models.Category
		if err := s.db.First(&category, *req.CategoryID).Error; err != nil {
			return nil, errors.New("category not found")
		}
		updates["category_id"] = *req.CategoryID
	}
	if req.Title != "" {
		updates["title"] = req.Title
	}
	if req.Description != "" {
		updates["description"] = req.Description
	}
	if req.Price > 0 {
		updates["price"] = req.Price
	}
	if req.Stock != nil {
		updates["stock"] = *req.Stock
	}
	if req.WidthCm > 0 {
		updates["width_cm"] = req.WidthCm
	}
	if req.HeightCm > 0 {
		updates["height_cm"] = req.HeightCm
	}
	if req.DepthCm > 0 {
		updates["depth_cm"] = req.DepthCm
	}
	if req.Medium != "" {
		updates["medium"] = req.Medium
	}
	if req.Year != 0 {
		updates["year"] = req.Year
	}
	if req.Images != nil {
		updates["images"] = pq.StringArray(req.Images)
	}
	if req.Tags != nil {
		updates["tags"] = pq.StringArray(req.Tags)
	}
	if req.Status != "" {
		updates["status"] = req.Status
	}

	// Apply updates
	if err := s.db.Model(&artwork).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update artwork: %w", err)
	}

	s.db.Preload("Artist").Preload("Category").First(&artwork, id)
	return &artwork, nil
}

func (s *ArtworkService) DeleteArtwork(id uuid.UUID, artistID uuid.UUID) error {
	// Find and verify ownership
	var artwork models.Artwork
	if err := s.db.First(&artwork, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("artwork not found")
		}
		return fmt.Errorf("database error: %w", err)
	}

	if artwork.ArtistID != artistID {
		return errors.New("unauthorized to delete this artwork")
	}

	// Check if the artwork has been sold
	var salesCount int64
	if err := s.db.Model(&models.OrderItem{}).
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("order_items.artwork_id = ? AND orders.status NOT IN ?", id,
			[]models.OrderStatus{models.OrderStatusCancelled}).
		Count(&salesCount).Error; err != nil {
		return fmt.Errorf("failed to check sales: %w", err)
	}

	if salesCount > 0 {
		return errors.New("cannot delete artwork with sales")
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&artwork).Error; err != nil {
			return fmt.Errorf("failed to delete artwork: %w", err)
		}

		if err := tx.Model(&models.Artist{}).Where("id = ?", artistID).
			UpdateColumn("total_artworks", gorm.Expr("GREATEST(total_artworks - 1, 0)")).Error; err != nil {
			return fmt.Errorf("failed to update artist counter: %w", err)
		}

		return nil
	})

	return err
}

// UpdateArtworkStatus changes an artwork's status without an ownership check.
// Admin moderation only (hide/unhide).
func (s *ArtworkService) UpdateArtworkStatus(id uuid.UUID, status models.ArtworkStatus) (*models.Artwork, error) {
	var artwork models.Artwork
	if err := s.db.First(&artwork, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("artwork not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if err := s.db.Model(&artwork).Update("status", status).Error; err != nil {
		return nil, fmt.Errorf("failed to update artwork status: %w", err)
	}

	s.db.Preload("Artist").Preload("Category").First(&artwork, id)
	return &artwork, nil
}

func (s *ArtworkService) SearchArtworks(params ArtworkSearchParams) ([]models.Artwork, int64, error) {
	query := s.db.Model(&models.Artwork{}).
		Preload("Artist").Preload("Category")

	// Apply filters
	if params.ArtistID != nil {
		query = query.Where("artist_id = ?", *params.ArtistID)
	}

	if params.CategoryID != nil {
		query = query.Where("category_id = ?", *params.CategoryID)
	}

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	} else {
		// Hidden artworks never show up in public listings
		query = query.Where("status <> ?", models.ArtworkStatusHidden)
	}

	if params.Category != "" {
		query = query.Joins("JOIN categories ON categories.id = artworks.category_id").
			Where("categories.slug = ?", params.Category)
	}

	if params.Search != "" {
		searchTerm := "%" + strings.ToLower(params.Search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", searchTerm, searchTerm)
	}

	if params.PriceMin != nil {
		query = query.Where("price >= ?", *params.PriceMin)
	}

	if params.PriceMax != nil {
		query = query.Where("price <= ?", *params.PriceMax)
	}

	if len(params.Tags) > 0 {
		query = query.Where("tags && ?", pq.StringArray(params.Tags))
	}

	if params.InStock != nil && *params.InStock {
		query = query.Where("stock > 0")
	}

	// Get total count
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count artworks: %w", err)
	}

	// Apply sorting
	allowedSortFields := []string{"created_at", "updated_at", "title", "price", "rating", "view_count", "year"}
	query = utils.ApplySort(query, params.PaginationParams, allowedSortFields)

	// Apply pagination
	query = utils.ApplyPagination(query, params.PaginationParams)

	// Execute query
	var artworks []models.Artwork
	if err := query.Find(&artworks).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch artworks: %w", err)
	}

	return artworks, total, nil
}

func (s *ArtworkService) GetArtistArtworks(artistID uuid.UUID, params utils.PaginationParams) ([]models.Artwork, int64, error) {
	query := s.db.Model(&models.Artwork{}).Where("artist_id = ?", artistID).
		Preload("Category")

	if params.Search != "" {
		searchTerm := "%" + strings.ToLower(params.Search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", searchTerm, searchTerm)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count artist artworks: %w", err)
	}

	allowedSortFields := []string{"created_at", "updated_at", "title", "price", "status"}
	query = utils.ApplySort(query, params, allowedSortFields)
	query = utils.ApplyPagination(query, params)

	var artworks []models.Artwork
	if err := query.Find(&artworks).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch artist artworks: %w", err)
	}

	return artworks, total, nil
}

func (s *ArtworkService) GetPopularArtworks(limit int) ([]models.Artwork, error) {
	var artworks []models.Artwork
	if err := s.db.Where("status = ?", models.ArtworkStatusAvailable).
		Order("view_count DESC, rating DESC, review_count DESC").
		Limit(limit).
		Preload("Artist").Preload("Category").
		Find(&artworks).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch popular artworks: %w", err)
	}

	return artworks, nil
}

func (s *ArtworkService) GetFeaturedArtworks(limit int) ([]models.Artwork, error) {
	var artworks []models.Artwork
	if err := s.db.Where("status = ?", models.ArtworkStatusAvailable).
		Where("rating >= ?", 4.0).
		Order("rating DESC, review_count DESC, created_at DESC").
		Limit(limit).
		Preload("Artist").Preload("Category").
		Find(&artworks).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch featured artworks: %w", err)
	}

	return artworks, nil
}

// Helper methods

func (s *ArtworkService) incrementViewCount(artworkID uuid.UUID) {
	s.db.Model(&models.Artwork{}).Where("id = ?", artworkID).
		UpdateColumn("view_count", gorm.Expr("view_count + 1"))
}
