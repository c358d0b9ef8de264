// internal/services/favorite_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/artvista/artmarket-backend/internal/models"
	"github.com/artvista/artmarket-backend/internal/utils"
)

type FavoriteService struct {
	db *gorm.DB
}

func NewFavoriteService(db *gorm.DB) *FavoriteService {
	return &FavoriteService{db: db}
}

func (s *FavoriteService) AddFavorite(userID, artworkID uuid.UUID) (*models.Favorite, error) {
	var artwork models.Artwork
	if err := s.db.First(&artwork, artworkID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("artwork not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	var existing models.Favorite
	if err := s.db.Where("user_id = ? AND artwork_id = ?", userID, artworkID).
		First(&existing).Error; err == nil {
		return nil, errors.New("artwork already in favorites")
	}

	favorite := &models.Favorite{
		UserID:    userID,
		ArtworkID: artworkID,
	}

	if err := s.db.Create(favorite).Error; err != nil {
		return nil, fmt.Errorf("failed to add favorite: %w", err)
	}

	s.db.Preload("Artwork").Preload("Artwork.Artist").First(favorite, favorite.ID)
	return favorite, nil
}

func (s *FavoriteService) RemoveFavorite(userID, artworkID uuid.UUID) error {
	result := s.db.Where("user_id = ? AND artwork_id = ?", userID, artworkID).
		Delete(&models.Favorite{})
	if result.Error != nil {
		return fmt.Errorf("failed to remove favorite: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("favorite not found")
	}
	return nil
}

func (s *FavoriteService) ListFavorites(userID uuid.UUID, params utils.PaginationParams) ([]models.Favorite, int64, error) {
	query := s.db.Model(&models.Favorite{}).Where("user_id = ?", userID).
		Preload("Artwork").Preload("Artwork.Artist").Preload("Artwork.Category")

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count favorites: %w", err)
	}

	allowedSortFields := []string{"created_at"}
	query = utils.ApplySort(query, params, allowedSortFields)
	query = utils.ApplyPagination(query, params)

	var favorites []models.Favorite
	if err := query.Find(&favorites).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch favorites: %w", err)
	}

	return favorites, total, nil
}

func (s *FavoriteService) IsFavorited(userID, artworkID uuid.UUID) (bool, error) {
	var count int64
	if err := s.db.Model(&models.Favorite{}).
		Where("user_id = ? AND artwork_id = ?", userID, artworkID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("database error: %w", err)
	}
	return count > 0, nil
}
