// internal/services/review_service.go
package services

import (
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/artvista/artmarket-backend/internal/models"
	"github.com/artvista/artmarket-backend/internal/utils"
)

type ReviewService struct {
	db *gorm.DB
}

type CreateReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment,omitempty" validate:"omitempty,max=2000"`
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db}
}

func (s *ReviewService) CreateReview(userID, artworkID uuid.UUID, req *CreateReviewRequest) (*models.Review, error) {
	// Validate request
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var artwork models.Artwork
	if err := s.db.First(&artwork, artworkID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("artwork not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	// One review per user per artwork
	var existing models.Review
	if err := s.db.Where("user_id = ? AND artwork_id = ?", userID, artworkID).
		First(&existing).Error; err == nil {
		return nil, errors.New("review already exists for this artwork")
	}

	review := &models.Review{
		UserID:    userID,
		ArtworkID: artworkID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}

	// Insert and rating recompute share a transaction so the denormalized
	// columns never drift from the review rows.
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(review).Error; err != nil {
			return fmt.Errorf("failed to create review: %w", err)
		}
		return s.recalculateRating(tx, artworkID)
	})
	if err != nil {
		return nil, err
	}

	s.db.Preload("User").First(review, review.ID)
	return review, nil
}

func (s *ReviewService) ListReviews(artworkID uuid.UUID, params utils.PaginationParams) ([]models.Review, int64, error) {
	query := s.db.Model(&models.Review{}).Where("artwork_id = ?", artworkID).
		Preload("User")

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count reviews: %w", err)
	}

	allowedSortFields := []string{"created_at", "rating"}
	query = utils.ApplySort(query, params, allowedSortFields)
	query = utils.ApplyPagination(query, params)

	var reviews []models.Review
	if err := query.Find(&reviews).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch reviews: %w", err)
	}

	return reviews, total, nil
}

func (s *ReviewService) DeleteReview(reviewID, userID uuid.UUID, isAdmin bool) error {
	var review models.Review
	if err := s.db.First(&review, reviewID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("review not found")
		}
		return fmt.Errorf("database error: %w", err)
	}

	if !isAdmin && review.UserID != userID {
		return errors.New("unauthorized to delete this review")
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&review).Error; err != nil {
			return fmt.Errorf("failed to delete review: %w", err)
		}
		return s.recalculateRating(tx, review.ArtworkID)
	})
}

// recalculateRating refreshes the artwork's rating and review_count from the
// remaining review rows. Rating is the mean rounded to two decimals, zero when
// no reviews remain.
func (s *ReviewService) recalculateRating(tx *gorm.DB, artworkID uuid.UUID) error {
	var stats struct {
		Count int64
		Avg   float64
	}

	if err := tx.Model(&models.Review{}).
		Select("COUNT(*) as count, COALESCE(AVG(rating), 0) as avg").
		Where("artwork_id = ?", artworkID).
		Scan(&stats).Error; err != nil {
		return fmt.Errorf("failed to aggregate reviews: %w", err)
	}

	rating := math.Round(stats.Avg*100) / 100

	if err := tx.Model(&models.Artwork{}).Where("id = ?", artworkID).
		Updates(map[string]interface{}{
			"rating":       rating,
			"review_count": stats.Count,
		}).Error; err != nil {
		return fmt.Errorf("failed to update artwork rating: %w", err)
	}

	return nil
}
