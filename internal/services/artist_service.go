// internal/services/artist_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/artvista/artmarket-backend/internal/models"
	"github.com/artvista/artmarket-backend/internal/utils"
)

type ArtistService struct {
	db *gorm.DB
}

type CreateArtistRequest struct {
	Name      string `json:"name" validate:"required,min=2,max=255"`
	Bio       string `json:"bio,omitempty"`
	Country   string `json:"country,omitempty" validate:"omitempty,max=100"`
	AvatarURL string `json:"avatar_url,omitempty" validate:"omitempty,max=500"`
	CoverURL  string `json:"cover_url,omitempty" validate:"omitempty,max=500"`
}

type UpdateArtistRequest struct {
	Name      string `json:"name,omitempty" validate:"omitempty,min=2,max=255"`
	Bio       string `json:"bio,omitempty"`
	Country   string `json:"country,omitempty" validate:"omitempty,max=100"`
	AvatarURL string `json:"avatar_url,omitempty" validate:"omitempty,max=500"`
	CoverURL  string `json:"cover_url,omitempty" validate:"omitempty,max=500"`
}

type ArtistSearchParams struct {
	utils.PaginationParams
	Country string               `json:"country,omitempty"`
	Status  *models.ArtistStatus `json:"status,omitempty"`
}

func NewArtistService(db *gorm.DB) *ArtistService {
	return &ArtistService{db: db}
}

// CreateArtist creates the artist profile for a user account. One per user.
func (s *ArtistService) CreateArtist(userID uuid.UUID, req *CreateArtistRequest) (*models.Artist, error) {
	// Validate request
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	// Verify user exists and may hold an artist profile
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}

	if user.Role != models.UserRoleArtist && user.Role != models.UserRoleGallery && user.Role != models.UserRoleAdmin {
		return nil, errors.New("only artist and gallery accounts can create artist profiles")
	}

	var existing models.Artist
	if err := s.db.Where("user_id = ?", userID).First(&existing).Error; err == nil {
		return nil, errors.New("artist profile already exists for this account")
	}

	artist := &models.Artist{
		UserID:    &userID,
		Name:      req.Name,
		Slug:      s.uniqueSlug(req.Name),
		Bio:       req.Bio,
		Country:   req.Country,
		AvatarURL: req.AvatarURL,
		CoverURL:  req.CoverURL,
		Status:    models.ArtistStatusPending,
	}

	if err := s.db.Create(artist).Error; err != nil {
		return nil, fmt.Errorf("failed to create artist: %w", err)
	}

	return artist, nil
}

func (s *ArtistService) GetArtist(id uuid.UUID) (*models.Artist, error) {
	var artist models.Artist
	if err := s.db.First(&artist, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("artist not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &artist, nil
}

func (s *ArtistService) GetArtistBySlug(slug string) (*models.Artist, error) {
	var artist models.Artist
	if err := s.db.Where("slug = ?", slug).First(&artist).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("artist not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &artist, nil
}

func (s *ArtistService) GetArtistByUserID(userID uuid.UUID) (*models.Artist, error) {
	var artist models.Artist
	if err := s.db.Where("user_id = ?", userID).First(&artist).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("artist not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &artist, nil
}

func (s *ArtistService) UpdateArtist(id uuid.UUID, userID uuid.UUID, isAdmin bool, req *UpdateArtistRequest) (*models.Artist, error) {
	// Validate request
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var artist models.Artist
	if err := s.db.First(&artist, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("artist not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if !isAdmin && (artist.UserID == nil || *artist.UserID != userID) {
		return nil, errors.New("unauthorized to update this artist")
	}

	updates := make(map[string]interface{})
	if req.Name != "" && req.Name != artist.Name {
		updates["name"] = req.Name
		updates["slug"] = s.uniqueSlug(req.Name)
	}
	if req.Bio != "" {
		updates["bio"] = req.Bio
	}
	if req.Country != "" {
		updates["country"] = req.Country
	}
	if req.AvatarURL != "" {
		updates["avatar_url"] = req.AvatarURL
	}
	if req.CoverURL != "" {
		updates["cover_url"] = req.CoverURL
	}

	if len(updates) > 0 {
		if err := s.db.Model(&artist).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update artist: %w", err)
		}
	}

	s.db.First(&artist, id)
	return &artist, nil
}

func (s *ArtistService) UpdateArtistStatus(id uuid.UUID, status models.ArtistStatus) (*models.Artist, error) {
	var artist models.Artist
	if err := s.db.First(&artist, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("artist not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if err := s.db.Model(&artist).Update("status", status).Error; err != nil {
		return nil, fmt.Errorf("failed to update artist status: %w", err)
	}

	return &artist, nil
}

func (s *ArtistService) SearchArtists(params ArtistSearchParams) ([]models.Artist, int64, error) {
	query := s.db.Model(&models.Artist{})

	// Apply filters
	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	} else {
		// Public listings only show active artists
		query = query.Where("status = ?", models.ArtistStatusActive)
	}

	if params.Country != "" {
		query = query.Where("country = ?", params.Country)
	}

	if params.Search != "" {
		searchTerm := "%" + strings.ToLower(params.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(bio) LIKE ?", searchTerm, searchTerm)
	}

	// Get total count
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count artists: %w", err)
	}

	// Apply sorting and pagination
	allowedSortFields := []string{"created_at", "name", "total_artworks", "total_sales"}
	query = utils.ApplySort(query, params.PaginationParams, allowedSortFields)
	query = utils.ApplyPagination(query, params.PaginationParams)

	// Execute query
	var artists []models.Artist
	if err := query.Find(&artists).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch artists: %w", err)
	}

	return artists, total, nil
}

// uniqueSlug appends a short random suffix when the base slug is taken.
func (s *ArtistService) uniqueSlug(name string) string {
	slug := utils.Slugify(name)

	var count int64
	s.db.Model(&models.Artist{}).Where("slug = ?", slug).Count(&count)
	if count == 0 {
		return slug
	}

	suffix, err := utils.GenerateRandomString(6)
	if err != nil {
		return slug
	}
	return slug + "-" + strings.ToLower(suffix)
}
