// internal/handlers/artwork.go
package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/artvista/artmarket-backend/internal/i18n"
	"github.com/artvista/artmarket-backend/internal/models"
	"github.com/artvista/artmarket-backend/internal/services"
	"github.com/artvista/artmarket-backend/internal/utils"
)

type ArtworkHandler struct {
	artworkService *services.ArtworkService
	artistService  *services.ArtistService
}

func NewArtworkHandler(artworkService *services.ArtworkService, artistService *services.ArtistService) *ArtworkHandler {
	return &ArtworkHandler{
		artworkService: artworkService,
		artistService:  artistService,
	}
}

// GET /artworks
func (h *ArtworkHandler) SearchArtworks(c *gin.Context) {
	params := services.ArtworkSearchParams{
		PaginationParams: utils.GetPaginationParams(c),
	}

	if artistID := c.Query("artist_id"); artistID != "" {
		if id, err := uuid.Parse(artistID); err == nil {
			params.ArtistID = &id
		}
	}

	if categoryID := c.Query("category_id"); categoryID != "" {
		if id, err := uuid.Parse(categoryID); err == nil {
			params.CategoryID = &id
		}
	}

	if status := c.Query("status"); status != "" {
		s := models.ArtworkStatus(status)
		params.Status = &s
	}

	if priceMin := c.Query("price_min"); priceMin != "" {
		if v, err := strconv.ParseFloat(priceMin, 64); err == nil {
			params.PriceMin = &v
		}
	}

	if priceMax := c.Query("price_max"); priceMax != "" {
		if v, err := strconv.ParseFloat(priceMax, 64); err == nil {
			params.PriceMax = &v
		}
	}

	if tags := c.Query("tags"); tags != "" {
		params.Tags = strings.Split(tags, ",")
	}

	if inStock := c.Query("in_stock"); inStock == "true" {
		v := true
		params.InStock = &v
	}

	artworks, total, err := h.artworkService.SearchArtworks(params)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	result := utils.CreatePaginationResult(artworks, total, params.PaginationParams)
	utils.PaginatedResponse(c, result)
}

// GET /artworks/popular
func (h *ArtworkHandler) GetPopularArtworks(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "12"))
	if limit < 1 || limit > 50 {
		limit = 12
	}

	artworks, err := h.artworkService.GetPopularArtworks(limit)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, artworks)
}

// GET /artworks/featured
func (h *ArtworkHandler) GetFeaturedArtworks(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "12"))
	if limit < 1 || limit > 50 {
		limit = 12
	}

	artworks, err := h.artworkService.GetFeaturedArtworks(limit)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, artworks)
}

// GET /artworks/:id
func (h *ArtworkHandler) GetArtwork(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "invalid artwork ID", nil)
		return
	}

	artwork, err := h.artworkService.GetArtwork(id, h.viewerArtistID(c))
	if err != nil {
		utils.NotFoundResponse(c, i18n.T(lang, i18n.KeyArtworkNotFound))
		return
	}

	utils.SuccessResponse(c, artwork)
}

// POST /artworks
func (h *ArtworkHandler) CreateArtwork(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.CreateArtworkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	artist, ok := h.requireArtist(c)
	if !ok {
		return
	}

	artwork, err := h.artworkService.CreateArtwork(artist.ID, &req)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.CreatedResponse(c, i18n.T(lang, i18n.KeyArtworkCreated), artwork)
}

// PUT /artworks/:id
func (h *ArtworkHandler) UpdateArtwork(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "invalid artwork ID", nil)
		return
	}

	var req services.UpdateArtworkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	artist, ok := h.requireArtist(c)
	if !ok {
		return
	}

	artwork, err := h.artworkService.UpdateArtwork(id, artist.ID, &req)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, i18n.T(lang, i18n.KeyArtworkNotFound))
			return
		}
		if strings.Contains(err.Error(), "unauthorized") {
			utils.ForbiddenResponse(c, i18n.T(lang, i18n.KeyAuthAccessDenied))
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponseWithMessage(c, i18n.T(lang, i18n.KeyArtworkUpdated), artwork)
}

// DELETE /artworks/:id
func (h *ArtworkHandler) DeleteArtwork(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "invalid artwork ID", nil)
		return
	}

	artist, ok := h.requireArtist(c)
	if !ok {
		return
	}

	if err := h.artworkService.DeleteArtwork(id, artist.ID); err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, i18n.T(lang, i18n.KeyArtworkNotFound))
			return
		}
		if strings.Contains(err.Error(), "unauthorized") {
			utils.ForbiddenResponse(c, i18n.T(lang, i18n.KeyAuthAccessDenied))
			return
		}
		utils.ConflictResponse(c, err.Error())
		return
	}

	utils.SuccessResponseWithMessage(c, i18n.T(lang, i18n.KeyArtworkDeleted), nil)
}

// requireArtist resolves the caller's artist profile, writing the error
// response itself when the caller has none.
func (h *ArtworkHandler) requireArtist(c *gin.Context) (*models.Artist, bool) {
	lang := utils.GetLangFromContext(c)

	artist, err := h.artistService.GetArtistByUserID(mustUserID(c))
	if err != nil {
		utils.ForbiddenResponse(c, i18n.T(lang, i18n.KeyAuthAccessDenied))
		return nil, false
	}
	return artist, true
}

// viewerArtistID returns the caller's artist profile ID when one exists.
// Anonymous requests and collectors get nil.
func (h *ArtworkHandler) viewerArtistID(c *gin.Context) *uuid.UUID {
	idStr, ok := utils.GetUserIDFromContext(c)
	if !ok {
		return nil
	}

	userID, err := uuid.Parse(idStr)
	if err != nil {
		return nil
	}

	artist, err := h.artistService.GetArtistByUserID(userID)
	if err != nil {
		return nil
	}
	return &artist.ID
}
