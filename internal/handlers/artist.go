// internal/handlers/artist.go
package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/artvista/artmarket-backend/internal/i18n"
	"github.com/artvista/artmarket-backend/internal/models"
	"github.com/artvista/artmarket-backend/internal/services"
	"github.com/artvista/artmarket-backend/internal/utils"
)

type ArtistHandler struct {
	artistService  *services.ArtistService
	artworkService *services.ArtworkService
}

func NewArtistHandler(artistService *services.ArtistService, artworkService *services.ArtworkService) *ArtistHandler {
	return &ArtistHandler{
		artistService:  artistService,
		artworkService: artworkService,
	}
}

// GET /artists
func (h *ArtistHandler) SearchArtists(c *gin.Context) {
	params := services.ArtistSearchParams{
		PaginationParams: utils.GetPaginationParams(c),
	}

	if country := c.Query("country"); country != "" {
		params.Country = country
	}

	artists, total, err := h.artistService.SearchArtists(params)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	result := utils.CreatePaginationResult(artists, total, params.PaginationParams)
	utils.PaginatedResponse(c, result)
}

// GET /artists/:id
func (h *ArtistHandler) GetArtist(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	idOrSlug := c.Param("id")

	var artist *models.Artist
	var err error

	if id, parseErr := uuid.Parse(idOrSlug); parseErr == nil {
		artist, err = h.artistService.GetArtist(id)
	} else {
		artist, err = h.artistService.GetArtistBySlug(idOrSlug)
	}

	if err != nil {
		utils.NotFoundResponse(c, i18n.T(lang, i18n.KeyArtistNotFound))
		return
	}

	utils.SuccessResponse(c, artist)
}

// GET /artists/:id/artworks
func (h *ArtistHandler) GetArtistArtworks(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "invalid artist ID", nil)
		return
	}

	if _, err := h.artistService.GetArtist(id); err != nil {
		utils.NotFoundResponse(c, i18n.T(lang, i18n.KeyArtistNotFound))
		return
	}

	params := services.ArtworkSearchParams{
		PaginationParams: utils.GetPaginationParams(c),
		ArtistID:         &id,
	}

	artworks, total, err := h.artworkService.SearchArtworks(params)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	result := utils.CreatePaginationResult(artworks, total, params.PaginationParams)
	utils.PaginatedResponse(c, result)
}

// POST /artists
func (h *ArtistHandler) CreateArtist(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.CreateArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	userID := mustUserID(c)
	artist, err := h.artistService.CreateArtist(userID, &req)
	if err != nil {
		if strings.Contains(err.Error(), "already exists") {
			utils.ConflictResponse(c, err.Error())
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.CreatedResponse(c, i18n.T(lang, i18n.KeyArtistCreated), artist)
}

// PUT /artists/:id
func (h *ArtistHandler) UpdateArtist(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "invalid artist ID", nil)
		return
	}

	var req services.UpdateArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	userID := mustUserID(c)
	role, _ := utils.GetUserRoleFromContext(c)
	isAdmin := role == string(models.UserRoleAdmin)

	artist, err := h.artistService.UpdateArtist(id, userID, isAdmin, &req)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, i18n.T(lang, i18n.KeyArtistNotFound))
			return
		}
		if strings.Contains(err.Error(), "unauthorized") {
			utils.ForbiddenResponse(c, i18n.T(lang, i18n.KeyAuthAccessDenied))
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponseWithMessage(c, i18n.T(lang, i18n.KeyArtistUpdated), artist)
}
