// internal/handlers/favorite.go
package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/artvista/artmarket-backend/internal/i18n"
	"github.com/artvista/artmarket-backend/internal/services"
	"github.com/artvista/artmarket-backend/internal/utils"
)

type FavoriteHandler struct {
	favoriteService *services.FavoriteService
}

func NewFavoriteHandler(favoriteService *services.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteService: favoriteService,
	}
}

// GET /favorites
func (h *FavoriteHandler) ListFavorites(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	favorites, total, err := h.favoriteService.ListFavorites(mustUserID(c), params)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	result := utils.CreatePaginationResult(favorites, total, params)
	utils.PaginatedResponse(c, result)
}

// POST /favorites/:artworkId
func (h *FavoriteHandler) AddFavorite(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	artworkID, err := uuid.Parse(c.Param("artworkId"))
	if err != nil {
		utils.BadRequestResponse(c, "invalid artwork ID", nil)
		return
	}

	favorite, err := h.favoriteService.AddFavorite(mustUserID(c), artworkID)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, i18n.T(lang, i18n.KeyArtworkNotFound))
			return
		}
		if strings.Contains(err.Error(), "already in favorites") {
			utils.ConflictResponse(c, i18n.T(lang, i18n.KeyFavoriteExists))
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.CreatedResponse(c, i18n.T(lang, i18n.KeyFavoriteAdded), favorite)
}

// DELETE /favorites/:artworkId
func (h *FavoriteHandler) RemoveFavorite(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	artworkID, err := uuid.Parse(c.Param("artworkId"))
	if err != nil {
		utils.BadRequestResponse(c, "invalid artwork ID", nil)
		return
	}

	if err := h.favoriteService.RemoveFavorite(mustUserID(c), artworkID); err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, err.Error())
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponseWithMessage(c, i18n.T(lang, i18n.KeyFavoriteRemoved), nil)
}
