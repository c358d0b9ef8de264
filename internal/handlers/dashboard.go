// internal/handlers/dashboard.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/artvista/artmarket-backend/internal/i18n"
	"github.com/artvista/artmarket-backend/internal/services"
	"github.com/artvista/artmarket-backend/internal/utils"
)

type DashboardHandler struct {
	dashboardService *services.DashboardService
	artistService    *services.ArtistService
}

func NewDashboardHandler(dashboardService *services.DashboardService, artistService *services.ArtistService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		artistService:    artistService,
	}
}

// GET /dashboard/artist
func (h *DashboardHandler) GetArtistStats(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	artist, err := h.artistService.GetArtistByUserID(mustUserID(c))
	if err != nil {
		utils.ForbiddenResponse(c, i18n.T(lang, i18n.KeyAuthAccessDenied))
		return
	}

	stats, err := h.dashboardService.GetArtistStats(artist.ID)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, stats)
}

// GET /admin/dashboard
func (h *DashboardHandler) GetAdminStats(c *gin.Context) {
	stats, err := h.dashboardService.GetAdminStats()
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, stats)
}
