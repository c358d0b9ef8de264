// internal/handlers/admin.go
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

type AdminHandler struct {
	adminService   *services.AdminService
	artistService  *services.ArtistService
	artworkService *services.ArtworkService
	orderService   *services.OrderService
	paymentService *services.PaymentService
}

func NewAdminHandler(
	adminService *services.AdminService,
	artistService *services.ArtistService,
	artworkService *services.ArtworkService,
	orderService *services.OrderService,
	paymentService *services.PaymentService,
) *AdminHandler {
	return &AdminHandler{
		adminService:   adminService,
		artistService:  artistService,
		artworkService: artworkService,
		orderService:   orderService,
		paymentService: paymentService,
	}
}

// GET /admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	params := services.UserSearchParams{
		PaginationParams: utils.GetPaginationParams(c),
	}

	if role := c.Query("role"); role != "" {
		r := models.UserRole(role)
		params.Role = &r
	}

	if status := c.Query("status"); status != "" {
		s := models.UserStatus(status)
		params.Status = &s
	}

	users, total, err := h.adminService.ListUsers(params)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	result := utils.CreatePaginationResult(users, total, params.PaginationParams)
	utils.PaginatedResponse(c, result)
}

// PUT /admin/users/:id/status
func (h *AdminHandler) UpdateUserStatus(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "invalid user ID", nil)
		return
	}

	var req struct {
		Status models.UserStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	user, err := h.adminService.UpdateUserStatus(id, req.Status)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, i18n.T(lang, i18n.KeyUserNotFound))
			return
		}
		utils.ConflictResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, user)
}

// GET /admin/artists
func (h *AdminHandler) ListArtists(c *gin.Context) {
	params := services.ArtistSearchParams{
		PaginationParams: utils.GetPaginationParams(c),
	}

	if status := c.Query("status"); status != "" {
		s := models.ArtistStatus(status)
		params.Status = &s
	}

	artists, total, err := h.artistService.SearchArtists(params)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	result := utils.CreatePaginationResult(artists, total, params.PaginationParams)
	utils.PaginatedResponse(c, result)
}

// PUT /admin/artists/:id/status
func (h *AdminHandler) UpdateArtistStatus(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "invalid artist ID", nil)
		return
	}

	var req struct {
		Status models.ArtistStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	artist, err := h.artistService.UpdateArtistStatus(id, req.Status)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, i18n.T(lang, i18n.KeyArtistNotFound))
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponseWithMessage(c, i18n.T(lang, i18n.KeyArtistApproved), artist)
}

// PUT /admin/artworks/:id/status
func (h *AdminHandler) UpdateArtworkStatus(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "invalid artwork ID", nil)
		return
	}

	var req struct {
		Status models.ArtworkStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	artwork, err := h.artworkService.UpdateArtworkStatus(id, req.Status)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, i18n.T(lang, i18n.KeyArtworkNotFound))
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponseWithMessage(c, i18n.T(lang, i18n.KeyArtworkUpdated), artwork)
}

// GET /admin/orders
func (h *AdminHandler) ListOrders(c *gin.Context) {
	params := services.OrderSearchParams{
		PaginationParams: utils.GetPaginationParams(c),
	}

	if status := c.Query("status"); status != "" {
		s := models.OrderStatus(status)
		params.Status = &s
	}

	if paymentStatus := c.Query("payment_status"); paymentStatus != "" {
		p := models.PaymentStatus(paymentStatus)
		params.PaymentStatus = &p
	}

	orders, total, err := h.orderService.ListOrders(params)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	result := utils.CreatePaginationResult(orders, total, params.PaginationParams)
	utils.PaginatedResponse(c, result)
}

// PUT /admin/orders/:id/status
func (h *AdminHandler) UpdateOrderStatus(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "invalid order ID", nil)
		return
	}

	var req struct {
		Status models.OrderStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	order, err := h.orderService.UpdateOrderStatus(id, req.Status)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, i18n.T(lang, i18n.KeyOrderNotFound))
			return
		}
		utils.ConflictResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, order)
}

// POST /admin/orders/:id/refund
func (h *AdminHandler) RefundOrder(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "invalid order ID", nil)
		return
	}

	var req struct {
		Reason string `json:"reason" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	order, err := h.paymentService.RefundOrder(&services.RefundRequest{
		OrderID: id,
		Reason:  req.Reason,
	})
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, i18n.T(lang, i18n.KeyOrderNotFound))
			return
		}
		utils.ConflictResponse(c, err.Error())
		return
	}

	utils.SuccessResponseWithMessage(c, i18n.T(lang, i18n.KeyPaymentRefunded), order)
}
