// internal/handlers/category.go
package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/artvista/artmarket-backend/internal/i18n"
	"github.com/artvista/artmarket-backend/internal/services"
	"github.com/artvista/artmarket-backend/internal/utils"
)

type CategoryHandler struct {
	categoryService *services.CategoryService
	artworkService  *services.ArtworkService
}

func NewCategoryHandler(categoryService *services.CategoryService, artworkService *services.ArtworkService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		artworkService:  artworkService,
	}
}

// GET /categories
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	includeInactive := c.Query("include_inactive") == "true"

	categories, err := h.categoryService.ListCategories(includeInactive)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, categories)
}

// GET /categories/:slug
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	category, err := h.categoryService.GetCategoryBySlug(c.Param("slug"))
	if err != nil {
		utils.NotFoundResponse(c, i18n.T(lang, i18n.KeyCategoryNotFound))
		return
	}

	utils.SuccessResponse(c, category)
}

// GET /categories/:slug/artworks
func (h *CategoryHandler) GetCategoryArtworks(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	category, err := h.categoryService.GetCategoryBySlug(c.Param("slug"))
	if err != nil {
		utils.NotFoundResponse(c, i18n.T(lang, i18n.KeyCategoryNotFound))
		return
	}

	params := services.ArtworkSearchParams{
		PaginationParams: utils.GetPaginationParams(c),
		CategoryID:       &category.ID,
	}

	artworks, total, err := h.artworkService.SearchArtworks(params)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	result := utils.CreatePaginationResult(artworks, total, params.PaginationParams)
	utils.PaginatedResponse(c, result)
}

// POST /admin/categories
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	category, err := h.categoryService.CreateCategory(&req)
	if err != nil {
		if strings.Contains(err.Error(), "already exists") {
			utils.ConflictResponse(c, err.Error())
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.CreatedResponse(c, i18n.T(lang, i18n.KeyCategoryCreated), category)
}

// PUT /admin/categories/:id
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "invalid category ID", nil)
		return
	}

	var req services.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	category, err := h.categoryService.UpdateCategory(id, &req)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, i18n.T(lang, i18n.KeyCategoryNotFound))
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponseWithMessage(c, i18n.T(lang, i18n.KeyCategoryUpdated), category)
}

// DELETE /admin/categories/:id
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "invalid category ID", nil)
		return
	}

	if err := h.categoryService.DeleteCategory(id); err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, i18n.T(lang, i18n.KeyCategoryNotFound))
			return
		}
		utils.ConflictResponse(c, err.Error())
		return
	}

	utils.SuccessResponseWithMessage(c, i18n.T(lang, i18n.KeyCategoryDeleted), nil)
}
