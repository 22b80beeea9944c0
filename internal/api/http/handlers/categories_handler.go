package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/campuslink/community-service/internal/api/dto"
	"github.com/campuslink/community-service/internal/service"
)

// CategoriesHandler exposes category endpoints; mutations are console-only
// and mounted behind the staff role gate.
type CategoriesHandler struct {
	categories *service.CategoryService
}

// NewCategoriesHandler constructs handler.
func NewCategoriesHandler(categories *service.CategoryService) *CategoriesHandler {
	return &CategoriesHandler{categories: categories}
}

// List handles GET /api/v1/categories.
func (h *CategoriesHandler) List(c *fiber.Ctx) error {
	categories, err := h.categories.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(dto.OK("categories", dto.NewCategoryResponses(categories)))
}

// Create handles POST /api/v1/admin/categories.
func (h *CategoriesHandler) Create(c *fiber.Ctx) error {
	var req dto.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	category, err := h.categories.Create(c.Context(), req.Name, req.Description)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.OK("category created", dto.NewCategoryResponse(category)))
}

// Update handles PUT /api/v1/admin/categories/:categoryId.
func (h *CategoriesHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "categoryId")
	if err != nil {
		return err
	}
	var req dto.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	category, err := h.categories.Update(c.Context(), id, req.Name, req.Description)
	if err != nil {
		return err
	}
	return c.JSON(dto.OK("category updated", dto.NewCategoryResponse(category)))
}

// Delete handles DELETE /api/v1/admin/categories/:categoryId.
func (h *CategoriesHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "categoryId")
	if err != nil {
		return err
	}
	if err := h.categories.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(dto.OK("category deleted", nil))
}
