package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/campuslink/community-service/internal/api/dto"
	"github.com/campuslink/community-service/internal/domain"
	"github.com/campuslink/community-service/internal/repository"
	"github.com/campuslink/community-service/internal/service"
)

// AdminHandler exposes the console API: member management, post moderation,
// system configuration and the dashboard.
type AdminHandler struct {
	admin *service.AdminService
	posts *service.PostService
}

// NewAdminHandler constructs handler.
func NewAdminHandler(admin *service.AdminService, posts *service.PostService) *AdminHandler {
	return &AdminHandler{admin: admin, posts: posts}
}

// ListUsers handles GET /api/v1/admin/users.
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	page, pageSize, offset := pageParams(c)

	filter := repository.UserFilter{Limit: pageSize, Offset: offset}
	if roleStr := c.Query("role"); roleStr != "" {
		role := domain.Role(roleStr)
		filter.Role = &role
	}
	if statusStr := c.Query("status"); statusStr != "" {
		status := domain.UserStatus(statusStr)
		filter.Status = &status
	}
	if search := c.Query("search"); search != "" {
		filter.SearchTerm = &search
	}

	users, total, err := h.admin.ListUsers(c.Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(dto.OK("users", dto.NewPage(dto.NewUserResponses(users), page, pageSize, total)))
}

// SetUserStatus handles PUT /api/v1/admin/users/:userId/status.
func (h *AdminHandler) SetUserStatus(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	userID, err := parseID(c, "userId")
	if err != nil {
		return err
	}
	var req dto.SetUserStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if err := h.admin.SetUserStatus(c.Context(), actor, userID, req.Status); err != nil {
		return err
	}
	return c.JSON(dto.OK("user status updated", nil))
}

// SetUserRole handles PUT /api/v1/admin/users/:userId/role.
func (h *AdminHandler) SetUserRole(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	userID, err := parseID(c, "userId")
	if err != nil {
		return err
	}
	var req dto.SetUserRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if err := h.admin.SetUserRole(c.Context(), actor, userID, domain.Role(req.RoleName)); err != nil {
		return err
	}
	return c.JSON(dto.OK("user role updated", nil))
}

// SetPostStatus handles PUT /api/v1/admin/posts/:id/status.
func (h *AdminHandler) SetPostStatus(c *fiber.Ctx) error {
	id, err := parsePostID(c)
	if err != nil {
		return err
	}
	var req dto.SetPostStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if err := h.posts.SetStatus(c.Context(), id, req.Status); err != nil {
		return err
	}
	return c.JSON(dto.OK("post status updated", nil))
}

// SetScamScore handles PUT /api/v1/admin/posts/:id/scam-score.
func (h *AdminHandler) SetScamScore(c *fiber.Ctx) error {
	id, err := parsePostID(c)
	if err != nil {
		return err
	}
	var req dto.SetScamScoreRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if err := h.posts.SetScamScore(c.Context(), id, req.Score); err != nil {
		return err
	}
	return c.JSON(dto.OK("scam score updated", nil))
}

// Statistics handles GET /api/v1/admin/statistics.
func (h *AdminHandler) Statistics(c *fiber.Ctx) error {
	stats, err := h.admin.Statistics(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(dto.OK("statistics", dto.NewStatisticsResponse(stats)))
}

// ListConfig handles GET /api/v1/admin/config.
func (h *AdminHandler) ListConfig(c *fiber.Ctx) error {
	entries, err := h.admin.ListConfig(c.Context())
	if err != nil {
		return err
	}
	out := make([]dto.ConfigResponse, 0, len(entries))
	for i := range entries {
		out = append(out, dto.NewConfigResponse(&entries[i]))
	}
	return c.JSON(dto.OK("config", out))
}

// GetConfig handles GET /api/v1/admin/config/:key.
func (h *AdminHandler) GetConfig(c *fiber.Ctx) error {
	entry, err := h.admin.GetConfig(c.Context(), c.Params("key"))
	if err != nil {
		return err
	}
	return c.JSON(dto.OK("config entry", dto.NewConfigResponse(entry)))
}

// SetConfig handles PUT /api/v1/admin/config.
func (h *AdminHandler) SetConfig(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	var req dto.ConfigRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	entry, err := h.admin.SetConfig(c.Context(), actor, req.Key, req.Value)
	if err != nil {
		return err
	}
	return c.JSON(dto.OK("config saved", dto.NewConfigResponse(entry)))
}
