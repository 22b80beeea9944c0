package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/campuslink/community-service/internal/auth"
	"github.com/campuslink/community-service/internal/domain"
)

const maxPageSize = 100

func parseInt(val string, fallback int) int {
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

// pageParams reads page/pageSize query values and derives the offset.
func pageParams(c *fiber.Ctx) (page, pageSize, offset int) {
	page = parseInt(c.Query("page"), 1)
	if page < 1 {
		page = 1
	}
	pageSize = parseInt(c.Query("pageSize"), 20)
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize, (page - 1) * pageSize
}

// requireActor returns the authenticated user or an unauthorized error.
func requireActor(c *fiber.Ctx) (*domain.User, error) {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "authentication required")
	}
	return principal.User, nil
}

// optionalActor returns the authenticated user if present.
func optionalActor(c *fiber.Ctx) *domain.User {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal == nil {
		return nil
	}
	return principal.User
}

func parsePostID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "invalid post id")
	}
	return id, nil
}

func parseID(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}
