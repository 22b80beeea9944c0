package handlers

import (
	"context"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/campuslink/community-service/internal/api/dto"
	"github.com/campuslink/community-service/internal/domain"
	"github.com/campuslink/community-service/internal/repository"
	"github.com/campuslink/community-service/internal/service"
)

// PostsHandler exposes the public content endpoints.
type PostsHandler struct {
	posts *service.PostService
}

// NewPostsHandler constructs handler.
func NewPostsHandler(posts *service.PostService) *PostsHandler {
	return &PostsHandler{posts: posts}
}

// List handles GET /api/v1/posts.
func (h *PostsHandler) List(c *fiber.Ctx) error {
	page, pageSize, offset := pageParams(c)

	filter := repository.PostFilter{Limit: pageSize, Offset: offset}
	if categoryID := int64(parseInt(c.Query("categoryId"), 0)); categoryID > 0 {
		filter.CategoryID = &categoryID
	}
	if search := c.Query("search"); search != "" {
		filter.SearchTerm = &search
	}

	posts, total, err := h.posts.List(c.Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(dto.OK("posts", dto.NewPage(dto.NewPostResponses(posts), page, pageSize, total)))
}

// Get handles GET /api/v1/posts/:id.
func (h *PostsHandler) Get(c *fiber.Ctx) error {
	id, err := parsePostID(c)
	if err != nil {
		return err
	}
	post, err := h.posts.GetByPublicID(c.Context(), optionalActor(c), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.OK("post", dto.NewPostResponse(post)))
}

// Create handles POST /api/v1/posts.
func (h *PostsHandler) Create(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	var req dto.CreatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	post, err := h.posts.Create(c.Context(), actor, service.PostCreateInput{
		CategoryID: req.CategoryID,
		Title:      req.Title,
		Content:    req.Content,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.OK("post created", dto.NewPostResponse(post)))
}

// Update handles PUT /api/v1/posts/:id.
func (h *PostsHandler) Update(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	id, err := parsePostID(c)
	if err != nil {
		return err
	}
	var req dto.UpdatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	post, err := h.posts.Update(c.Context(), actor, id, service.PostUpdateInput{
		CategoryID: req.CategoryID,
		Title:      req.Title,
		Content:    req.Content,
	})
	if err != nil {
		return err
	}
	return c.JSON(dto.OK("post updated", dto.NewPostResponse(post)))
}

// Delete handles DELETE /api/v1/posts/:id.
func (h *PostsHandler) Delete(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	id, err := parsePostID(c)
	if err != nil {
		return err
	}
	if err := h.posts.Delete(c.Context(), actor, id); err != nil {
		return err
	}
	return c.JSON(dto.OK("post deleted", nil))
}

// Like handles POST /api/v1/posts/:id/like.
func (h *PostsHandler) Like(c *fiber.Ctx) error {
	return h.react(c, h.posts.Like, "post liked")
}

// Unlike handles DELETE /api/v1/posts/:id/like.
func (h *PostsHandler) Unlike(c *fiber.Ctx) error {
	return h.react(c, h.posts.Unlike, "like removed")
}

// Bookmark handles POST /api/v1/posts/:id/bookmark.
func (h *PostsHandler) Bookmark(c *fiber.Ctx) error {
	return h.react(c, h.posts.Bookmark, "post bookmarked")
}

// Unbookmark handles DELETE /api/v1/posts/:id/bookmark.
func (h *PostsHandler) Unbookmark(c *fiber.Ctx) error {
	return h.react(c, h.posts.Unbookmark, "bookmark removed")
}

// Bookmarks handles GET /api/v1/bookmarks.
func (h *PostsHandler) Bookmarks(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	page, pageSize, offset := pageParams(c)

	posts, total, err := h.posts.ListBookmarks(c.Context(), actor, pageSize, offset)
	if err != nil {
		return err
	}
	return c.JSON(dto.OK("bookmarks", dto.NewPage(dto.NewPostResponses(posts), page, pageSize, total)))
}

func (h *PostsHandler) react(c *fiber.Ctx, op func(ctx context.Context, actor *domain.User, id uuid.UUID) error, message string) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	id, err := parsePostID(c)
	if err != nil {
		return err
	}
	if err := op(c.Context(), actor, id); err != nil {
		return err
	}
	return c.JSON(dto.OK(message, nil))
}
