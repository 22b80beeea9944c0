package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/campuslink/community-service/internal/api/dto"
	"github.com/campuslink/community-service/internal/service"
)

// CommentsHandler exposes comment endpoints nested under posts.
type CommentsHandler struct {
	comments *service.CommentService
	posts    *service.PostService
}

// NewCommentsHandler constructs handler.
func NewCommentsHandler(comments *service.CommentService, posts *service.PostService) *CommentsHandler {
	return &CommentsHandler{comments: comments, posts: posts}
}

// List handles GET /api/v1/posts/:id/comments.
func (h *CommentsHandler) List(c *fiber.Ctx) error {
	postID, err := parsePostID(c)
	if err != nil {
		return err
	}
	post, err := h.posts.GetByPublicID(c.Context(), optionalActor(c), postID)
	if err != nil {
		return err
	}

	page, pageSize, offset := pageParams(c)
	comments, total, err := h.comments.List(c.Context(), post.ID, pageSize, offset)
	if err != nil {
		return err
	}
	return c.JSON(dto.OK("comments", dto.NewPage(dto.NewCommentResponses(comments), page, pageSize, total)))
}

// Create handles POST /api/v1/posts/:id/comments.
func (h *CommentsHandler) Create(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	postID, err := parsePostID(c)
	if err != nil {
		return err
	}
	post, err := h.posts.GetByPublicID(c.Context(), actor, postID)
	if err != nil {
		return err
	}

	var req dto.CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	comment, err := h.comments.Add(c.Context(), actor, post.ID, req.Content)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.OK("comment added", dto.NewCommentResponse(comment)))
}

// Delete handles DELETE /api/v1/comments/:commentId.
func (h *CommentsHandler) Delete(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	commentID, err := parseID(c, "commentId")
	if err != nil {
		return err
	}
	if err := h.comments.Delete(c.Context(), actor, commentID); err != nil {
		return err
	}
	return c.JSON(dto.OK("comment deleted", nil))
}
