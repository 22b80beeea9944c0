package service

import (
	"context"
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/campuslink/community-service/internal/domain"
	"github.com/campuslink/community-service/internal/repository"
	apperrors "github.com/campuslink/community-service/pkg/util"
)

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// CategoryService coordinates category management.
type CategoryService struct {
	categories repository.CategoryRepository
}

// NewCategoryService constructs the service.
func NewCategoryService(categories repository.CategoryRepository) *CategoryService {
	return &CategoryService{categories: categories}
}

// List returns all categories.
func (s *CategoryService) List(ctx context.Context) ([]domain.Category, error) {
	return s.categories.List(ctx)
}

// Create adds a category; the slug is derived from the name.
func (s *CategoryService) Create(ctx context.Context, name, description string) (*domain.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.NewValidationError("name required", nil)
	}
	slug := Slugify(name)
	if _, err := s.categories.GetBySlug(ctx, slug); err == nil {
		return nil, apperrors.NewConflict("category already exists", map[string]any{"slug": slug})
	} else if err != pgx.ErrNoRows {
		return nil, err
	}

	category := &domain.Category{Name: name, Slug: slug, Description: description}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// Update renames a category.
func (s *CategoryService) Update(ctx context.Context, id int64, name, description string) (*domain.Category, error) {
	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("category", nil)
		}
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.NewValidationError("name required", nil)
	}

	category.Name = name
	category.Slug = Slugify(name)
	category.Description = description
	if err := s.categories.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete removes a category. Posts keep their category_id via FK restriction,
// so deletion fails while posts still reference it.
func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	if err := s.categories.Delete(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("category", nil)
		}
		return err
	}
	return nil
}

// Slugify lowercases a name and collapses non-alphanumerics to hyphens.
func Slugify(name string) string {
	slug := slugPattern.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}
