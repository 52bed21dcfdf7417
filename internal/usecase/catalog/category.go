package catalog

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/food-ordering/internal/audit"
	domain "github.com/BruksfildServices01/food-ordering/internal/domain/catalog"
	"github.com/BruksfildServices01/food-ordering/internal/dto"
	"github.com/BruksfildServices01/food-ordering/internal/httperr"
	"github.com/BruksfildServices01/food-ordering/internal/models"
)

var (
	ErrCategoryNotFound = httperr.NotFoundf("category_not_found", "Category not found")
	errNoFields         = httperr.Validation("no_fields", "No valid fields to update")
)

// ======================================================
// INPUT
// ======================================================

type CategoryInput struct {
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	ImageURL     *string `json:"image_url"`
	IsActive     *bool   `json:"is_active"`
	DisplayOrder *int    `json:"display_order"`
}

func (in CategoryInput) empty() bool {
	return in.Name == nil && in.Description == nil && in.ImageURL == nil &&
		in.IsActive == nil && in.DisplayOrder == nil
}

// ======================================================
// SERVICE
// ======================================================

type Categories struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCategories(repo domain.Repository, audit *audit.Dispatcher) *Categories {
	return &Categories{repo: repo, audit: audit}
}

func (s *Categories) ListActive(ctx context.Context) ([]models.Category, error) {
	return s.repo.ListActiveCategories(ctx)
}

func (s *Categories) ListAll(ctx context.Context) ([]dto.CategoryAdminDTO, error) {
	return s.repo.ListCategoriesWithCounts(ctx)
}

func (s *Categories) Get(ctx context.Context, id uint) (*models.Category, error) {
	c, err := s.repo.GetCategory(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCategoryNotFound
	}
	return c, err
}

func (s *Categories) Create(ctx context.Context, adminID uint, in CategoryInput) (*models.Category, error) {
	if in.Name == nil || strings.TrimSpace(*in.Name) == "" {
		return nil, httperr.Validation("category_name_required", "Category name is required")
	}

	c := &models.Category{
		Name:     strings.TrimSpace(*in.Name),
		IsActive: true,
	}
	apply(c, in)

	if err := s.repo.CreateCategory(ctx, c); err != nil {
		return nil, err
	}

	s.record(adminID, "category_created", c.ID)
	return c, nil
}

func (s *Categories) Update(ctx context.Context, adminID, id uint, in CategoryInput) (*models.Category, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.empty() {
		return nil, errNoFields
	}
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return nil, httperr.Validation("category_name_required", "Category name is required")
	}

	apply(c, in)

	if err := s.repo.SaveCategory(ctx, c); err != nil {
		return nil, err
	}

	s.record(adminID, "category_updated", c.ID)
	return c, nil
}

// Delete refuses while any menu item still points at the category.
func (s *Categories) Delete(ctx context.Context, adminID, id uint) error {
	err := s.repo.Transaction(ctx, func(tx domain.Repository) error {
		if _, err := tx.GetCategory(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCategoryNotFound
			}
			return err
		}

		n, err := tx.CountItemsInCategory(ctx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return httperr.Validation(
				"category_has_items",
				"Cannot delete category with %d menu items. Delete or move items first.", n,
			)
		}

		return tx.DeleteCategory(ctx, id)
	})
	if err != nil {
		return err
	}

	s.record(adminID, "category_deleted", id)
	return nil
}

func (s *Categories) SetImage(ctx context.Context, adminID, id uint, url string) (*models.Category, error) {
	return s.Update(ctx, adminID, id, CategoryInput{ImageURL: &url})
}

func (s *Categories) record(adminID uint, action string, id uint) {
	s.audit.Dispatch(audit.Event{
		ActorID:   &adminID,
		ActorType: "admin",
		Action:    action,
		Entity:    "category",
		EntityID:  &id,
	})
}

func apply(c *models.Category, in CategoryInput) {
	if in.Name != nil {
		c.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		c.Description = *in.Description
	}
	if in.ImageURL != nil {
		c.ImageURL = *in.ImageURL
	}
	if in.IsActive != nil {
		c.IsActive = *in.IsActive
	}
	if in.DisplayOrder != nil {
		c.DisplayOrder = *in.DisplayOrder
	}
}
