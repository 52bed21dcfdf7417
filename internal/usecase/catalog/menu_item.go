package catalog

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/food-ordering/internal/audit"
	domain "github.com/BruksfildServices01/food-ordering/internal/domain/catalog"
	"github.com/BruksfildServices01/food-ordering/internal/dto"
	"github.com/BruksfildServices01/food-ordering/internal/httperr"
	"github.com/BruksfildServices01/food-ordering/internal/models"
)

const (
	defaultPreparationTime = 15
	detailReviewLimit      = 10
)

var (
	ErrMenuItemNotFound = httperr.NotFoundf("menu_item_not_found", "Menu item not found")
	errInvalidCategory  = httperr.Validation("invalid_category", "Invalid category")
	errNegativePrice    = httperr.Validation("invalid_price", "Price must not be negative")
)

// ======================================================
// INPUT
// ======================================================

type MenuItemInput struct {
	CategoryID      *uint            `json:"category_id"`
	Name            *string          `json:"name"`
	Description     *string          `json:"description"`
	Price           *decimal.Decimal `json:"price"`
	ImageURL        *string          `json:"image_url"`
	IsAvailable     *bool            `json:"is_available"`
	IsFeatured      *bool            `json:"is_featured"`
	PreparationTime *int             `json:"preparation_time"`
}

func (in MenuItemInput) empty() bool {
	return in.CategoryID == nil && in.Name == nil && in.Description == nil &&
		in.Price == nil && in.ImageURL == nil && in.IsAvailable == nil &&
		in.IsFeatured == nil && in.PreparationTime == nil
}

type MenuItemDetail struct {
	dto.MenuItemDTO
	Reviews []dto.ReviewDTO `json:"reviews"`
}

// ======================================================
// SERVICE
// ======================================================

type MenuItems struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewMenuItems(repo domain.Repository, audit *audit.Dispatcher) *MenuItems {
	return &MenuItems{repo: repo, audit: audit}
}

// ListPublic returns available items only, whatever the filter says about
// availability.
func (s *MenuItems) ListPublic(ctx context.Context, f domain.MenuFilter) ([]dto.MenuItemDTO, error) {
	available := true
	f.Available = &available
	return s.repo.ListMenu(ctx, f)
}

func (s *MenuItems) ListAdmin(ctx context.Context, f domain.MenuFilter) ([]dto.MenuItemDTO, error) {
	return s.repo.ListMenu(ctx, f)
}

func (s *MenuItems) Detail(ctx context.Context, id uint) (*MenuItemDetail, error) {
	item, err := s.repo.GetMenuItemDetail(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMenuItemNotFound
	}
	if err != nil {
		return nil, err
	}

	reviews, err := s.repo.ListRecentReviews(ctx, id, detailReviewLimit)
	if err != nil {
		return nil, err
	}
	if reviews == nil {
		reviews = []dto.ReviewDTO{}
	}

	return &MenuItemDetail{MenuItemDTO: *item, Reviews: reviews}, nil
}

func (s *MenuItems) Get(ctx context.Context, id uint) (*models.MenuItem, error) {
	m, err := s.repo.GetMenuItem(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMenuItemNotFound
	}
	return m, err
}

// Create inserts the item and its zero rating rollup together.
func (s *MenuItems) Create(ctx context.Context, adminID uint, in MenuItemInput) (*models.MenuItem, error) {
	switch {
	case in.Name == nil || strings.TrimSpace(*in.Name) == "":
		return nil, httperr.Validation("item_name_required", "Item name is required")
	case in.CategoryID == nil || *in.CategoryID == 0:
		return nil, httperr.Validation("category_required", "Category is required")
	case in.Price == nil:
		return nil, httperr.Validation("price_required", "Price is required")
	case in.Price.IsNegative():
		return nil, errNegativePrice
	}

	m := &models.MenuItem{
		IsAvailable:     true,
		PreparationTime: defaultPreparationTime,
	}
	applyItem(m, in)

	err := s.repo.Transaction(ctx, func(tx domain.Repository) error {
		if err := categoryExists(ctx, tx, m.CategoryID); err != nil {
			return err
		}
		if err := tx.CreateMenuItem(ctx, m); err != nil {
			return err
		}
		return tx.CreateRating(ctx, &models.MenuItemRating{
			MenuItemID:    m.ID,
			AverageRating: decimal.Zero,
		})
	})
	if err != nil {
		return nil, err
	}

	s.record(adminID, "menu_item_created", m.ID)
	return m, nil
}

func (s *MenuItems) Update(ctx context.Context, adminID, id uint, in MenuItemInput) (*models.MenuItem, error) {
	m, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.empty() {
		return nil, errNoFields
	}
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return nil, httperr.Validation("item_name_required", "Item name is required")
	}
	if in.Price != nil && in.Price.IsNegative() {
		return nil, errNegativePrice
	}
	if in.CategoryID != nil {
		if err := categoryExists(ctx, s.repo, *in.CategoryID); err != nil {
			return nil, err
		}
	}

	applyItem(m, in)

	if err := s.repo.SaveMenuItem(ctx, m); err != nil {
		return nil, err
	}

	s.record(adminID, "menu_item_updated", m.ID)
	return m, nil
}

// Delete removes the item with its rating rollup. Items already referenced by
// order lines are kept so order history stays intact.
func (s *MenuItems) Delete(ctx context.Context, adminID, id uint) error {
	err := s.repo.Transaction(ctx, func(tx domain.Repository) error {
		if _, err := tx.GetMenuItem(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMenuItemNotFound
			}
			return err
		}

		n, err := tx.CountOrderLines(ctx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return httperr.Conflict("menu_item_in_use", "Menu item is referenced by existing orders. Mark it unavailable instead.")
		}

		if err := tx.DeleteRating(ctx, id); err != nil {
			return err
		}
		return tx.DeleteMenuItem(ctx, id)
	})
	if err != nil {
		return err
	}

	s.record(adminID, "menu_item_deleted", id)
	return nil
}

func (s *MenuItems) SetImage(ctx context.Context, adminID, id uint, url string) (*models.MenuItem, error) {
	return s.Update(ctx, adminID, id, MenuItemInput{ImageURL: &url})
}

func (s *MenuItems) record(adminID uint, action string, id uint) {
	s.audit.Dispatch(audit.Event{
		ActorID:   &adminID,
		ActorType: "admin",
		Action:    action,
		Entity:    "menu_item",
		EntityID:  &id,
	})
}

func categoryExists(ctx context.Context, repo domain.Repository, id uint) error {
	_, err := repo.GetCategory(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errInvalidCategory
	}
	return err
}

func applyItem(m *models.MenuItem, in MenuItemInput) {
	if in.CategoryID != nil {
		m.CategoryID = *in.CategoryID
		m.Category = models.Category{}
	}
	if in.Name != nil {
		m.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		m.Description = *in.Description
	}
	if in.Price != nil {
		m.Price = in.Price.Round(2)
	}
	if in.ImageURL != nil {
		m.ImageURL = *in.ImageURL
	}
	if in.IsAvailable != nil {
		m.IsAvailable = *in.IsAvailable
	}
	if in.IsFeatured != nil {
		m.IsFeatured = *in.IsFeatured
	}
	if in.PreparationTime != nil {
		m.PreparationTime = *in.PreparationTime
	}
}
