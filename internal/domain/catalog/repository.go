package catalog

import (
	"context"

	"github.com/BruksfildServices01/food-ordering/internal/dto"
	"github.com/BruksfildServices01/food-ordering/internal/models"
)

// MenuFilter narrows menu listings. Nil pointers mean "no filter".
type MenuFilter struct {
	CategoryID   *uint
	Available    *bool
	FeaturedOnly bool
}

type Repository interface {
	Transaction(ctx context.Context, fn func(tx Repository) error) error

	// -------- Category --------
	ListActiveCategories(ctx context.Context) ([]models.Category, error)
	ListCategoriesWithCounts(ctx context.Context) ([]dto.CategoryAdminDTO, error)
	GetCategory(ctx context.Context, id uint) (*models.Category, error)
	CreateCategory(ctx context.Context, c *models.Category) error
	SaveCategory(ctx context.Context, c *models.Category) error
	CountItemsInCategory(ctx context.Context, categoryID uint) (int64, error)
	DeleteCategory(ctx context.Context, id uint) error

	// -------- Menu item --------
	ListMenu(ctx context.Context, f MenuFilter) ([]dto.MenuItemDTO, error)
	GetMenuItemDetail(ctx context.Context, id uint) (*dto.MenuItemDTO, error)
	ListRecentReviews(ctx context.Context, menuItemID uint, limit int) ([]dto.ReviewDTO, error)
	GetMenuItem(ctx context.Context, id uint) (*models.MenuItem, error)
	CreateMenuItem(ctx context.Context, m *models.MenuItem) error
	SaveMenuItem(ctx context.Context, m *models.MenuItem) error
	CountOrderLines(ctx context.Context, menuItemID uint) (int64, error)
	DeleteMenuItem(ctx context.Context, id uint) error

	// -------- Rating rollup --------
	CreateRating(ctx context.Context, r *models.MenuItemRating) error
	DeleteRating(ctx context.Context, menuItemID uint) error
}
