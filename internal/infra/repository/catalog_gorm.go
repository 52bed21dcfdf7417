package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/food-ordering/internal/domain/catalog"
	"github.com/BruksfildServices01/food-ordering/internal/dto"
	"github.com/BruksfildServices01/food-ordering/internal/models"
)

type CatalogGormRepository struct {
	db *gorm.DB
}

func NewCatalogGormRepository(db *gorm.DB) *CatalogGormRepository {
	return &CatalogGormRepository{db: db}
}

var _ domain.Repository = (*CatalogGormRepository)(nil)

func (r *CatalogGormRepository) Transaction(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&CatalogGormRepository{db: tx})
	})
}

// --------------------------------------------------
// Category
// --------------------------------------------------

func (r *CatalogGormRepository) ListActiveCategories(
	ctx context.Context,
) ([]models.Category, error) {

	var cats []models.Category
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("display_order, name").
		Find(&cats).Error; err != nil {
		return nil, err
	}
	return cats, nil
}

func (r *CatalogGormRepository) ListCategoriesWithCounts(
	ctx context.Context,
) ([]dto.CategoryAdminDTO, error) {

	var rows []dto.CategoryAdminDTO
	if err := r.db.WithContext(ctx).
		Table("categories c").
		Select(`c.id, c.name, c.description, c.image_url, c.is_active,
			c.display_order, c.created_at, c.updated_at,
			(SELECT COUNT(*) FROM menu_items m WHERE m.category_id = c.id) AS item_count`).
		Order("c.display_order, c.name").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *CatalogGormRepository) GetCategory(
	ctx context.Context,
	id uint,
) (*models.Category, error) {

	var c models.Category
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CatalogGormRepository) CreateCategory(
	ctx context.Context,
	c *models.Category,
) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CatalogGormRepository) SaveCategory(
	ctx context.Context,
	c *models.Category,
) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *CatalogGormRepository) CountItemsInCategory(
	ctx context.Context,
	categoryID uint,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.MenuItem{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *CatalogGormRepository) DeleteCategory(
	ctx context.Context,
	id uint,
) error {
	res := r.db.WithContext(ctx).Delete(&models.Category{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// --------------------------------------------------
// Menu item
// --------------------------------------------------

func (r *CatalogGormRepository) menuQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("menu_items m").
		Select(`m.id, m.category_id, c.name AS category_name, m.name, m.description,
			m.price, m.image_url, m.is_available, m.is_featured, m.preparation_time,
			m.created_at, m.updated_at,
			COALESCE(r.average_rating, 0) AS average_rating,
			COALESCE(r.total_ratings, 0) AS total_ratings`).
		Joins("JOIN categories c ON c.id = m.category_id").
		Joins("LEFT JOIN menu_item_ratings r ON r.menu_item_id = m.id")
}

func (r *CatalogGormRepository) ListMenu(
	ctx context.Context,
	f domain.MenuFilter,
) ([]dto.MenuItemDTO, error) {

	q := r.menuQuery(ctx)

	if f.CategoryID != nil {
		q = q.Where("m.category_id = ?", *f.CategoryID)
	}
	if f.Available != nil {
		q = q.Where("m.is_available = ?", *f.Available)
	}
	if f.FeaturedOnly {
		q = q.Where("m.is_featured = ?", true)
	}

	var rows []dto.MenuItemDTO
	if err := q.Order("c.display_order, m.name").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *CatalogGormRepository) GetMenuItemDetail(
	ctx context.Context,
	id uint,
) (*dto.MenuItemDTO, error) {

	var rows []dto.MenuItemDTO
	if err := r.menuQuery(ctx).
		Where("m.id = ?", id).
		Limit(1).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &rows[0], nil
}

func (r *CatalogGormRepository) ListRecentReviews(
	ctx context.Context,
	menuItemID uint,
	limit int,
) ([]dto.ReviewDTO, error) {
	return approvedReviews(r.db.WithContext(ctx), menuItemID, limit)
}

func (r *CatalogGormRepository) GetMenuItem(
	ctx context.Context,
	id uint,
) (*models.MenuItem, error) {

	var m models.MenuItem
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *CatalogGormRepository) CreateMenuItem(
	ctx context.Context,
	m *models.MenuItem,
) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(m).Error
}

func (r *CatalogGormRepository) SaveMenuItem(
	ctx context.Context,
	m *models.MenuItem,
) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(m).Error
}

func (r *CatalogGormRepository) CountOrderLines(
	ctx context.Context,
	menuItemID uint,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.OrderItem{}).
		Where("menu_item_id = ?", menuItemID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *CatalogGormRepository) DeleteMenuItem(
	ctx context.Context,
	id uint,
) error {
	res := r.db.WithContext(ctx).Delete(&models.MenuItem{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// --------------------------------------------------
// Rating rollup
// --------------------------------------------------

func (r *CatalogGormRepository) CreateRating(
	ctx context.Context,
	rating *models.MenuItemRating,
) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(rating).Error
}

func (r *CatalogGormRepository) DeleteRating(
	ctx context.Context,
	menuItemID uint,
) error {
	return r.db.WithContext(ctx).
		Where("menu_item_id = ?", menuItemID).
		Delete(&models.MenuItemRating{}).Error
}
