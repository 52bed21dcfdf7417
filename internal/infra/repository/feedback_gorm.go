package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/food-ordering/internal/domain/feedback"
	"github.com/BruksfildServices01/food-ordering/internal/dto"
	"github.com/BruksfildServices01/food-ordering/internal/models"
)

type FeedbackGormRepository struct {
	db *gorm.DB
}

func NewFeedbackGormRepository(db *gorm.DB) *FeedbackGormRepository {
	return &FeedbackGormRepository{db: db}
}

var _ domain.Repository = (*FeedbackGormRepository)(nil)

func (r *FeedbackGormRepository) Transaction(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&FeedbackGormRepository{db: tx})
	})
}

// --------------------------------------------------
// Lookups
// --------------------------------------------------

func (r *FeedbackGormRepository) GetOrder(
	ctx context.Context,
	id uint,
) (*models.Order, error) {

	var o models.Order
	if err := r.db.WithContext(ctx).
		Select("id", "user_id", "status").
		First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *FeedbackGormRepository) MenuItemExists(
	ctx context.Context,
	id uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.MenuItem{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *FeedbackGormRepository) ExistsForOrder(
	ctx context.Context,
	userID uint,
	orderID uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Feedback{}).
		Where("user_id = ? AND order_id = ?", userID, orderID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// --------------------------------------------------
// Feedback
// --------------------------------------------------

func (r *FeedbackGormRepository) Create(
	ctx context.Context,
	f *models.Feedback,
) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(f).Error
}

func (r *FeedbackGormRepository) Get(
	ctx context.Context,
	id uint,
) (*models.Feedback, error) {

	var f models.Feedback
	if err := r.db.WithContext(ctx).First(&f, id).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *FeedbackGormRepository) SetApproved(
	ctx context.Context,
	id uint,
	approved bool,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Feedback{}).
		Where("id = ?", id).
		Update("is_approved", approved).Error
}

func (r *FeedbackGormRepository) Delete(
	ctx context.Context,
	id uint,
) error {
	return r.db.WithContext(ctx).Delete(&models.Feedback{}, id).Error
}

// --------------------------------------------------
// Rating rollup
// --------------------------------------------------

func (r *FeedbackGormRepository) ApprovedRatings(
	ctx context.Context,
	menuItemID uint,
) ([]int, error) {

	var ratings []int
	if err := r.db.WithContext(ctx).
		Model(&models.Feedback{}).
		Where("menu_item_id = ? AND is_approved = ?", menuItemID, true).
		Pluck("rating", &ratings).Error; err != nil {
		return nil, err
	}
	return ratings, nil
}

func (r *FeedbackGormRepository) SaveSummary(
	ctx context.Context,
	s *models.MenuItemRating,
) error {
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "menu_item_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"total_ratings", "average_rating",
				"rating_1_count", "rating_2_count", "rating_3_count",
				"rating_4_count", "rating_5_count", "updated_at",
			}),
		}).
		Create(s).Error
}

// GetSummary returns nil without error when the item has no rollup row.
func (r *FeedbackGormRepository) GetSummary(
	ctx context.Context,
	menuItemID uint,
) (*models.MenuItemRating, error) {

	var s models.MenuItemRating
	err := r.db.WithContext(ctx).
		Where("menu_item_id = ?", menuItemID).
		First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// --------------------------------------------------
// Queries
// --------------------------------------------------

func (r *FeedbackGormRepository) ListApprovedForItem(
	ctx context.Context,
	menuItemID uint,
	limit int,
) ([]dto.ReviewDTO, error) {
	return approvedReviews(r.db.WithContext(ctx), menuItemID, limit)
}

func (r *FeedbackGormRepository) ListForUser(
	ctx context.Context,
	userID uint,
) ([]dto.FeedbackListDTO, error) {

	var rows []dto.FeedbackListDTO
	if err := r.db.WithContext(ctx).
		Table("feedback f").
		Select(`f.id, f.rating, f.comment, f.is_approved, f.created_at,
			o.order_number, m.name AS menu_item_name`).
		Joins("JOIN orders o ON o.id = f.order_id").
		Joins("LEFT JOIN menu_items m ON m.id = f.menu_item_id").
		Where("f.user_id = ?", userID).
		Order("f.created_at DESC, f.id DESC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *FeedbackGormRepository) ListAll(
	ctx context.Context,
	approvedOnly bool,
) ([]dto.FeedbackListDTO, error) {

	q := r.db.WithContext(ctx).
		Table("feedback f").
		Select(`f.id, f.rating, f.comment, f.is_approved, f.created_at,
			u.full_name AS customer_name, u.email AS customer_email,
			o.order_number, m.name AS menu_item_name`).
		Joins("JOIN users u ON u.id = f.user_id").
		Joins("JOIN orders o ON o.id = f.order_id").
		Joins("LEFT JOIN menu_items m ON m.id = f.menu_item_id")

	if approvedOnly {
		q = q.Where("f.is_approved = ?", true)
	}

	var rows []dto.FeedbackListDTO
	if err := q.Order("f.created_at DESC, f.id DESC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *FeedbackGormRepository) ListEligibleOrders(
	ctx context.Context,
	userID uint,
) ([]dto.EligibleOrderDTO, error) {

	var rows []dto.EligibleOrderDTO
	if err := r.db.WithContext(ctx).
		Table("orders o").
		Select("o.id, o.order_number, o.total_amount, o.delivered_at").
		Joins("LEFT JOIN feedback f ON f.order_id = o.id AND f.user_id = ?", userID).
		Where("o.user_id = ? AND o.status = ? AND f.id IS NULL", userID, "delivered").
		Order("o.delivered_at DESC, o.id DESC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func approvedReviews(db *gorm.DB, menuItemID uint, limit int) ([]dto.ReviewDTO, error) {
	var rows []dto.ReviewDTO
	if err := db.
		Table("feedback f").
		Select("f.id, f.rating, f.comment, f.created_at, u.full_name AS customer_name").
		Joins("JOIN users u ON u.id = f.user_id").
		Where("f.menu_item_id = ? AND f.is_approved = ?", menuItemID, true).
		Order("f.created_at DESC, f.id DESC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
