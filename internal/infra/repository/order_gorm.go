package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/food-ordering/internal/domain/order"
	"github.com/BruksfildServices01/food-ordering/internal/dto"
	"github.com/BruksfildServices01/food-ordering/internal/models"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

var _ domain.Repository = (*OrderGormRepository)(nil)

func (r *OrderGormRepository) Transaction(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&OrderGormRepository{db: tx})
	})
}

// --------------------------------------------------
// Catalog lookups
// --------------------------------------------------

func (r *OrderGormRepository) GetMenuItem(
	ctx context.Context,
	id uint,
) (*models.MenuItem, error) {

	var item models.MenuItem
	if err := r.db.WithContext(ctx).
		Select("id", "name", "price", "is_available").
		First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// --------------------------------------------------
// Order (create)
// --------------------------------------------------

// NextSequence bumps the per-day counter with a single upsert. The row stays
// locked until the surrounding transaction ends, so concurrent placements
// for the same day serialize on it.
func (r *OrderGormRepository) NextSequence(
	ctx context.Context,
	day string,
) (int64, error) {

	db := r.db.WithContext(ctx)

	if err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "day"}},
		DoUpdates: clause.Assignments(map[string]any{
			"value": gorm.Expr("order_sequences.value + 1"),
		}),
	}).Create(&models.OrderSequence{Day: day, Value: 1}).Error; err != nil {
		return 0, err
	}

	var seq models.OrderSequence
	if err := db.Where("day = ?", day).First(&seq).Error; err != nil {
		return 0, err
	}
	return seq.Value, nil
}

func (r *OrderGormRepository) CreateOrder(
	ctx context.Context,
	o *models.Order,
) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *OrderGormRepository) GetOrderNumber(
	ctx context.Context,
	id uint,
) (string, error) {

	var number string
	if err := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", id).
		Pluck("order_number", &number).Error; err != nil {
		return "", err
	}
	if number == "" {
		return "", gorm.ErrRecordNotFound
	}
	return number, nil
}

// --------------------------------------------------
// Order (state change)
// --------------------------------------------------

func (r *OrderGormRepository) GetOrder(
	ctx context.Context,
	id uint,
) (*models.Order, error) {

	var o models.Order
	if err := r.db.WithContext(ctx).First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderGormRepository) UpdateOrder(
	ctx context.Context,
	o *models.Order,
) error {
	return r.db.WithContext(ctx).
		Model(o).
		Select("status", "delivered_at", "payment_status", "updated_at").
		Updates(o).Error
}

// --------------------------------------------------
// Queries
// --------------------------------------------------

func (r *OrderGormRepository) ListForUser(
	ctx context.Context,
	userID uint,
) ([]dto.OrderListDTO, error) {

	var rows []dto.OrderListDTO
	if err := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Select(
			"id, order_number, total_amount, status, payment_method, payment_status, created_at, delivered_at",
		).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *OrderGormRepository) ListAll(
	ctx context.Context,
	status string,
) ([]dto.OrderListDTO, error) {

	q := r.db.WithContext(ctx).
		Table("orders o").
		Select(`o.id, o.order_number, o.total_amount, o.status,
			o.payment_method, o.payment_status, o.created_at, o.delivered_at,
			u.full_name AS customer_name, u.phone AS customer_phone`).
		Joins("JOIN users u ON u.id = o.user_id")

	if status != "" {
		q = q.Where("o.status = ?", status)
	}

	var rows []dto.OrderListDTO
	if err := q.Order("o.created_at DESC, o.id DESC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *OrderGormRepository) GetDetail(
	ctx context.Context,
	id uint,
) (*dto.OrderDetailDTO, error) {

	var rows []dto.OrderDetailDTO
	if err := r.db.WithContext(ctx).
		Table("orders o").
		Select(`o.id, o.user_id, o.order_number, o.total_amount, o.status,
			o.payment_method, o.payment_status, o.delivery_address,
			o.special_instructions, o.created_at, o.delivered_at,
			u.full_name AS customer_name, u.phone AS customer_phone,
			u.email AS customer_email`).
		Joins("JOIN users u ON u.id = o.user_id").
		Where("o.id = ?", id).
		Limit(1).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &rows[0], nil
}

func (r *OrderGormRepository) ListItems(
	ctx context.Context,
	orderID uint,
) ([]dto.OrderItemDTO, error) {

	var rows []dto.OrderItemDTO
	if err := r.db.WithContext(ctx).
		Table("order_items oi").
		Select(`oi.id, oi.menu_item_id, oi.quantity, oi.price, oi.subtotal,
			oi.special_request, m.name AS item_name,
			m.description AS item_description, m.image_url`).
		Joins("JOIN menu_items m ON m.id = oi.menu_item_id").
		Where("oi.order_id = ?", orderID).
		Order("oi.id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
