package audit

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/food-ordering/internal/models"
)

const (
	DefaultPageSize = 50
	MaxPageSize     = 200
)

// Logger persists audit rows and serves the admin audit trail.
type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(ctx context.Context, ev Event) error {
	var meta string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			meta = string(b)
		}
	}

	return l.db.WithContext(ctx).Create(&models.AuditLog{
		ActorID:   ev.ActorID,
		ActorType: ev.ActorType,
		Action:    ev.Action,
		Entity:    ev.Entity,
		EntityID:  ev.EntityID,
		Metadata:  meta,
	}).Error
}

// Query selects a page of the trail. Zero values mean "no filter"; To is
// exclusive.
type Query struct {
	Action    string
	Entity    string
	ActorType string
	From      time.Time
	To        time.Time
	Page      int
	Limit     int
}

type Page struct {
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
	Total int64             `json:"total"`
	Logs  []models.AuditLog `json:"logs"`
}

func (q *Query) normalize() {
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.Limit <= 0 || q.Limit > MaxPageSize {
		q.Limit = DefaultPageSize
	}
}

// List returns the newest entries first.
func (l *Logger) List(ctx context.Context, q Query) (*Page, error) {
	q.normalize()

	tx := l.db.WithContext(ctx).Model(&models.AuditLog{})
	if q.Action != "" {
		tx = tx.Where("action = ?", q.Action)
	}
	if q.Entity != "" {
		tx = tx.Where("entity = ?", q.Entity)
	}
	if q.ActorType != "" {
		tx = tx.Where("actor_type = ?", q.ActorType)
	}
	if !q.From.IsZero() {
		tx = tx.Where("created_at >= ?", q.From)
	}
	if !q.To.IsZero() {
		tx = tx.Where("created_at < ?", q.To)
	}

	out := &Page{Page: q.Page, Limit: q.Limit, Logs: []models.AuditLog{}}
	if err := tx.Count(&out.Total).Error; err != nil {
		return nil, err
	}

	err := tx.
		Order("created_at DESC, id DESC").
		Limit(q.Limit).
		Offset((q.Page - 1) * q.Limit).
		Find(&out.Logs).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
