// Package testutil builds throwaway databases and fixtures for package tests.
package testutil

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	dbpkg "github.com/BruksfildServices01/food-ordering/internal/db"
	"github.com/BruksfildServices01/food-ordering/internal/models"
)

// NewDB returns a migrated in-memory sqlite database private to the test.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := dbpkg.Open("sqlite", dsn)
	require.NoError(t, err)
	require.NoError(t, dbpkg.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func HashPassword(t *testing.T, plain string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func CreateUser(t *testing.T, db *gorm.DB, username, password string) *models.User {
	t.Helper()
	u := &models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: HashPassword(t, password),
		FullName:     "Test " + username,
		IsActive:     true,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func CreateAdmin(t *testing.T, db *gorm.DB, username, password, role string) *models.Admin {
	t.Helper()
	a := &models.Admin{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: HashPassword(t, password),
		FullName:     "Admin " + username,
		Role:         role,
		IsActive:     true,
	}
	require.NoError(t, db.Create(a).Error)
	return a
}

func CreateCategory(t *testing.T, db *gorm.DB, name string, order int) *models.Category {
	t.Helper()
	c := &models.Category{Name: name, IsActive: true, DisplayOrder: order}
	require.NoError(t, db.Create(c).Error)
	return c
}

func CreateMenuItem(t *testing.T, db *gorm.DB, categoryID uint, name, price string, available bool) *models.MenuItem {
	t.Helper()
	m := &models.MenuItem{
		CategoryID:      categoryID,
		Name:            name,
		Price:           decimal.RequireFromString(price),
		IsAvailable:     available,
		PreparationTime: 15,
	}
	require.NoError(t, db.Create(m).Error)
	return m
}

func CreateDeliveredOrder(t *testing.T, db *gorm.DB, userID, itemID uint, number string) *models.Order {
	t.Helper()
	o := &models.Order{
		UserID:        userID,
		OrderNumber:   number,
		TotalAmount:   decimal.RequireFromString("10.00"),
		Status:        "delivered",
		PaymentMethod: "cash",
		PaymentStatus: "pending",
		Items: []models.OrderItem{{
			MenuItemID: itemID,
			Quantity:   1,
			Price:      decimal.RequireFromString("10.00"),
			Subtotal:   decimal.RequireFromString("10.00"),
		}},
	}
	require.NoError(t, db.Create(o).Error)
	return o
}
