package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/food-ordering/internal/auth"
	dbpkg "github.com/BruksfildServices01/food-ordering/internal/db"
	"github.com/BruksfildServices01/food-ordering/internal/logging"
)

const healthTimeout = 2 * time.Second

type HealthHandler struct {
	db       *gorm.DB
	sessions auth.SessionStore
}

func NewHealthHandler(db *gorm.DB, sessions auth.SessionStore) *HealthHandler {
	return &HealthHandler{db: db, sessions: sessions}
}

// Health answers 503 when either the database or the session store is unreachable.
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	log := logging.FromContext(ctx)
	body := gin.H{
		"status":   "healthy",
		"database": "connected",
		"sessions": "connected",
		"message":  "Food Ordering System API is running",
	}
	status := http.StatusOK

	if err := dbpkg.Ping(ctx, h.db); err != nil {
		log.Error("health: database ping failed", "error", err)
		body["database"] = "disconnected"
		status = http.StatusServiceUnavailable
	}
	if err := h.sessions.Ping(ctx); err != nil {
		log.Error("health: session store ping failed", "error", err)
		body["sessions"] = "disconnected"
		status = http.StatusServiceUnavailable
	}

	if status != http.StatusOK {
		body["status"] = "unhealthy"
	}
	c.JSON(status, body)
}
