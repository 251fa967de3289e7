package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type HealthCtrl struct {
	db      *gorm.DB
	started time.Time
	timeout time.Duration
}

func NewHealthCtrl(db *gorm.DB) *HealthCtrl {
	return &HealthCtrl{db: db, started: time.Now(), timeout: 800 * time.Millisecond}
}

func (h *HealthCtrl) Register(e *echo.Echo) {
	e.GET("/health", h.Health)
}

type check struct {
	OK  bool   `json:"ok"`
	Err string `json:"err,omitempty"`
}

func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	store := h.pingStore(ctx)
	status := http.StatusOK
	if !store.OK {
		status = http.StatusServiceUnavailable
	}

	return c.JSON(status, map[string]any{
		"status":     map[string]any{"ok": store.OK},
		"uptime_sec": int(time.Since(h.started).Seconds()),
		"checks":     map[string]any{"database": store},
		"time":       time.Now().Format(time.RFC3339),
	})
}

func (h *HealthCtrl) pingStore(ctx context.Context) check {
	if h.db == nil {
		return check{Err: "gorm db is nil"}
	}
	sqlDB, err := h.db.DB()
	if err != nil {
		return check{Err: "db.DB(): " + err.Error()}
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return check{Err: "ping: " + err.Error()}
	}
	return check{OK: true}
}
