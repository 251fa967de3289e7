// database/bootstrap.go
package database

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"milkman/entities"
	"milkman/pkg/logger"
)

// OpenSQLite opens (creating if needed) the SQLite file at path and makes
// sure the customers and deliveries tables exist.
func OpenSQLite(path string, log *slog.Logger) (*gorm.DB, error) {
	log = logger.WithComponent(log, logger.ComponentStorage)

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.New(gormWriter{log}, gormlogger.Config{
			SlowThreshold:             500 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("sql handle: %w", err)
	}
	// one writer at a time; SQLite serializes statements on this connection
	sqlDB.SetMaxOpenConns(1)
	if err := db.Exec(`PRAGMA busy_timeout = 5000`).Error; err != nil {
		return nil, fmt.Errorf("pragma busy_timeout: %w", err)
	}

	if err := db.AutoMigrate(
		&entities.Customer{},
		&entities.Delivery{},
	); err != nil {
		return nil, fmt.Errorf("automigrate: %w", err)
	}

	log.Info("database ready", "path", path)
	return db, nil
}

// Close releases the pool behind db.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

type gormWriter struct{ l *slog.Logger }

func (w gormWriter) Printf(format string, args ...interface{}) {
	w.l.Warn(fmt.Sprintf(format, args...))
}
