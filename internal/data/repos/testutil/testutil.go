package testutil

import (
	"testing"

	"github.com/yungbote/trackwise-backend/internal/data/db"
	"github.com/yungbote/trackwise-backend/internal/platform/logger"
	"gorm.io/gorm"
)

func Logger(tb testing.TB) *logger.Logger {
	tb.Helper()
	return logger.NewNop()
}

// DB opens a fresh in-memory sqlite store with foreign keys enforced and the
// full schema created. Every call gets its own database.
func DB(tb testing.TB) *gorm.DB {
	tb.Helper()

	svc, err := db.Open(db.Config{Driver: db.DriverSQLite, SQLitePath: ":memory:"}, Logger(tb))
	if err != nil {
		tb.Fatalf("failed to open test db: %v", err)
	}
	tb.Cleanup(func() { _ = svc.Close() })

	if err := svc.AutoMigrateAll(); err != nil {
		tb.Fatalf("failed to migrate test db: %v", err)
	}
	return svc.DB()
}

func Tx(tb testing.TB, db *gorm.DB) *gorm.DB {
	tb.Helper()
	tx := db.Begin()
	if tx.Error != nil {
		tb.Fatalf("begin tx: %v", tx.Error)
	}
	tb.Cleanup(func() {
		_ = tx.Rollback().Error
	})
	return tx
}
