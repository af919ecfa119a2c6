package db

import (
	"gorm.io/gorm"

	types "github.com/yungbote/trackwise-backend/internal/domain"
)

// AutoMigrateAll creates any missing table, column, index and foreign key
// for the full entity set. It never drops anything.
func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(types.All()...)
}

func (s *Service) AutoMigrateAll() error {
	s.log.Info("Auto migrating tables...")
	if err := AutoMigrateAll(s.db); err != nil {
		s.log.Error("Auto migration failed", "error", err)
		return err
	}
	return nil
}
