package progress

import (
	"time"

	"gorm.io/gorm"

	types "github.com/yungbote/trackwise-backend/internal/domain"
	"github.com/yungbote/trackwise-backend/internal/pkg/dbctx"
	"github.com/yungbote/trackwise-backend/internal/platform/logger"
)

type ModuleProgressRepo interface {
	Create(dbc dbctx.Context, rows []*types.ModuleProgress) ([]*types.ModuleProgress, error)
	GetByUserAndModuleIDs(dbc dbctx.Context, userID uint, moduleIDs []uint) ([]*types.ModuleProgress, error)
	MarkCompleted(dbc dbctx.Context, progressID uint, at time.Time) error
}

type moduleProgressRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewModuleProgressRepo(db *gorm.DB, baseLog *logger.Logger) ModuleProgressRepo {
	repoLog := baseLog.With("repo", "ModuleProgressRepo")
	return &moduleProgressRepo{db: db, log: repoLog}
}

func (r *moduleProgressRepo) Create(dbc dbctx.Context, rows []*types.ModuleProgress) ([]*types.ModuleProgress, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if len(rows) == 0 {
		return []*types.ModuleProgress{}, nil
	}
	if err := transaction.WithContext(dbc.Ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *moduleProgressRepo) GetByUserAndModuleIDs(dbc dbctx.Context, userID uint, moduleIDs []uint) ([]*types.ModuleProgress, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.ModuleProgress
	if userID == 0 || len(moduleIDs) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(dbc.Ctx).
		Where("user_id = ? AND module_id IN ?", userID, moduleIDs).
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *moduleProgressRepo) MarkCompleted(dbc dbctx.Context, progressID uint, at time.Time) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(dbc.Ctx).
		Model(&types.ModuleProgress{}).
		Where("id = ?", progressID).
		Updates(map[string]interface{}{
			"completed":    true,
			"completed_at": at.UTC(),
		}).Error
}
