package learning

import (
	"gorm.io/gorm"

	types "github.com/yungbote/trackwise-backend/internal/domain"
	"github.com/yungbote/trackwise-backend/internal/pkg/dbctx"
	"github.com/yungbote/trackwise-backend/internal/platform/logger"
)

type ModuleRepo interface {
	Create(dbc dbctx.Context, modules []*types.Module) ([]*types.Module, error)
	GetByIDs(dbc dbctx.Context, moduleIDs []uint) ([]*types.Module, error)
	GetByTrackIDs(dbc dbctx.Context, trackIDs []uint) ([]*types.Module, error)
	UpdateFields(dbc dbctx.Context, moduleID uint, updates map[string]interface{}) error
	DeleteByIDs(dbc dbctx.Context, moduleIDs []uint) error
}

type moduleRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewModuleRepo(db *gorm.DB, baseLog *logger.Logger) ModuleRepo {
	repoLog := baseLog.With("repo", "ModuleRepo")
	return &moduleRepo{db: db, log: repoLog}
}

func (r *moduleRepo) Create(dbc dbctx.Context, modules []*types.Module) ([]*types.Module, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if len(modules) == 0 {
		return []*types.Module{}, nil
	}
	if err := transaction.WithContext(dbc.Ctx).Create(&modules).Error; err != nil {
		return nil, err
	}
	return modules, nil
}

func (r *moduleRepo) GetByIDs(dbc dbctx.Context, moduleIDs []uint) ([]*types.Module, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.Module
	if len(moduleIDs) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(dbc.Ctx).
		Where("id IN ?", moduleIDs).
		Order("display_order ASC, id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// GetByTrackIDs returns modules grouped by track, each group in display order.
func (r *moduleRepo) GetByTrackIDs(dbc dbctx.Context, trackIDs []uint) ([]*types.Module, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.Module
	if len(trackIDs) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(dbc.Ctx).
		Where("track_id IN ?", trackIDs).
		Order("track_id ASC, display_order ASC, id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *moduleRepo) UpdateFields(dbc dbctx.Context, moduleID uint, updates map[string]interface{}) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if moduleID == 0 || len(updates) == 0 {
		return nil
	}
	return transaction.WithContext(dbc.Ctx).
		Model(&types.Module{}).
		Where("id = ?", moduleID).
		Updates(updates).Error
}

func (r *moduleRepo) DeleteByIDs(dbc dbctx.Context, moduleIDs []uint) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if len(moduleIDs) == 0 {
		return nil
	}
	return transaction.WithContext(dbc.Ctx).
		Where("id IN ?", moduleIDs).
		Delete(&types.Module{}).Error
}
