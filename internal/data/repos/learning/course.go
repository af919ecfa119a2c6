package learning

import (
	"gorm.io/gorm"

	types "github.com/yungbote/trackwise-backend/internal/domain"
	"github.com/yungbote/trackwise-backend/internal/pkg/dbctx"
	"github.com/yungbote/trackwise-backend/internal/platform/logger"
)

type CourseRepo interface {
	Create(dbc dbctx.Context, courses []*types.Course) ([]*types.Course, error)
	GetByIDs(dbc dbctx.Context, courseIDs []uint) ([]*types.Course, error)
	GetByModuleIDs(dbc dbctx.Context, moduleIDs []uint) ([]*types.Course, error)
	UpdateFields(dbc dbctx.Context, courseID uint, updates map[string]interface{}) error
	DeleteByIDs(dbc dbctx.Context, courseIDs []uint) error
}

type courseRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCourseRepo(db *gorm.DB, baseLog *logger.Logger) CourseRepo {
	repoLog := baseLog.With("repo", "CourseRepo")
	return &courseRepo{db: db, log: repoLog}
}

func (r *courseRepo) Create(dbc dbctx.Context, courses []*types.Course) ([]*types.Course, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if len(courses) == 0 {
		return []*types.Course{}, nil
	}
	if err := transaction.WithContext(dbc.Ctx).Create(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *courseRepo) GetByIDs(dbc dbctx.Context, courseIDs []uint) ([]*types.Course, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.Course
	if len(courseIDs) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(dbc.Ctx).
		Where("id IN ?", courseIDs).
		Order("display_order ASC, id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// GetByModuleIDs returns courses grouped by module, each group in display order.
func (r *courseRepo) GetByModuleIDs(dbc dbctx.Context, moduleIDs []uint) ([]*types.Course, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.Course
	if len(moduleIDs) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(dbc.Ctx).
		Where("module_id IN ?", moduleIDs).
		Order("module_id ASC, display_order ASC, id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *courseRepo) UpdateFields(dbc dbctx.Context, courseID uint, updates map[string]interface{}) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if courseID == 0 || len(updates) == 0 {
		return nil
	}
	return transaction.WithContext(dbc.Ctx).
		Model(&types.Course{}).
		Where("id = ?", courseID).
		Updates(updates).Error
}

func (r *courseRepo) DeleteByIDs(dbc dbctx.Context, courseIDs []uint) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if len(courseIDs) == 0 {
		return nil
	}
	return transaction.WithContext(dbc.Ctx).
		Where("id IN ?", courseIDs).
		Delete(&types.Course{}).Error
}
