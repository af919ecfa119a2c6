package progress

import (
	"time"

	"gorm.io/gorm"

	types "github.com/yungbote/trackwise-backend/internal/domain"
	"github.com/yungbote/trackwise-backend/internal/pkg/dbctx"
	"github.com/yungbote/trackwise-backend/internal/platform/logger"
)

type CourseProgressRepo interface {
	Create(dbc dbctx.Context, rows []*types.CourseProgress) ([]*types.CourseProgress, error)
	GetByUserAndCourseIDs(dbc dbctx.Context, userID uint, courseIDs []uint) ([]*types.CourseProgress, error)
	MarkCompleted(dbc dbctx.Context, progressID uint, at time.Time) error
	AddTimeSpent(dbc dbctx.Context, progressID uint, mins int) error
}

type courseProgressRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCourseProgressRepo(db *gorm.DB, baseLog *logger.Logger) CourseProgressRepo {
	repoLog := baseLog.With("repo", "CourseProgressRepo")
	return &courseProgressRepo{db: db, log: repoLog}
}

func (r *courseProgressRepo) Create(dbc dbctx.Context, rows []*types.CourseProgress) ([]*types.CourseProgress, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if len(rows) == 0 {
		return []*types.CourseProgress{}, nil
	}
	if err := transaction.WithContext(dbc.Ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *courseProgressRepo) GetByUserAndCourseIDs(dbc dbctx.Context, userID uint, courseIDs []uint) ([]*types.CourseProgress, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.CourseProgress
	if userID == 0 || len(courseIDs) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(dbc.Ctx).
		Where("user_id = ? AND course_id IN ?", userID, courseIDs).
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *courseProgressRepo) MarkCompleted(dbc dbctx.Context, progressID uint, at time.Time) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(dbc.Ctx).
		Model(&types.CourseProgress{}).
		Where("id = ?", progressID).
		Updates(map[string]interface{}{
			"completed":    true,
			"completed_at": at.UTC(),
		}).Error
}

func (r *courseProgressRepo) AddTimeSpent(dbc dbctx.Context, progressID uint, mins int) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if mins == 0 {
		return nil
	}
	return transaction.WithContext(dbc.Ctx).
		Model(&types.CourseProgress{}).
		Where("id = ?", progressID).
		Update("time_spent_mins", gorm.Expr("time_spent_mins + ?", mins)).Error
}
