package progress

import (
	"gorm.io/gorm"

	types "github.com/yungbote/trackwise-backend/internal/domain"
	"github.com/yungbote/trackwise-backend/internal/pkg/dbctx"
	"github.com/yungbote/trackwise-backend/internal/platform/logger"
)

// EnrollmentRepo does not deduplicate: enrolling the same user in the same
// track twice stores two rows. Callers that want one enrollment check Exists.
type EnrollmentRepo interface {
	Create(dbc dbctx.Context, enrollments []*types.Enrollment) ([]*types.Enrollment, error)
	GetByIDs(dbc dbctx.Context, enrollmentIDs []uint) ([]*types.Enrollment, error)
	GetByUserIDs(dbc dbctx.Context, userIDs []uint) ([]*types.Enrollment, error)
	GetByTrackIDs(dbc dbctx.Context, trackIDs []uint) ([]*types.Enrollment, error)
	Exists(dbc dbctx.Context, userID uint, trackID uint) (bool, error)
}

type enrollmentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewEnrollmentRepo(db *gorm.DB, baseLog *logger.Logger) EnrollmentRepo {
	repoLog := baseLog.With("repo", "EnrollmentRepo")
	return &enrollmentRepo{db: db, log: repoLog}
}

func (r *enrollmentRepo) Create(dbc dbctx.Context, enrollments []*types.Enrollment) ([]*types.Enrollment, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if len(enrollments) == 0 {
		return []*types.Enrollment{}, nil
	}
	if err := transaction.WithContext(dbc.Ctx).Create(&enrollments).Error; err != nil {
		return nil, err
	}
	return enrollments, nil
}

func (r *enrollmentRepo) GetByIDs(dbc dbctx.Context, enrollmentIDs []uint) ([]*types.Enrollment, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.Enrollment
	if len(enrollmentIDs) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(dbc.Ctx).
		Where("id IN ?", enrollmentIDs).
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *enrollmentRepo) GetByUserIDs(dbc dbctx.Context, userIDs []uint) ([]*types.Enrollment, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.Enrollment
	if len(userIDs) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(dbc.Ctx).
		Where("user_id IN ?", userIDs).
		Order("enrolled_at ASC, id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *enrollmentRepo) GetByTrackIDs(dbc dbctx.Context, trackIDs []uint) ([]*types.Enrollment, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.Enrollment
	if len(trackIDs) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(dbc.Ctx).
		Where("track_id IN ?", trackIDs).
		Order("enrolled_at ASC, id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *enrollmentRepo) Exists(dbc dbctx.Context, userID uint, trackID uint) (bool, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var count int64
	if err := transaction.WithContext(dbc.Ctx).
		Model(&types.Enrollment{}).
		Where("user_id = ? AND track_id = ?", userID, trackID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
