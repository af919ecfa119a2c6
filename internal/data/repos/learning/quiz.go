package learning

import (
	"gorm.io/gorm"

	types "github.com/yungbote/trackwise-backend/internal/domain"
	"github.com/yungbote/trackwise-backend/internal/pkg/dbctx"
	"github.com/yungbote/trackwise-backend/internal/platform/logger"
)

type QuizRepo interface {
	Create(dbc dbctx.Context, quizzes []*types.Quiz) ([]*types.Quiz, error)
	GetByIDs(dbc dbctx.Context, quizIDs []uint) ([]*types.Quiz, error)
	GetByModuleIDs(dbc dbctx.Context, moduleIDs []uint) ([]*types.Quiz, error)
	UpdateFields(dbc dbctx.Context, quizID uint, updates map[string]interface{}) error
	DeleteByIDs(dbc dbctx.Context, quizIDs []uint) error
}

type quizRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewQuizRepo(db *gorm.DB, baseLog *logger.Logger) QuizRepo {
	repoLog := baseLog.With("repo", "QuizRepo")
	return &quizRepo{db: db, log: repoLog}
}

func (r *quizRepo) Create(dbc dbctx.Context, quizzes []*types.Quiz) ([]*types.Quiz, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if len(quizzes) == 0 {
		return []*types.Quiz{}, nil
	}
	if err := transaction.WithContext(dbc.Ctx).Create(&quizzes).Error; err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (r *quizRepo) GetByIDs(dbc dbctx.Context, quizIDs []uint) ([]*types.Quiz, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.Quiz
	if len(quizIDs) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(dbc.Ctx).
		Where("id IN ?", quizIDs).
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// GetByModuleIDs returns quizzes grouped by module. Quizzes carry no
// display order, so each group is in insertion (id) order.
func (r *quizRepo) GetByModuleIDs(dbc dbctx.Context, moduleIDs []uint) ([]*types.Quiz, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.Quiz
	if len(moduleIDs) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(dbc.Ctx).
		Where("module_id IN ?", moduleIDs).
		Order("module_id ASC, id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *quizRepo) UpdateFields(dbc dbctx.Context, quizID uint, updates map[string]interface{}) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if quizID == 0 || len(updates) == 0 {
		return nil
	}
	return transaction.WithContext(dbc.Ctx).
		Model(&types.Quiz{}).
		Where("id = ?", quizID).
		Updates(updates).Error
}

func (r *quizRepo) DeleteByIDs(dbc dbctx.Context, quizIDs []uint) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if len(quizIDs) == 0 {
		return nil
	}
	return transaction.WithContext(dbc.Ctx).
		Where("id IN ?", quizIDs).
		Delete(&types.Quiz{}).Error
}
