package learning

import (
	"gorm.io/gorm"

	types "github.com/yungbote/trackwise-backend/internal/domain"
	"github.com/yungbote/trackwise-backend/internal/pkg/dbctx"
	"github.com/yungbote/trackwise-backend/internal/platform/logger"
)

type QuizOptionRepo interface {
	Create(dbc dbctx.Context, options []*types.QuizOption) ([]*types.QuizOption, error)
	GetByIDs(dbc dbctx.Context, optionIDs []uint) ([]*types.QuizOption, error)
	GetByQuestionIDs(dbc dbctx.Context, questionIDs []uint) ([]*types.QuizOption, error)
	UpdateFields(dbc dbctx.Context, optionID uint, updates map[string]interface{}) error
	DeleteByIDs(dbc dbctx.Context, optionIDs []uint) error
}

type quizOptionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewQuizOptionRepo(db *gorm.DB, baseLog *logger.Logger) QuizOptionRepo {
	repoLog := baseLog.With("repo", "QuizOptionRepo")
	return &quizOptionRepo{db: db, log: repoLog}
}

func (r *quizOptionRepo) Create(dbc dbctx.Context, options []*types.QuizOption) ([]*types.QuizOption, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if len(options) == 0 {
		return []*types.QuizOption{}, nil
	}
	if err := transaction.WithContext(dbc.Ctx).Create(&options).Error; err != nil {
		return nil, err
	}
	return options, nil
}

func (r *quizOptionRepo) GetByIDs(dbc dbctx.Context, optionIDs []uint) ([]*types.QuizOption, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.QuizOption
	if len(optionIDs) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(dbc.Ctx).
		Where("id IN ?", optionIDs).
		Order("display_order ASC, id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// GetByQuestionIDs returns options grouped by question, each group in display order.
func (r *quizOptionRepo) GetByQuestionIDs(dbc dbctx.Context, questionIDs []uint) ([]*types.QuizOption, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.QuizOption
	if len(questionIDs) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(dbc.Ctx).
		Where("question_id IN ?", questionIDs).
		Order("question_id ASC, display_order ASC, id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *quizOptionRepo) UpdateFields(dbc dbctx.Context, optionID uint, updates map[string]interface{}) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if optionID == 0 || len(updates) == 0 {
		return nil
	}
	return transaction.WithContext(dbc.Ctx).
		Model(&types.QuizOption{}).
		Where("id = ?", optionID).
		Updates(updates).Error
}

func (r *quizOptionRepo) DeleteByIDs(dbc dbctx.Context, optionIDs []uint) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if len(optionIDs) == 0 {
		return nil
	}
	return transaction.WithContext(dbc.Ctx).
		Where("id IN ?", optionIDs).
		Delete(&types.QuizOption{}).Error
}
