package learning

import (
	"gorm.io/gorm"

	types "github.com/yungbote/trackwise-backend/internal/domain"
	"github.com/yungbote/trackwise-backend/internal/pkg/dbctx"
	"github.com/yungbote/trackwise-backend/internal/platform/logger"
)

type QuizQuestionRepo interface {
	Create(dbc dbctx.Context, questions []*types.QuizQuestion) ([]*types.QuizQuestion, error)
	GetByIDs(dbc dbctx.Context, questionIDs []uint) ([]*types.QuizQuestion, error)
	GetByQuizIDs(dbc dbctx.Context, quizIDs []uint) ([]*types.QuizQuestion, error)
	UpdateFields(dbc dbctx.Context, questionID uint, updates map[string]interface{}) error
	DeleteByIDs(dbc dbctx.Context, questionIDs []uint) error
}

type quizQuestionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewQuizQuestionRepo(db *gorm.DB, baseLog *logger.Logger) QuizQuestionRepo {
	repoLog := baseLog.With("repo", "QuizQuestionRepo")
	return &quizQuestionRepo{db: db, log: repoLog}
}

func (r *quizQuestionRepo) Create(dbc dbctx.Context, questions []*types.QuizQuestion) ([]*types.QuizQuestion, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if len(questions) == 0 {
		return []*types.QuizQuestion{}, nil
	}
	if err := transaction.WithContext(dbc.Ctx).Create(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *quizQuestionRepo) GetByIDs(dbc dbctx.Context, questionIDs []uint) ([]*types.QuizQuestion, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.QuizQuestion
	if len(questionIDs) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(dbc.Ctx).
		Where("id IN ?", questionIDs).
		Order("display_order ASC, id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// GetByQuizIDs returns questions grouped by quiz, each group in display order.
func (r *quizQuestionRepo) GetByQuizIDs(dbc dbctx.Context, quizIDs []uint) ([]*types.QuizQuestion, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.QuizQuestion
	if len(quizIDs) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(dbc.Ctx).
		Where("quiz_id IN ?", quizIDs).
		Order("quiz_id ASC, display_order ASC, id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *quizQuestionRepo) UpdateFields(dbc dbctx.Context, questionID uint, updates map[string]interface{}) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if questionID == 0 || len(updates) == 0 {
		return nil
	}
	return transaction.WithContext(dbc.Ctx).
		Model(&types.QuizQuestion{}).
		Where("id = ?", questionID).
		Updates(updates).Error
}

func (r *quizQuestionRepo) DeleteByIDs(dbc dbctx.Context, questionIDs []uint) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if len(questionIDs) == 0 {
		return nil
	}
	return transaction.WithContext(dbc.Ctx).
		Where("id IN ?", questionIDs).
		Delete(&types.QuizQuestion{}).Error
}
