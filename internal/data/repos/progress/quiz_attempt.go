package progress

import (
	"gorm.io/gorm"

	types "github.com/yungbote/trackwise-backend/internal/domain"
	"github.com/yungbote/trackwise-backend/internal/pkg/dbctx"
	"github.com/yungbote/trackwise-backend/internal/platform/logger"
)

// QuizAttemptRepo stores attempts verbatim. Score and Passed are not
// reconciled against the quiz's pass percentage.
type QuizAttemptRepo interface {
	Create(dbc dbctx.Context, attempts []*types.QuizAttempt) ([]*types.QuizAttempt, error)
	GetByUserAndQuiz(dbc dbctx.Context, userID uint, quizID uint) ([]*types.QuizAttempt, error)
	GetByQuizIDs(dbc dbctx.Context, quizIDs []uint) ([]*types.QuizAttempt, error)
	HasPassed(dbc dbctx.Context, userID uint, quizID uint) (bool, error)
}

type quizAttemptRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewQuizAttemptRepo(db *gorm.DB, baseLog *logger.Logger) QuizAttemptRepo {
	repoLog := baseLog.With("repo", "QuizAttemptRepo")
	return &quizAttemptRepo{db: db, log: repoLog}
}

func (r *quizAttemptRepo) Create(dbc dbctx.Context, attempts []*types.QuizAttempt) ([]*types.QuizAttempt, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if len(attempts) == 0 {
		return []*types.QuizAttempt{}, nil
	}
	if err := transaction.WithContext(dbc.Ctx).Create(&attempts).Error; err != nil {
		return nil, err
	}
	return attempts, nil
}

// GetByUserAndQuiz returns the user's attempts at a quiz, oldest first.
func (r *quizAttemptRepo) GetByUserAndQuiz(dbc dbctx.Context, userID uint, quizID uint) ([]*types.QuizAttempt, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.QuizAttempt
	if err := transaction.WithContext(dbc.Ctx).
		Where("user_id = ? AND quiz_id = ?", userID, quizID).
		Order("attempted_at ASC, id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *quizAttemptRepo) GetByQuizIDs(dbc dbctx.Context, quizIDs []uint) ([]*types.QuizAttempt, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.QuizAttempt
	if len(quizIDs) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(dbc.Ctx).
		Where("quiz_id IN ?", quizIDs).
		Order("quiz_id ASC, attempted_at ASC, id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *quizAttemptRepo) HasPassed(dbc dbctx.Context, userID uint, quizID uint) (bool, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var count int64
	if err := transaction.WithContext(dbc.Ctx).
		Model(&types.QuizAttempt{}).
		Where("user_id = ? AND quiz_id = ? AND passed = ?", userID, quizID, true).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
