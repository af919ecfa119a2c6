package progress

import (
	"time"

	"github.com/yungbote/trackwise-backend/internal/domain/learning"
	"github.com/yungbote/trackwise-backend/internal/domain/user"
)

// QuizAttempt stores the outcome of one quiz sitting. Score and Passed are
// written by the grader as-is; neither is derived from the other here.
type QuizAttempt struct {
	ID     uint           `gorm:"primaryKey" json:"id"`
	UserID uint           `gorm:"not null;index;column:user_id" json:"user_id"`
	User   *user.User     `gorm:"constraint:OnDelete:RESTRICT;foreignKey:UserID;references:ID" json:"-"`
	QuizID uint           `gorm:"not null;index;column:quiz_id" json:"quiz_id"`
	Quiz   *learning.Quiz `gorm:"constraint:OnDelete:RESTRICT;foreignKey:QuizID;references:ID" json:"-"`

	Score       int       `gorm:"not null;column:score" json:"score"`
	Passed      bool      `gorm:"not null;column:passed" json:"passed"`
	AttemptedAt time.Time `gorm:"not null;autoCreateTime;index;column:attempted_at" json:"attempted_at"`
}

func (QuizAttempt) TableName() string { return "quiz_attempts" }
