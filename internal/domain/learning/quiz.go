package learning

import (
	"time"

	"gorm.io/gorm"
)

const (
	DefaultQuizDurationMins   = 15
	DefaultQuizPassPercentage = 70
)

// Quiz is the assessment attached to a Module.
type Quiz struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	ModuleID uint    `gorm:"not null;index;column:module_id" json:"module_id"`
	Module   *Module `gorm:"constraint:OnDelete:RESTRICT;foreignKey:ModuleID;references:ID" json:"-"`

	Title          string    `gorm:"size:200;not null;column:title" json:"title"`
	DurationMins   *int      `gorm:"not null;default:15;column:duration_mins" json:"duration_mins"`
	PassPercentage *int      `gorm:"not null;default:70;column:pass_percentage" json:"pass_percentage"`
	CreatedAt      time.Time `gorm:"not null;autoCreateTime;column:created_at" json:"created_at"`
}

func (Quiz) TableName() string { return "quizzes" }

// BeforeCreate fills only the settings the caller left nil; an explicit 0 is
// stored as given.
func (q *Quiz) BeforeCreate(tx *gorm.DB) error {
	if q.DurationMins == nil {
		v := DefaultQuizDurationMins
		q.DurationMins = &v
	}
	if q.PassPercentage == nil {
		v := DefaultQuizPassPercentage
		q.PassPercentage = &v
	}
	return nil
}

// Duration returns the time limit in minutes, falling back to the default
// for rows built in memory.
func (q *Quiz) Duration() int {
	if q.DurationMins == nil {
		return DefaultQuizDurationMins
	}
	return *q.DurationMins
}

// PassMark returns the pass percentage, falling back to the default.
func (q *Quiz) PassMark() int {
	if q.PassPercentage == nil {
		return DefaultQuizPassPercentage
	}
	return *q.PassPercentage
}

type QuizQuestion struct {
	ID     uint  `gorm:"primaryKey" json:"id"`
	QuizID uint  `gorm:"not null;index;column:quiz_id" json:"quiz_id"`
	Quiz   *Quiz `gorm:"constraint:OnDelete:RESTRICT;foreignKey:QuizID;references:ID" json:"-"`

	QuestionText string `gorm:"type:text;not null;column:question_text" json:"question_text"`
	DisplayOrder int    `gorm:"not null;default:0;column:display_order" json:"display_order"`
}

func (QuizQuestion) TableName() string { return "quiz_questions" }

// QuizOption is one answer choice. IsCorrect is the answer key and must only
// reach grading or admin callers.
type QuizOption struct {
	ID         uint          `gorm:"primaryKey" json:"id"`
	QuestionID uint          `gorm:"not null;index;column:question_id" json:"question_id"`
	Question   *QuizQuestion `gorm:"constraint:OnDelete:RESTRICT;foreignKey:QuestionID;references:ID" json:"-"`

	OptionText   string `gorm:"type:text;not null;column:option_text" json:"option_text"`
	IsCorrect    bool   `gorm:"not null;default:false;column:is_correct" json:"-"`
	DisplayOrder int    `gorm:"not null;default:0;column:display_order" json:"display_order"`
}

func (QuizOption) TableName() string { return "quiz_options" }
