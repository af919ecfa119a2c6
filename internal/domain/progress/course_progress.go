package progress

import (
	"time"

	"github.com/yungbote/trackwise-backend/internal/domain/learning"
	"github.com/yungbote/trackwise-backend/internal/domain/user"
)

type CourseProgress struct {
	ID       uint             `gorm:"primaryKey" json:"id"`
	UserID   uint             `gorm:"not null;index;column:user_id" json:"user_id"`
	User     *user.User       `gorm:"constraint:OnDelete:RESTRICT;foreignKey:UserID;references:ID" json:"-"`
	CourseID uint             `gorm:"not null;index;column:course_id" json:"course_id"`
	Course   *learning.Course `gorm:"constraint:OnDelete:RESTRICT;foreignKey:CourseID;references:ID" json:"-"`

	Completed     bool       `gorm:"not null;default:false;column:completed" json:"completed"`
	CompletedAt   *time.Time `gorm:"column:completed_at" json:"completed_at"`
	TimeSpentMins int        `gorm:"not null;default:0;column:time_spent_mins" json:"time_spent_mins"`
}

func (CourseProgress) TableName() string { return "course_progress" }
