package progress

import (
	"time"

	"github.com/yungbote/trackwise-backend/internal/domain/learning"
	"github.com/yungbote/trackwise-backend/internal/domain/user"
)

type ModuleProgress struct {
	ID       uint             `gorm:"primaryKey" json:"id"`
	UserID   uint             `gorm:"not null;index;column:user_id" json:"user_id"`
	User     *user.User       `gorm:"constraint:OnDelete:RESTRICT;foreignKey:UserID;references:ID" json:"-"`
	ModuleID uint             `gorm:"not null;index;column:module_id" json:"module_id"`
	Module   *learning.Module `gorm:"constraint:OnDelete:RESTRICT;foreignKey:ModuleID;references:ID" json:"-"`

	Completed   bool       `gorm:"not null;default:false;column:completed" json:"completed"`
	CompletedAt *time.Time `gorm:"column:completed_at" json:"completed_at"`
}

func (ModuleProgress) TableName() string { return "module_progress" }
