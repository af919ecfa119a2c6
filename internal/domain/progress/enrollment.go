package progress

import (
	"time"

	"github.com/yungbote/trackwise-backend/internal/domain/learning"
	"github.com/yungbote/trackwise-backend/internal/domain/user"
)

// Enrollment records one registration of a user into a track. The same
// (user, track) pair may appear more than once.
type Enrollment struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	UserID     uint            `gorm:"not null;index;column:user_id" json:"user_id"`
	User       *user.User      `gorm:"constraint:OnDelete:RESTRICT;foreignKey:UserID;references:ID" json:"-"`
	TrackID    uint            `gorm:"not null;index;column:track_id" json:"track_id"`
	Track      *learning.Track `gorm:"constraint:OnDelete:RESTRICT;foreignKey:TrackID;references:ID" json:"-"`
	EnrolledAt time.Time       `gorm:"not null;autoCreateTime;column:enrolled_at" json:"enrolled_at"`
}

func (Enrollment) TableName() string { return "enrollments" }
