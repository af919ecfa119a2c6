package certification

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/trackwise-backend/internal/domain/learning"
	"github.com/yungbote/trackwise-backend/internal/domain/user"
)

// Certificate is the issuance record for a user completing a track.
type Certificate struct {
	ID         uint                 `gorm:"primaryKey" json:"id"`
	UserID     uint                 `gorm:"not null;index;column:user_id" json:"user_id"`
	User       *user.User           `gorm:"constraint:OnDelete:RESTRICT;foreignKey:UserID;references:ID" json:"-"`
	TrackID    uint                 `gorm:"not null;index;column:track_id" json:"track_id"`
	Track      *learning.Track      `gorm:"constraint:OnDelete:RESTRICT;foreignKey:TrackID;references:ID" json:"-"`
	TemplateID *uint                `gorm:"index;column:template_id" json:"template_id"`
	Template   *CertificateTemplate `gorm:"constraint:OnDelete:RESTRICT;foreignKey:TemplateID;references:ID" json:"-"`

	// Serial is the public verification code printed on the certificate.
	Serial   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex;column:serial" json:"serial"`
	IssuedAt time.Time `gorm:"not null;autoCreateTime;column:issued_at" json:"issued_at"`
}

func (Certificate) TableName() string { return "certificates" }

func (c *Certificate) BeforeCreate(tx *gorm.DB) error {
	if c.Serial == uuid.Nil {
		c.Serial = uuid.New()
	}
	return nil
}
