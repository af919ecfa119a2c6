package certification

import (
	"time"

	"github.com/yungbote/trackwise-backend/internal/domain/learning"
)

const (
	TemplateTypeStandard       = "standard"
	DefaultFirstSignatureName  = "Administrator Signature"
	DefaultSecondSignatureName = "Chapter President"
)

// CertificateTemplate describes how a certificate is laid out. A nil TrackID
// means the template is not tied to a specific track.
type CertificateTemplate struct {
	ID      uint            `gorm:"primaryKey" json:"id"`
	Name    string          `gorm:"size:100;not null;column:name" json:"name"`
	TrackID *uint           `gorm:"index;column:track_id" json:"track_id"`
	Track   *learning.Track `gorm:"constraint:OnDelete:RESTRICT;foreignKey:TrackID;references:ID" json:"-"`

	TemplateType        string    `gorm:"size:50;not null;default:standard;column:template_type" json:"template_type"`
	FirstSignatureName  string    `gorm:"size:100;not null;default:Administrator Signature;column:first_signature_name" json:"first_signature_name"`
	SecondSignatureName string    `gorm:"size:100;not null;default:Chapter President;column:second_signature_name" json:"second_signature_name"`
	CreatedAt           time.Time `gorm:"not null;autoCreateTime;column:created_at" json:"created_at"`
}

func (CertificateTemplate) TableName() string { return "certificate_templates" }
