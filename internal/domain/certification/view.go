package certification

import "github.com/yungbote/trackwise-backend/internal/platform/timefmt"

type CertificateTemplateView struct {
	ID                  uint   `json:"id"`
	Name                string `json:"name"`
	TrackID             *uint  `json:"track_id"`
	TemplateType        string `json:"template_type"`
	FirstSignatureName  string `json:"first_signature_name"`
	SecondSignatureName string `json:"second_signature_name"`
	CreatedAt           string `json:"created_at"`
}

type CertificateView struct {
	ID         uint   `json:"id"`
	UserID     uint   `json:"user_id"`
	TrackID    uint   `json:"track_id"`
	TemplateID *uint  `json:"template_id"`
	Serial     string `json:"serial"`
	IssuedAt   string `json:"issued_at"`
}

func NewCertificateTemplateView(t *CertificateTemplate) CertificateTemplateView {
	return CertificateTemplateView{
		ID:                  t.ID,
		Name:                t.Name,
		TrackID:             t.TrackID,
		TemplateType:        t.TemplateType,
		FirstSignatureName:  t.FirstSignatureName,
		SecondSignatureName: t.SecondSignatureName,
		CreatedAt:           timefmt.ISO(t.CreatedAt),
	}
}

func NewCertificateView(c *Certificate) CertificateView {
	return CertificateView{
		ID:         c.ID,
		UserID:     c.UserID,
		TrackID:    c.TrackID,
		TemplateID: c.TemplateID,
		Serial:     c.Serial.String(),
		IssuedAt:   timefmt.ISO(c.IssuedAt),
	}
}
