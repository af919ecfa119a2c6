package messaging

import "time"

// EmailTemplate holds the subject and HTML body of a transactional email,
// keyed by Type (e.g. "welcome", "certificate_issued"). Delivery happens
// elsewhere.
type EmailTemplate struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null;column:name" json:"name"`
	Type      string    `gorm:"size:50;not null;index;column:type" json:"type"`
	Subject   *string   `gorm:"size:255;column:subject" json:"subject"`
	BodyHTML  *string   `gorm:"type:text;column:body_html" json:"body_html"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime;column:updated_at" json:"updated_at"`
}

func (EmailTemplate) TableName() string { return "email_templates" }

type EmailTemplateView struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	Subject  *string `json:"subject"`
	BodyHTML *string `json:"body_html"`
}

func NewEmailTemplateView(t *EmailTemplate) EmailTemplateView {
	return EmailTemplateView{
		ID:       t.ID,
		Name:     t.Name,
		Type:     t.Type,
		Subject:  t.Subject,
		BodyHTML: t.BodyHTML,
	}
}
