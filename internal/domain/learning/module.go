package learning

import "time"

// Module is an ordered subdivision of a Track. It holds courses and quizzes.
type Module struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	TrackID uint   `gorm:"not null;index;column:track_id" json:"track_id"`
	Track   *Track `gorm:"constraint:OnDelete:RESTRICT;foreignKey:TrackID;references:ID" json:"-"`

	Title        string    `gorm:"size:200;not null;column:title" json:"title"`
	Description  *string   `gorm:"type:text;column:description" json:"description"`
	DisplayOrder int       `gorm:"not null;default:0;column:display_order" json:"display_order"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime;column:created_at" json:"created_at"`
}

func (Module) TableName() string { return "modules" }
