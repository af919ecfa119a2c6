package learning

import "time"

// Track is the top-level curriculum grouping, e.g. a certification path.
type Track struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:100;not null;uniqueIndex;column:name" json:"name"`
	Description  *string   `gorm:"type:text;column:description" json:"description"`
	DisplayOrder int       `gorm:"not null;default:0;index;column:display_order" json:"display_order"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime;column:created_at" json:"created_at"`
}

func (Track) TableName() string { return "tracks" }
