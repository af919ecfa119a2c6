package learning

// Course is a single unit of learning content (video, article) in a Module.
type Course struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	ModuleID uint    `gorm:"not null;index;column:module_id" json:"module_id"`
	Module   *Module `gorm:"constraint:OnDelete:RESTRICT;foreignKey:ModuleID;references:ID" json:"-"`

	Title        string  `gorm:"size:200;not null;column:title" json:"title"`
	Source       *string `gorm:"size:100;column:source" json:"source"`
	DurationMins *int    `gorm:"column:duration_mins" json:"duration_mins"`
	DisplayOrder int     `gorm:"not null;default:0;column:display_order" json:"display_order"`
}

func (Course) TableName() string { return "courses" }
